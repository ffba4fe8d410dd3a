package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	ColUsers    = "users"
	ColPosts    = "posts"
	ColComments = "comments"
)

// newestFirst is the listing order of every collection.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// Mongo bundles the three repositories over one database.
type Mongo struct {
	Users    *UserMongo
	Posts    *PostMongo
	Comments *CommentMongo
	Tx       *MongoTx
}

func NewMongo(client *mongo.Client, db *mongo.Database, timeout time.Duration, transactions bool) *Mongo {
	op := opTimeout(timeout)
	return &Mongo{
		Users:    &UserMongo{col: db.Collection(ColUsers), timeout: op},
		Posts:    &PostMongo{col: db.Collection(ColPosts), timeout: op},
		Comments: &CommentMongo{col: db.Collection(ColComments), timeout: op},
		Tx:       &MongoTx{client: client, enabled: transactions},
	}
}

type opTimeout time.Duration

func (t opTimeout) with(ctx context.Context) (context.Context, context.CancelFunc) {
	if t <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(t))
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// MongoTx wraps fn in a session transaction when enabled. Transactions need a
// replica set, so standalone deployments leave this off.
type MongoTx struct {
	client  *mongo.Client
	enabled bool
}

func (t *MongoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}
	sess, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func findSorted[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := col.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
