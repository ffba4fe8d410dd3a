package repository

import (
	"context"
	"time"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentMongo struct {
	col     *mongo.Collection
	timeout opTimeout
}

var _ CommentRepository = (*CommentMongo)(nil)

func (r *CommentMongo) Insert(ctx context.Context, c *models.Comment) error {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CommentMongo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	var c models.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CommentMongo) List(ctx context.Context, f models.CommentFilter) ([]models.Comment, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	filter := bson.M{}
	if !f.AuthorID.IsZero() {
		filter["user._id"] = f.AuthorID
	}
	if !f.PostID.IsZero() {
		filter["post._id"] = f.PostID
	}
	return findSorted[models.Comment](ctx, r.col, filter)
}

func (r *CommentMongo) UpdateText(ctx context.Context, id bson.ObjectID, text string) (*models.Comment, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	var c models.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"commentText": text, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CommentMongo) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentMongo) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"post._id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *CommentMongo) SyncAuthor(ctx context.Context, a models.CommentAuthor) (int64, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"user._id": a.ID},
		bson.M{"$set": bson.M{"user": a}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
