package repository

import (
	"context"
	"time"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PostMongo struct {
	col     *mongo.Collection
	timeout opTimeout
}

var _ PostRepository = (*PostMongo)(nil)

func (r *PostMongo) Insert(ctx context.Context, p *models.Post) error {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PostMongo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PostMongo) List(ctx context.Context, f models.PostFilter) ([]models.Post, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	filter := bson.M{}
	if !f.AuthorID.IsZero() {
		filter["user._id"] = f.AuthorID
	}
	if f.Tag != "" {
		// matches any element of the tags array
		filter["tags"] = f.Tag
	}
	return findSorted[models.Post](ctx, r.col, filter)
}

func (r *PostMongo) Update(ctx context.Context, id bson.ObjectID, upd models.PostUpdate) (*models.Post, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	set := bson.M{
		"title":     upd.Title,
		"content":   upd.Content,
		"tags":      upd.Tags,
		"updatedAt": time.Now().UTC(),
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}

	var p models.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PostMongo) Delete(ctx context.Context, id bson.ObjectID) error {
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

func (r *PostMongo) SyncAuthor(ctx context.Context, a models.PostAuthor) (int64, error) {
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
