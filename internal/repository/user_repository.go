package repository

import (
	"context"
	"time"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// withoutPassword keeps the hash out of profile reads.
var withoutPassword = bson.M{"password": 0}

type UserMongo struct {
	col     *mongo.Collection
	timeout opTimeout
}

var _ UserRepository = (*UserMongo)(nil)

func (r *UserMongo) Insert(ctx context.Context, u *models.User) error {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserMongo) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(withoutPassword)).Decode(&u)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserMongo) Update(ctx context.Context, id bson.ObjectID, upd models.UserUpdate) (*models.User, error) {
	ctx, cancel := r.timeout.with(ctx)
	defer cancel()

	set := bson.M{
		"name":      upd.Name,
		"email":     upd.Email,
		"updatedAt": time.Now().UTC(),
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPassword)

	var u models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, notFound(err)
	}
	return &u, nil
}
