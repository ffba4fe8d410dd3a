package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is what turns concurrent registrations into a conflict.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	byCollection := map[string][]mongo.IndexModel{
		repository.ColUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		repository.ColPosts: {
			{Keys: bson.D{{Key: "user._id", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		},
		repository.ColComments: {
			{Keys: bson.D{{Key: "post._id", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "user._id", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		},
	}

	for name, models := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
