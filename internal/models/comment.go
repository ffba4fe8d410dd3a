package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentAuthor struct {
	ID    bson.ObjectID `bson:"_id" json:"_id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
	Image string        `bson:"image,omitempty" json:"image,omitempty"`
}

type PostRef struct {
	ID bson.ObjectID `bson:"_id" json:"_id"`
}

type Comment struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	CommentText string        `bson:"commentText" json:"commentText"`
	User        CommentAuthor `bson:"user" json:"user"`
	Post        PostRef       `bson:"post" json:"post"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type CommentFilter struct {
	AuthorID bson.ObjectID
	PostID   bson.ObjectID
}
