package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostAuthor struct {
	ID    bson.ObjectID `bson:"_id" json:"_id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
}

type Post struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Tags      []string      `bson:"tags" json:"tags"`
	Image     string        `bson:"image" json:"image"`
	User      PostAuthor    `bson:"user" json:"user"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type PostUpdate struct {
	Title   string
	Content string
	Tags    []string
	Image   *string
}

// PostFilter narrows a post listing. Zero values match everything.
type PostFilter struct {
	AuthorID bson.ObjectID
	Tag      string
}
