package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdate lists the profile fields written by an edit.
// Nil pointers leave the stored value untouched.
type UserUpdate struct {
	Name     string
	Email    string
	Image    *string
	Password *string
}

// PostAuthor is the author snapshot embedded in posts.
func (u *User) PostAuthor() PostAuthor {
	return PostAuthor{ID: u.ID, Name: u.Name, Email: u.Email}
}

// CommentAuthor is the author snapshot embedded in comments.
func (u *User) CommentAuthor() CommentAuthor {
	return CommentAuthor{ID: u.ID, Name: u.Name, Email: u.Email, Image: u.Image}
}
