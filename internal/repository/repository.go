package repository

import (
	"context"
	"errors"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id bson.ObjectID, upd models.UserUpdate) (*models.User, error)
}

type PostRepository interface {
	Insert(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	// List returns matching posts newest first.
	List(ctx context.Context, f models.PostFilter) ([]models.Post, error)
	Update(ctx context.Context, id bson.ObjectID, upd models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// SyncAuthor rewrites the embedded author of every post written by a.ID.
	SyncAuthor(ctx context.Context, a models.PostAuthor) (int64, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error)
	// List returns matching comments newest first.
	List(ctx context.Context, f models.CommentFilter) ([]models.Comment, error)
	UpdateText(ctx context.Context, id bson.ObjectID, text string) (*models.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
	SyncAuthor(ctx context.Context, a models.CommentAuthor) (int64, error)
}

// Transactor runs fn so that its writes commit together when the backing
// store supports it. Without support fn runs as is and a failure part-way
// leaves earlier writes applied.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
