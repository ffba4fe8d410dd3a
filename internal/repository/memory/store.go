// Package memory is a map backed implementation of the repositories, used by
// tests and local runs without MongoDB.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Store struct {
	mu       sync.RWMutex
	users    map[bson.ObjectID]models.User
	posts    map[bson.ObjectID]models.Post
	comments map[bson.ObjectID]models.Comment

	Users    *Users
	Posts    *Posts
	Comments *Comments
}

func New() *Store {
	s := &Store{
		users:    make(map[bson.ObjectID]models.User),
		posts:    make(map[bson.ObjectID]models.Post),
		comments: make(map[bson.ObjectID]models.Comment),
	}
	s.Users = &Users{s}
	s.Posts = &Posts{s}
	s.Comments = &Comments{s}
	return s
}

// RunInTx has no isolation here; fn simply runs.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// newestFirst orders by createdAt then id, both descending.
func newestFirst(aAt, bAt time.Time, aID, bID bson.ObjectID) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	return bytes.Compare(bID[:], aID[:])
}

type Users struct{ s *Store }

var _ repository.UserRepository = (*Users)(nil)

func (r *Users) Insert(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.users {
		if other.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *Users) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Password = ""
	return &u, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Users) Update(_ context.Context, id bson.ObjectID, upd models.UserUpdate) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for otherID, other := range r.s.users {
		if otherID != id && other.Email == upd.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	u.Name = upd.Name
	u.Email = upd.Email
	if upd.Image != nil {
		u.Image = *upd.Image
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = u

	u.Password = ""
	return &u, nil
}

type Posts struct{ s *Store }

var _ repository.PostRepository = (*Posts)(nil)

func clonePost(p models.Post) *models.Post {
	p.Tags = slices.Clone(p.Tags)
	return &p
}

func (r *Posts) Insert(_ context.Context, p *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	r.s.posts[p.ID] = *clonePost(*p)
	return nil
}

func (r *Posts) FindByID(_ context.Context, id bson.ObjectID) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *Posts) List(_ context.Context, f models.PostFilter) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Post, 0)
	for _, p := range r.s.posts {
		if !f.AuthorID.IsZero() && p.User.ID != f.AuthorID {
			continue
		}
		if f.Tag != "" && !slices.Contains(p.Tags, f.Tag) {
			continue
		}
		out = append(out, *clonePost(p))
	}
	slices.SortFunc(out, func(a, b models.Post) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return out, nil
}

func (r *Posts) Update(_ context.Context, id bson.ObjectID, upd models.PostUpdate) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Title = upd.Title
	p.Content = upd.Content
	p.Tags = slices.Clone(upd.Tags)
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	p.UpdatedAt = time.Now().UTC()
	r.s.posts[id] = p
	return clonePost(p), nil
}

func (r *Posts) Delete(_ context.Context, id bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r *Posts) SyncAuthor(_ context.Context, a models.PostAuthor) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, p := range r.s.posts {
		if p.User.ID == a.ID {
			p.User = a
			r.s.posts[id] = p
			n++
		}
	}
	return n, nil
}

type Comments struct{ s *Store }

var _ repository.CommentRepository = (*Comments)(nil)

func (r *Comments) Insert(_ context.Context, c *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	r.s.comments[c.ID] = *c
	return nil
}

func (r *Comments) FindByID(_ context.Context, id bson.ObjectID) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *Comments) List(_ context.Context, f models.CommentFilter) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range r.s.comments {
		if !f.AuthorID.IsZero() && c.User.ID != f.AuthorID {
			continue
		}
		if !f.PostID.IsZero() && c.Post.ID != f.PostID {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.Comment) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return out, nil
}

func (r *Comments) UpdateText(_ context.Context, id bson.ObjectID, text string) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.CommentText = text
	c.UpdatedAt = time.Now().UTC()
	r.s.comments[id] = c
	return &c, nil
}

func (r *Comments) Delete(_ context.Context, id bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *Comments) DeleteByPost(_ context.Context, postID bson.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, c := range r.s.comments {
		if c.Post.ID == postID {
			delete(r.s.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *Comments) SyncAuthor(_ context.Context, a models.CommentAuthor) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, c := range r.s.comments {
		if c.User.ID == a.ID {
			c.User = a
			r.s.comments[id] = c
			n++
		}
	}
	return n, nil
}
