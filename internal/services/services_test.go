package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository/memory"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/uploads"
)

type fixture struct {
	store    *memory.Store
	images   *uploads.Memory
	authn    *auth.Authenticator
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	st := Stores{Users: store.Users, Posts: store.Posts, Comments: store.Comments, Tx: store}
	images := uploads.NewMemory()
	authn := auth.NewAuthenticator(auth.NewTokens("test-secret", time.Hour), auth.NewMemoryRevocations(), store.Users)
	return &fixture{
		store:    store,
		images:   images,
		authn:    authn,
		users:    NewUserService(st, authn, images, bcrypt.MinCost),
		posts:    NewPostService(st, images),
		comments: NewCommentService(st),
	}
}

// register signs a user up and returns them as an authenticated caller.
func (f *fixture) register(t *testing.T, name, email string) *models.User {
	t.Helper()
	ctx := context.Background()
	_, err := f.users.Register(ctx, dto.RegisterReq{
		Name: name, Email: email, Password: "p1", ConfirmPassword: "p1",
	})
	require.NoError(t, err)
	u, err := f.store.Users.FindByEmail(ctx, email)
	require.NoError(t, err)
	u.Password = ""
	return u
}

func (f *fixture) post(t *testing.T, caller *models.User, title, tags string) *models.Post {
	t.Helper()
	p, err := f.posts.Create(context.Background(), caller, dto.PostReq{
		Title: title, Content: "body of " + title, Tags: tags,
	}, imageFile(t, "cover.png"))
	require.NoError(t, err)
	return p
}

func (f *fixture) comment(t *testing.T, caller *models.User, post *models.Post, text string) *models.Comment {
	t.Helper()
	c, err := f.comments.Create(context.Background(), caller, dto.CreateCommentReq{
		PostID: post.ID.Hex(), CommentText: text,
	})
	require.NoError(t, err)
	return c
}

func imageFile(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("img"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

// requireAppErr asserts err is an *apperr.Error with the given status and message.
func requireAppErr(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	ae, ok := err.(*apperr.Error)
	require.Truef(t, ok, "want *apperr.Error, got %T: %v", err, err)
	require.Equal(t, status, ae.Status)
	require.Equal(t, msg, ae.Message)
}
