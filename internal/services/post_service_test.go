package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
)

func TestCreatePost_TagsRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")

	p := f.post(t, ana, "hello", "#go #rust")
	assert.Equal(t, []string{"go", "rust"}, p.Tags)
	assert.Equal(t, models.PostAuthor{ID: ana.ID, Name: "Ana", Email: "ana@x.com"}, p.User)
	assert.Contains(t, f.images.Files, p.Image)

	_, err := f.posts.Update(ctx, ana, p.ID.Hex(), dto.PostReq{Title: "hello", Content: "c", Tags: ""}, nil)
	requireAppErr(t, err, 422, "Add at least one tag to the post.")

	again, err := f.posts.GetByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, again.Tags)
}

func TestCreatePost_Validation(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@x.com")

	tests := []struct {
		name  string
		req   dto.PostReq
		image string
		msg   string
	}{
		{"missing title", dto.PostReq{Content: "c", Tags: "#a"}, "a.png", "The post title is mandatory."},
		{"missing content", dto.PostReq{Title: "t", Content: " ", Tags: "#a"}, "a.png", "The content of the post is mandatory."},
		{"missing tags", dto.PostReq{Title: "t", Content: "c"}, "a.png", "Add at least one tag to the post."},
		{"no hashtag", dto.PostReq{Title: "t", Content: "c", Tags: "go rust #"}, "a.png", "the tag field cannot be empty."},
		{"missing image", dto.PostReq{Title: "t", Content: "c", Tags: "#a"}, "", "Please add an image to the post."},
		{"wrong image type", dto.PostReq{Title: "t", Content: "c", Tags: "#a"}, "a.bmp", "Please send only png or jpg images!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var img *multipart.FileHeader
			if tt.image != "" {
				img = imageFile(t, tt.image)
			}
			_, err := f.posts.Create(context.Background(), ana, tt.req, img)
			requireAppErr(t, err, 422, tt.msg)
		})
	}

	_, err := f.posts.Create(context.Background(), nil, dto.PostReq{Title: "t", Content: "c", Tags: "#a"}, imageFile(t, "a.png"))
	requireAppErr(t, err, 401, "Access denied!")
}

func TestListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")

	first := f.post(t, ana, "first", "#Go")
	second := f.post(t, bob, "second", "#rust")
	third := f.post(t, ana, "third", "#go #rust")

	all, err := f.posts.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.Title, second.Title, first.Title}, titles(all))

	tagged, err := f.posts.List(ctx, "#GO")
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "first"}, titles(tagged))

	mine, err := f.posts.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, titles(mine))

	_, err = f.posts.ListByUser(ctx, nil)
	requireAppErr(t, err, 401, "Access denied!")
}

func TestGetPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	p := f.post(t, ana, "hello", "#go")

	_, err := f.posts.GetByID(ctx, "123")
	requireAppErr(t, err, 401, "Invalid ID!")

	_, err = f.posts.GetByID(ctx, "0123456789abcdef01234567")
	requireAppErr(t, err, 404, "Post not found!")

	a, err := f.posts.GetByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	b, err := f.posts.GetByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	p := f.post(t, ana, "hello", "#go")

	updated, err := f.posts.Update(ctx, ana, p.ID.Hex(), dto.PostReq{
		Title: " new title ", Content: "new content", Tags: "#Rust #rust #zig",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, []string{"rust", "zig"}, updated.Tags)
	assert.Equal(t, p.Image, updated.Image)

	withImage, err := f.posts.Update(ctx, ana, p.ID.Hex(), dto.PostReq{
		Title: "t", Content: "c", Tags: "#go",
	}, imageFile(t, "next.jpeg"))
	require.NoError(t, err)
	assert.NotEqual(t, p.Image, withImage.Image)
}

func TestPostOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")
	p := f.post(t, ana, "hello", "#go")

	// payload validity does not matter to a non-owner
	for _, req := range []dto.PostReq{{}, {Title: "t", Content: "c", Tags: "#x"}} {
		_, err := f.posts.Update(ctx, bob, p.ID.Hex(), req, nil)
		requireAppErr(t, err, 403, "You do not have permission to access or modify this post.")
	}
	err := f.posts.Delete(ctx, bob, p.ID.Hex())
	requireAppErr(t, err, 403, "You do not have permission to access or modify this post.")

	_, err = f.posts.GetByID(ctx, p.ID.Hex())
	assert.NoError(t, err)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")
	p := f.post(t, ana, "hello", "#go")
	other := f.post(t, bob, "other", "#go")
	f.comment(t, bob, p, "one")
	f.comment(t, ana, p, "two")
	kept := f.comment(t, ana, other, "three")

	require.NoError(t, f.posts.Delete(ctx, ana, p.ID.Hex()))

	_, err := f.posts.GetByID(ctx, p.ID.Hex())
	requireAppErr(t, err, 404, "Post not found!")

	orphans, err := f.store.Comments.List(ctx, models.CommentFilter{PostID: p.ID})
	require.NoError(t, err)
	assert.Empty(t, orphans)

	left, err := f.comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)

	err = f.posts.Delete(ctx, ana, p.ID.Hex())
	requireAppErr(t, err, 404, "Post not found!")
}

func titles(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}
