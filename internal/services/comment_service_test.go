package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
)

func TestCreateComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	p := f.post(t, ana, "hello", "#go")

	c := f.comment(t, ana, p, "  first!  ")
	assert.Equal(t, "first!", c.CommentText)
	assert.Equal(t, models.PostRef{ID: p.ID}, c.Post)
	assert.Equal(t, ana.CommentAuthor(), c.User)

	tests := []struct {
		name   string
		req    dto.CreateCommentReq
		status int
		msg    string
	}{
		{"malformed post id", dto.CreateCommentReq{PostID: "xyz", CommentText: "hi"}, 401, "Invalid post ID!"},
		{"unknown post", dto.CreateCommentReq{PostID: "0123456789abcdef01234567", CommentText: "hi"}, 404, "Post not found!"},
		{"empty text", dto.CreateCommentReq{PostID: p.ID.Hex(), CommentText: "   "}, 422, "The post comment cannot be empty."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.comments.Create(ctx, ana, tt.req)
			requireAppErr(t, err, tt.status, tt.msg)
		})
	}

	_, err := f.comments.Create(ctx, nil, dto.CreateCommentReq{PostID: p.ID.Hex(), CommentText: "hi"})
	requireAppErr(t, err, 401, "Access denied!")
}

func TestListComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")
	p1 := f.post(t, ana, "one", "#go")
	p2 := f.post(t, ana, "two", "#go")

	a := f.comment(t, bob, p1, "a")
	b := f.comment(t, ana, p1, "b")
	c := f.comment(t, bob, p2, "c")

	all, err := f.comments.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, texts(all))

	mine, err := f.comments.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{c.CommentText, a.CommentText}, texts(mine))

	onP1, err := f.comments.ListByPost(ctx, p1.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{b.CommentText, a.CommentText}, texts(onP1))

	_, err = f.comments.ListByPost(ctx, "bad")
	requireAppErr(t, err, 401, "Invalid post ID!")
	_, err = f.comments.ListByPost(ctx, "0123456789abcdef01234567")
	requireAppErr(t, err, 404, "Post not found!")

	fresh := f.post(t, bob, "fresh", "#new")
	none, err := f.comments.ListByPost(ctx, fresh.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateAndDeleteComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")
	p := f.post(t, ana, "hello", "#go")
	c := f.comment(t, bob, p, "orig")

	_, err := f.comments.Update(ctx, bob, "nope", dto.UpdateCommentReq{CommentText: "x"})
	requireAppErr(t, err, 401, "Invalid comment ID!")
	_, err = f.comments.Update(ctx, bob, "0123456789abcdef01234567", dto.UpdateCommentReq{CommentText: "x"})
	requireAppErr(t, err, 404, "Comment not found!")

	// the post's author does not own comments on it
	_, err = f.comments.Update(ctx, ana, c.ID.Hex(), dto.UpdateCommentReq{})
	requireAppErr(t, err, 403, "You do not have permission to access or modify this comment.")
	err = f.comments.Delete(ctx, ana, c.ID.Hex())
	requireAppErr(t, err, 403, "You do not have permission to access or modify this comment.")

	_, err = f.comments.Update(ctx, bob, c.ID.Hex(), dto.UpdateCommentReq{CommentText: " "})
	requireAppErr(t, err, 422, "The post comment cannot be empty.")

	updated, err := f.comments.Update(ctx, bob, c.ID.Hex(), dto.UpdateCommentReq{CommentText: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.CommentText)
	assert.Equal(t, c.Post, updated.Post)

	require.NoError(t, f.comments.Delete(ctx, bob, c.ID.Hex()))
	err = f.comments.Delete(ctx, bob, c.ID.Hex())
	requireAppErr(t, err, 404, "Comment not found!")
}

func texts(comments []models.Comment) []string {
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.CommentText)
	}
	return out
}
