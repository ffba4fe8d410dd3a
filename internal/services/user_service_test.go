package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
)

func TestRegisterThenLoginWithWrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.users.Register(ctx, dto.RegisterReq{
		Name: "Ana", Email: "ana@x.com", Password: "p1", ConfirmPassword: "p1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Len(t, res.UserID, 24)

	_, err = f.users.Login(ctx, dto.LoginReq{Email: "ana@x.com", Password: "wrong"})
	requireAppErr(t, err, 422, "Incorrect password. Please try again.")

	ok, err := f.users.Login(ctx, dto.LoginReq{Email: "ana@x.com", Password: "p1"})
	require.NoError(t, err)
	assert.Equal(t, res.UserID, ok.UserID)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ana", "ana@x.com")

	tests := []struct {
		name string
		req  dto.RegisterReq
		msg  string
	}{
		{"missing name", dto.RegisterReq{Name: "  ", Email: "b@x.com", Password: "p", ConfirmPassword: "p"}, "Please fill in the name field."},
		{"missing email", dto.RegisterReq{Name: "B", Password: "p", ConfirmPassword: "p"}, "Please fill in the email field."},
		{"missing password", dto.RegisterReq{Name: "B", Email: "b@x.com", ConfirmPassword: "p"}, "Please fill in the password field."},
		{"missing confirmation", dto.RegisterReq{Name: "B", Email: "b@x.com", Password: "p"}, "Please fill in the password confirmation field."},
		{"mismatch", dto.RegisterReq{Name: "B", Email: "b@x.com", Password: "p", ConfirmPassword: "q"}, "Passwords do not match."},
		{"duplicate email", dto.RegisterReq{Name: "B", Email: "ana@x.com", Password: "p", ConfirmPassword: "p"}, "There is already a registered user with this email."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Register(context.Background(), tt.req)
			requireAppErr(t, err, 422, tt.msg)
		})
	}
}

func TestLogin_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Login(ctx, dto.LoginReq{Password: "p1"})
	requireAppErr(t, err, 422, "Please fill in the email field.")

	_, err = f.users.Login(ctx, dto.LoginReq{Email: "ana@x.com"})
	requireAppErr(t, err, 422, "Please fill in the password field.")

	_, err = f.users.Login(ctx, dto.LoginReq{Email: "nobody@x.com", Password: "p1"})
	requireAppErr(t, err, 422, "There is no registered user with this email.")
}

func TestCheckUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.users.Register(ctx, dto.RegisterReq{
		Name: "Ana", Email: "ana@x.com", Password: "p1", ConfirmPassword: "p1",
	})
	require.NoError(t, err)

	for _, token := range []string{"", "garbage"} {
		u, err := f.users.CheckUser(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, u)
	}

	u, err := f.users.CheckUser(ctx, res.Token)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)
	assert.Empty(t, u.Password)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.users.Register(ctx, dto.RegisterReq{
		Name: "Ana", Email: "ana@x.com", Password: "p1", ConfirmPassword: "p1",
	})
	require.NoError(t, err)

	_, claims, err := f.authn.ResolveUser(ctx, res.Token)
	require.NoError(t, err)
	require.NoError(t, f.users.Logout(ctx, claims))

	u, err := f.users.CheckUser(ctx, res.Token)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetUserByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")

	_, err := f.users.GetByID(ctx, "not-an-id")
	requireAppErr(t, err, 401, "ID Invalid!")

	_, err = f.users.GetByID(ctx, "0123456789abcdef01234567")
	requireAppErr(t, err, 401, "User Not Found!")

	first, err := f.users.GetByID(ctx, ana.ID.Hex())
	require.NoError(t, err)
	second, err := f.users.GetByID(ctx, ana.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, first.Password)
}

func TestUpdateUser_PropagatesToPostsAndComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	bob := f.register(t, "Bob", "bob@x.com")

	p1 := f.post(t, ana, "first", "#go")
	p2 := f.post(t, ana, "second", "#rust")
	bobPost := f.post(t, bob, "bob's", "#misc")
	c1 := f.comment(t, ana, bobPost, "nice")
	c2 := f.comment(t, bob, p1, "thanks")

	updated, err := f.users.Update(ctx, ana, dto.UpdateUserReq{Name: "Ana Maria", Email: "ana@x.com"}, imageFile(t, "me.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	require.NotEmpty(t, updated.Image)

	for _, id := range []string{p1.ID.Hex(), p2.ID.Hex()} {
		p, err := f.posts.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.PostAuthor{ID: ana.ID, Name: "Ana Maria", Email: "ana@x.com"}, p.User)
	}

	got, err := f.store.Comments.FindByID(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.User.Name)
	assert.Equal(t, updated.Image, got.User.Image)

	untouched, err := f.store.Comments.FindByID(ctx, c2.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", untouched.User.Name)
}

func TestUpdateUser_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")
	f.register(t, "Bob", "bob@x.com")

	_, err := f.users.Update(ctx, nil, dto.UpdateUserReq{Name: "A", Email: "ana@x.com"}, nil)
	requireAppErr(t, err, 401, "Access denied!")

	_, err = f.users.Update(ctx, ana, dto.UpdateUserReq{Email: "ana@x.com"}, nil)
	requireAppErr(t, err, 422, "Please fill in the name field.")

	_, err = f.users.Update(ctx, ana, dto.UpdateUserReq{Name: "Ana"}, nil)
	requireAppErr(t, err, 422, "Please fill in the email field.")

	_, err = f.users.Update(ctx, ana, dto.UpdateUserReq{Name: "Ana", Email: "bob@x.com"}, nil)
	requireAppErr(t, err, 422, "Sorry, this email is already in use. Please try another email.")

	_, err = f.users.Update(ctx, ana, dto.UpdateUserReq{Name: "Ana", Email: "ana@x.com", Password: "a", ConfirmPassword: "b"}, nil)
	requireAppErr(t, err, 422, "Passwords do not match.")

	_, err = f.users.Update(ctx, ana, dto.UpdateUserReq{Name: "Ana", Email: "ana@x.com"}, imageFile(t, "me.gif"))
	requireAppErr(t, err, 422, "Please send only png or jpg images!")
}

func TestUpdateUser_ChangesPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@x.com")

	_, err := f.users.Update(ctx, ana, dto.UpdateUserReq{
		Name: "Ana", Email: "ana@x.com", Password: "p2", ConfirmPassword: "p2",
	}, nil)
	require.NoError(t, err)

	_, err = f.users.Login(ctx, dto.LoginReq{Email: "ana@x.com", Password: "p1"})
	requireAppErr(t, err, 422, "Incorrect password. Please try again.")
	_, err = f.users.Login(ctx, dto.LoginReq{Email: "ana@x.com", Password: "p2"})
	assert.NoError(t, err)
}
