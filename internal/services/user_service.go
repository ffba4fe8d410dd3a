package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/uploads"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/utils"
)

const (
	msgAuthenticated    = "You are now authenticated!"
	msgPasswordMismatch = "Passwords do not match."
)

type UserService struct {
	st         Stores
	authn      *auth.Authenticator
	images     uploads.Store
	bcryptCost int
}

func NewUserService(st Stores, authn *auth.Authenticator, images uploads.Store, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{st: st, authn: authn, images: images, bcryptCost: bcryptCost}
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterReq) (*dto.AuthResponse, error) {
	const failMsg = "Unable to create your account. Please try again later."

	trim(&req.Name, &req.Email)
	if err := checkFields(req); err != nil {
		return nil, err
	}

	if _, err := s.st.Users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("There is already a registered user with this email.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal(failMsg, err)
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, asAppErr(err, failMsg)
	}

	now := nowUTC()
	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.st.Users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Conflict("There is already a registered user with this email.")
		}
		return nil, apperr.Internal(failMsg, err)
	}
	slog.Info("user registered", "user_id", user.ID.Hex())

	return s.session(user, failMsg)
}

func (s *UserService) Login(ctx context.Context, req dto.LoginReq) (*dto.AuthResponse, error) {
	const failMsg = "Unable to login. Please try again later."

	trim(&req.Email)
	if err := checkFields(req); err != nil {
		return nil, err
	}

	user, err := s.st.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Auth("There is no registered user with this email.")
		}
		return nil, apperr.Internal(failMsg, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Auth("Incorrect password. Please try again.")
	}

	return s.session(user, failMsg)
}

// CheckUser resolves the session behind token. Absent, invalid or revoked
// tokens yield a nil user and no error.
func (s *UserService) CheckUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	user, _, err := s.authn.ResolveUser(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			return nil, nil
		}
		return nil, apperr.Internal("Unable to check the session. Please try again later.", err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, apperr.InvalidID("ID Invalid!")
	}
	user, err := s.st.Users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User Not Found!").WithStatus(401)
		}
		return nil, apperr.Internal("Unable to load the user. Please try again later.", err)
	}
	user.Password = ""
	return user, nil
}

// Update edits the caller's profile and rewrites the author snapshot
// embedded in the caller's posts and comments.
func (s *UserService) Update(ctx context.Context, caller *models.User, req dto.UpdateUserReq, image *multipart.FileHeader) (*models.User, error) {
	const failMsg = "Your data could not be updated. Please try again later."

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	trim(&req.Name, &req.Email)
	if err := checkFields(req); err != nil {
		return nil, err
	}

	if req.Email != caller.Email {
		if _, err := s.st.Users.FindByEmail(ctx, req.Email); err == nil {
			return nil, apperr.Conflict("Sorry, this email is already in use. Please try another email.")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Internal(failMsg, err)
		}
	}

	if req.Password != req.ConfirmPassword {
		return nil, apperr.Validation(msgPasswordMismatch)
	}
	upd := models.UserUpdate{Name: req.Name, Email: req.Email}
	if req.Password != "" {
		hash, err := s.hash(req.Password)
		if err != nil {
			return nil, asAppErr(err, failMsg)
		}
		upd.Password = &hash
	}

	if image != nil {
		path, err := s.images.Save(image, uploads.FolderUsers)
		if err != nil {
			return nil, imageErr(err, failMsg)
		}
		upd.Image = &path
	}

	var updated *models.User
	err := s.st.Tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.st.Users.Update(ctx, caller.ID, upd)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return apperr.Conflict("Sorry, this email is already in use. Please try another email.")
			case errors.Is(err, repository.ErrNotFound):
				return apperr.Unauthorized(msgAccessDenied)
			}
			return err
		}
		if _, err := s.st.Posts.SyncAuthor(ctx, u.PostAuthor()); err != nil {
			return err
		}
		if _, err := s.st.Comments.SyncAuthor(ctx, u.CommentAuthor()); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, asAppErr(err, failMsg)
	}
	updated.Password = ""
	return updated, nil
}

// Logout revokes the token behind claims until it would have expired anyway.
func (s *UserService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperr.Unauthorized(msgAccessDenied)
	}
	if err := s.authn.Revoke(ctx, claims); err != nil {
		return apperr.Internal("Unable to log out. Please try again later.", err)
	}
	return nil
}

func (s *UserService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Validation("The password is too long.")
		}
		return "", err
	}
	return string(b), nil
}

func (s *UserService) session(user *models.User, failMsg string) (*dto.AuthResponse, error) {
	token, err := s.authn.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return &dto.AuthResponse{Message: msgAuthenticated, Token: token, UserID: user.ID.Hex()}, nil
}
