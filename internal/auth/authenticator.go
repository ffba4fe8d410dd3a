package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrUnauthorized covers every way a presented token can fail to name a
// live user: malformed, expired, revoked, or pointing at a deleted account.
var ErrUnauthorized = errors.New("unauthorized")

type UserFinder interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

type Authenticator struct {
	tokens  *Tokens
	revoked Revocations
	users   UserFinder
}

func NewAuthenticator(tokens *Tokens, revoked Revocations, users UserFinder) *Authenticator {
	return &Authenticator{tokens: tokens, revoked: revoked, users: users}
}

func (a *Authenticator) Issue(userID bson.ObjectID) (string, error) {
	return a.tokens.Issue(userID)
}

// ResolveUser verifies token and loads its user without the password hash.
// Store failures are returned wrapped, everything else as ErrUnauthorized.
func (a *Authenticator) ResolveUser(ctx context.Context, token string) (*models.User, *Claims, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}

	if claims.ID != "" {
		revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, nil, ErrUnauthorized
		}
	}

	uid, err := bson.ObjectIDFromHex(claims.UID)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}
	user, err := a.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	user.Password = ""
	return user, claims, nil
}

// Revoke blocks the token behind claims for the rest of its lifetime.
func (a *Authenticator) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	return a.revoked.Revoke(ctx, claims.ID, claims.ExpiresIn(a.tokens.now()))
}
