package auth

import (
	"context"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/server/models"
)

// UserLookup is the slice of the user store the resolver depends on.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Resolver maps a presented token to the user it identifies.
type Resolver struct {
	tokens *TokenService
	users  UserLookup
}

func NewResolver(tokens *TokenService, users UserLookup) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve verifies the token and loads the user named by its subject claim.
// Every failure mode returns common.ErrorUnauthorized: an expired token, a
// forged one, and a valid token whose user has since been deleted are
// indistinguishable to the caller.
func (r *Resolver) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	subject, err := r.tokens.Verify(tokenString)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := r.users.GetByEmail(ctx, subject)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}
