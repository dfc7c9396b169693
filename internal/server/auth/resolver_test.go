package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/server/models"
)

type fakeUserLookup struct {
	user *models.User
	err  error
}

func (f *fakeUserLookup) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestResolve_Success(t *testing.T) {
	t.Parallel()

	tokens := newHS256Service(t, "secret")
	lookup := &fakeUserLookup{user: &models.User{ID: 7, Email: "a@b.com", UserType: models.UserTypeFarmer}}
	r := NewResolver(tokens, lookup)

	tok, err := tokens.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	user, err := r.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if user.ID != 7 || user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestResolve_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := &TokenService{secret: []byte("secret"), method: jwt.SigningMethodHS256, validity: -time.Minute}
	tok, err := expired.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := NewResolver(newHS256Service(t, "secret"), &fakeUserLookup{user: &models.User{Email: "a@b.com"}})

	if _, err := r.Resolve(context.Background(), tok); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestResolve_UserDeletedAfterIssue(t *testing.T) {
	t.Parallel()

	tokens := newHS256Service(t, "secret")
	r := NewResolver(tokens, &fakeUserLookup{err: common.ErrorNotFound})

	tok, err := tokens.Issue("gone@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Must be the same uniform error as a bad token, not a distinct one.
	if _, err := r.Resolve(context.Background(), tok); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestResolve_LookupFailure(t *testing.T) {
	t.Parallel()

	tokens := newHS256Service(t, "secret")
	r := NewResolver(tokens, &fakeUserLookup{err: errors.New("db down")})

	tok, err := tokens.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestResolve_GarbageToken(t *testing.T) {
	t.Parallel()

	r := NewResolver(newHS256Service(t, "secret"), &fakeUserLookup{user: &models.User{}})

	if _, err := r.Resolve(context.Background(), "not.a.jwt"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}
