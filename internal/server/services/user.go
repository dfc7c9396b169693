// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login on top of the credential
// core in internal/server/auth.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/dbx"
	"github.com/vetlig/vetlig/internal/server/auth"
	"github.com/vetlig/vetlig/internal/server/models"
	"github.com/vetlig/vetlig/internal/server/repositories/repomanager"
)

// dummyCredential is a valid bcrypt hash that matches no password handed out
// by this service. Login verifies against it when the email is unknown, so
// absent and present accounts cost the same wall-clock time.
const dummyCredential = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides authentication-related operations:
// - Register: create users (plus an empty vet profile for vets)
// - Login: verify credentials and mint an access token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenService
}

// NewUserService constructs a UserService from the repositories and the
// credential core built at startup.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher, tokens: tokens}
}

// Register creates a new user. Email and phone collisions are checked
// sequentially against the store and reported as distinct conflict errors.
// For a vet, the user row and its empty profile row are inserted in one
// transaction.
func (s *UserService) Register(ctx context.Context, email, password, fullName, phone string, userType models.UserType) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailAlreadyRegistered
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if _, err := repo.GetByPhone(ctx, phone); err == nil {
		return nil, common.ErrorPhoneAlreadyRegistered
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	credential, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:          email,
		HashedPassword: credential,
		FullName:       fullName,
		PhoneNumber:    phone,
		UserType:       userType,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		if userType == models.UserTypeVet {
			if _, err := s.repomanager.VetProfiles(tx).Create(ctx, created.ID); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the email/password pair and returns a signed access token.
// Unknown email and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a comparison so the miss is not observably faster.
			s.hasher.Verify(password, dummyCredential)
			return "", common.ErrorIncorrectEmailOrPassword
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", common.ErrorIncorrectEmailOrPassword
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
