// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, login, and resolving the user behind a
// session token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/server/auth"
	"github.com/dmitrijs2005/coinkeeper/internal/server/config"
	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
	"github.com/dmitrijs2005/coinkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with hashed passwords
// - Login: verify credentials and mint a session token
// - CurrentUser: resolve a token to its user, with transactions attached
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user. A pre-check on the email gives a friendly
// conflict before hashing; the unique constraint stays the source of truth,
// so a concurrent insert that wins the race surfaces as the same conflict.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, Password: hashed, Name: name}
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user.Transactions = make([]models.Transaction, 0)
	return user, nil
}

// Login verifies the credentials and, on success, returns the user and a
// session token. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	if err := s.attachTransactions(ctx, user); err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// CurrentUser resolves a session token to its user. Invalid, expired, or
// orphaned tokens (user no longer exists) yield ErrorUnauthorized.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.UserByID(ctx, userID)
}

// UserByID loads a user and their transactions. A missing user yields
// ErrorUnauthorized: the only callers hold a token for that id, and a token
// whose user is gone no longer authorizes anything.
func (s *UserService) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := s.attachTransactions(ctx, user); err != nil {
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *UserService) attachTransactions(ctx context.Context, user *models.User) error {
	list, err := s.repomanager.Transactions(s.db).ListByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Transactions = list
	return nil
}
