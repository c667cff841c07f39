// Package service provides business logic for authentication and inventory
// management, delegating persistence to repository interfaces.
package service

import (
	"context"

	"github.com/jeyren95/px-backend-hw3/internal/models"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// FindByUsername returns the user with the given username,
	// or (nil, nil) if no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// InsertUser creates a new user record and returns it with
	// the assigned id.
	InsertUser(ctx context.Context, username, passwordHash string) (*models.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password.
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored hash.
	Verify(password, hash string) bool
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	// Issue returns a signed token asserting the given user id.
	Issue(userID int64) (string, error)
}

// AuthService implements registration and login by combining the user
// repository, password hasher, and token issuer.
type AuthService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new account and returns an access token for it.
// Returns ErrUserExists when the username is already taken.
//
// The lookup-then-insert sequence is not serialized across concurrent
// calls; the UNIQUE constraint on users.username is the backstop.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user, err := s.repo.InsertUser(ctx, username, hash)
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies the credentials and returns an access token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials
// so callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
