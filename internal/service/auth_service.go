package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dishcover/dishcover/internal/auth"
	"github.com/dishcover/dishcover/internal/models"
	"github.com/dishcover/dishcover/internal/storage"
)

// AuthService handles signup, login, and session lookups. Token issuance is
// delegated to the JWT manager, credential checks to the authenticator.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

func NewAuthService(authenticator auth.Authenticator, tokens *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		store:         store,
		logger:        logger.With("service", "auth"),
	}
}

// Signup registers a new account and returns the user with a session token.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.authenticator.Register(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login verifies the credentials and returns the user with a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Me returns the account for a validated session's user ID. A stale token
// for a deleted account yields auth.ErrInvalidToken.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}
