package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/models"
)

// TokenTTLSeconds is the lifetime reported to clients for custom tokens.
const TokenTTLSeconds = 3600

// authService implements the AuthService interface.
type authService struct {
	identity IdentityProvider
	userRepo db.UserRepository
	now      func() time.Time
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(identity IdentityProvider, userRepo db.UserRepository, now func() time.Time, logger *zap.Logger) AuthService {
	return &authService{identity: identity, userRepo: userRepo, now: now, logger: logger}
}

// CreateAnonymousUser registers a new identity with no credentials, stores its
// user document and returns a custom token for it.
func (s *authService) CreateAnonymousUser(ctx context.Context) (*models.AuthResponse, error) {
	record, err := s.identity.CreateUser(ctx, &auth.UserToCreate{})
	if err != nil {
		return nil, fmt.Errorf("failed to create anonymous identity: %w", err)
	}

	user := &models.User{ID: record.UID, CreatedAt: models.FormatTimestamp(s.now()), ProStatus: false}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store anonymous user '%s': %w", record.UID, err)
	}

	return s.issueToken(ctx, record.UID)
}

// SignInWithToken verifies an ID token, creates the user document on first
// sign-in and exchanges the identity for a custom token.
func (s *authService) SignInWithToken(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	if idToken == "" {
		return nil, NewValidationError("ID token is required")
	}

	token, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	_, err = s.userRepo.GetByID(ctx, token.UID)
	switch {
	case errors.Is(err, db.ErrNotFound):
		email, _ := token.Claims["email"].(string)
		user := &models.User{ID: token.UID, CreatedAt: models.FormatTimestamp(s.now()), ProStatus: false, Email: email}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user '%s' on sign-in: %w", token.UID, err)
		}
		s.logger.Info("created user on first sign-in", zap.String("userID", token.UID))
	case err != nil:
		return nil, fmt.Errorf("failed to get user '%s': %w", token.UID, err)
	}

	return s.issueToken(ctx, token.UID)
}

func (s *authService) issueToken(ctx context.Context, uid string) (*models.AuthResponse, error) {
	custom, err := s.identity.CustomToken(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to mint custom token for '%s': %w", uid, err)
	}
	return &models.AuthResponse{UserID: uid, Token: custom, ExpiresIn: TokenTTLSeconds}, nil
}
