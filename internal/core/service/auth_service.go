package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

// AuthService implements signup, login, and the stateless refresh protocol.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Signup registers a new USER-role identity. Username and email collisions
// are pre-checked here and backstopped by the store's unique indexes, so a
// racing duplicate loses with the same error either way.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a token pair. An unknown username
// and a wrong password produce the same error so responses cannot reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return &ports.LoginResult{TokenPair: *pair, User: user}, nil
}

// Refresh validates the refresh token, re-resolves the user, and rotates:
// both tokens in the returned pair are newly minted. The presented refresh
// token stays signature-valid until its expiry; with no server-side token
// state there is no way to revoke it individually.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if !s.tokens.ValidateRefreshToken(refreshToken) {
		return nil, domain.ErrInvalidRefreshToken
	}

	username, err := s.tokens.UsernameFromToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// The account named by a once-valid token no longer resolves;
		// report the same failure as any bad token.
		return nil, domain.ErrInvalidRefreshToken
	}

	return s.issuePair(user)
}

// CurrentUser returns the identity summary for an authenticated principal.
func (s *AuthService) CurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.users.FindByUsername(ctx, principal.Username)
}

func (s *AuthService) issuePair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
