package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// SignupInput carries the data needed to register a new user. The role is
// not part of the input: every signup produces a USER.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair is an access/refresh token couple minted together. Refresh
// always rotates: both values are newly issued, never reused.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	TokenPair
	User *domain.User
}

// AuthService implements signup, login, and the stateless refresh protocol.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login collapses unknown-username and wrong-password into the single
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Refresh validates the refresh token and mints a fresh pair. It never
	// returns a partial pair: any failure yields domain.ErrInvalidRefreshToken.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error)
}
