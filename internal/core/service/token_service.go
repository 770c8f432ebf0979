package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// Token kinds. Access tokens prove identity on requests; refresh tokens are
// only good for minting a new pair. A refresh token presented as an access
// token (or vice versa) fails validation outright.
const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

var errInvalidToken = errors.New("invalid token")

// TokenClaims is the payload embedded in every issued token.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	Kind     string `json:"kind"`
}

// TokenService issues and validates HS256-signed access and refresh tokens.
// Tokens are never persisted: validity is a pure computation over signature,
// kind, and expiry, so validation is safe to run fully in parallel. Rotating
// the signing secret invalidates every outstanding token.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a TokenService. Non-positive TTLs fall back to
// 1 hour for access tokens and 7 days for refresh tokens.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken mints a short-lived access token for the user. It never
// fails for a valid identity short of a broken signer.
func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	return s.sign(user.ID, user.Username, user.Role, tokenKindAccess, s.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token. Only the username is
// embedded: the rest of the identity is re-resolved at refresh time.
func (s *TokenService) IssueRefreshToken(username string) (string, error) {
	return s.sign(username, username, "", tokenKindRefresh, s.refreshTTL)
}

// ParseAccessToken verifies signature, expiry, and kind, returning the
// embedded claims. Malformed, forged, expired, and wrong-kind tokens are
// indistinguishable failures.
func (s *TokenService) ParseAccessToken(token string) (*TokenClaims, error) {
	return s.parse(token, tokenKindAccess)
}

// ValidateRefreshToken reports whether the token is a live, genuine refresh
// token. It never panics on arbitrary input.
func (s *TokenService) ValidateRefreshToken(token string) bool {
	_, err := s.parse(token, tokenKindRefresh)
	return err == nil
}

// UsernameFromToken extracts the username embedded in a verified refresh
// token. Callers are expected to have validated the token first; the
// signature is still checked here so a forged token can never name a user.
func (s *TokenService) UsernameFromToken(token string) (string, error) {
	claims, err := s.parse(token, tokenKindRefresh)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (s *TokenService) sign(subject, username, role, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique jti so rotation yields a fresh value even when two
			// tokens for the same user are minted within one second.
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Role:     role,
		Kind:     kind,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token, kind string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Kind != kind {
		return nil, errInvalidToken
	}
	return claims, nil
}
