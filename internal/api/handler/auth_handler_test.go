package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

type stubAuthService struct {
	signupErr  error
	loginErr   error
	refreshErr error
}

func (s *stubAuthService) Signup(_ context.Context, input ports.SignupInput) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &domain.User{ID: "u1", Username: input.Username, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, _ string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.LoginResult{
		TokenPair: ports.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"},
		User:      &domain.User{ID: "u1", Username: username, Email: username + "@example.com", Role: domain.RoleUser},
	}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (*ports.TokenPair, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &ports.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, principal domain.Principal) (*domain.User, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	return &domain.User{ID: principal.ID, Username: principal.Username, Email: principal.Username + "@example.com", Role: principal.Role}, nil
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["username"] != "alice" || resp["role"] != domain.RoleUser {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"short username": `{"username":"al","email":"a@example.com","password":"hunter2hunter2"}`,
		"bad email":      `{"username":"alice","email":"not-an-email","password":"hunter2hunter2"}`,
		"short password": `{"username":"alice","email":"a@example.com","password":"short"}`,
	}
	for name, body := range cases {
		c, _ := newAuthContext(t, http.MethodPost, "/api/auth/signup", body)
		err := h.Signup(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %v", name, err)
		}
	}
}

func TestAuthHandler_Signup_DuplicatePassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrUsernameTaken})
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)

	if err := h.Signup(c); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"hunter2hunter2"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["accessToken"] != "access-1" || resp["refreshToken"] != "refresh-1" {
		t.Fatalf("unexpected tokens: %v", resp)
	}
	if resp["username"] != "alice" || resp["role"] != domain.RoleUser {
		t.Fatalf("unexpected identity: %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/refresh",
		`{"refreshToken":"refresh-1"}`)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["accessToken"] != "access-2" || resp["refreshToken"] != "refresh-2" {
		t.Fatalf("unexpected tokens: %v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(principalKey, domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleUser})
	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// Tokens are never part of the identity probe.
	if strings.Contains(rec.Body.String(), "Token") {
		t.Fatalf("identity response leaked tokens: %s", rec.Body.String())
	}

	c, _ = newAuthContext(t, http.MethodGet, "/api/auth/me", "")
	if err := h.Me(c); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for anonymous, got %v", err)
	}
}
