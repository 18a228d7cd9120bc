package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
)

type stubAuthService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
}

func (s *stubAuthService) Register(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	return s.registerToken, &domain.User{ID: "1", Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, &domain.User{ID: "1", Email: email}, nil
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerToken: "tok_123"})
	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tok_123") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerToken: "tok"})
	c, _ := newAuthContext(t, `{"email":"alice@example.com"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "tok_456"})
	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tok_456") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_OpaqueFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("expected opaque message, got: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "not found") || strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("response leaks account existence: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_UnknownEmailSameResponse(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound})
	c, rec := newAuthContext(t, `{"email":"nobody@example.com","password":"pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("unknown email must yield the same opaque message: %s", rec.Body.String())
	}
}
