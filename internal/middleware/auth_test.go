package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kurniawan20/effiework-sub000/internal/auth"
)

// dummyHandler records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

type fakeParser struct {
	claims *auth.Claims
	err    error
	got    string
}

func (f *fakeParser) Parse(token string) (*auth.Claims, error) {
	f.got = token
	return f.claims, f.err
}

func validClaims() *auth.Claims {
	return &auth.Claims{Username: "alice", RegisteredClaims: jwt.RegisteredClaims{Subject: "7"}}
}

func TestBearerAuth_PublicPathBypass(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeParser{err: errors.New("unused")}, "POST /api/auth/login")(dummy)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	if !dummy.called {
		t.Error("expected next handler to be called for the login route")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
}

func TestBearerAuth_PublicPathIsMethodSpecific(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeParser{}, "POST /api/auth/login")(dummy)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	if dummy.called || rec.Code != http.StatusUnauthorized {
		t.Errorf("GET on a POST-only public route must be authenticated, got %d", rec.Code)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeParser{claims: validClaims()})(dummy)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

	if dummy.called {
		t.Error("did not expect next handler to be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"Authorization header required"`) {
		t.Errorf("expected JSON message body, got %s", rec.Body.String())
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	parser := &fakeParser{err: auth.ErrInvalidToken}
	h := BearerAuth(parser)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.Header.Set("Authorization", "Bearer expired")
	h.ServeHTTP(rec, req)

	if dummy.called || rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without calling next, got %d called=%v", rec.Code, dummy.called)
	}
	if parser.got != "expired" {
		t.Errorf("parser received %q", parser.got)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeParser{claims: validClaims()})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called with a valid token")
	}
	if id := GetUserIDFromContext(dummy.ctx); id != 7 {
		t.Errorf("expected user id 7, got %d", id)
	}
}

func TestBearerAuth_Preflight(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeParser{})(dummy)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/assets", nil))

	if !dummy.called {
		t.Error("expected OPTIONS to pass through")
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	if id := GetUserIDFromContext(context.Background()); id != 0 {
		t.Errorf("expected 0 for missing user, got %d", id)
	}
	ctx := context.WithValue(context.Background(), userIDKey, int64(3))
	if id := GetUserIDFromContext(ctx); id != 3 {
		t.Errorf("expected 3, got %d", id)
	}
}
