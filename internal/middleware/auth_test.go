package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// fakeVerifier implements TokenVerifier for testing.
type fakeVerifier struct {
	userID int64
	err    error
}

func (f *fakeVerifier) Verify(token string) (int64, error) {
	return f.userID, f.err
}

func TestAuth_MissingHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := Auth(&fakeVerifier{userID: 1})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	headers := []string{"Bearer", "token-without-scheme", "Basic abc123"}

	for _, header := range headers {
		dummy := &dummyHandler{}
		h := Auth(&fakeVerifier{userID: 1})(dummy)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/items", nil)
		req.Header.Set("Authorization", header)
		h.ServeHTTP(rec, req)

		if dummy.called {
			t.Errorf("header %q: did not expect next handler to be called", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401 Unauthorized, got %d", header, rec.Code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := Auth(&fakeVerifier{err: errors.New("invalid token")})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := Auth(&fakeVerifier{userID: 42})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if got := GetUserIDFromContext(dummy.ctx); got != 42 {
		t.Errorf("expected context user id 42, got %d", got)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	// no value
	if got := GetUserIDFromContext(context.Background()); got != 0 {
		t.Errorf("expected 0 for missing user id, got %d", got)
	}
	// with value
	ctx := WithUserID(context.Background(), 7)
	if got := GetUserIDFromContext(ctx); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
