// Package http provides HTTP handlers for user authentication and
// inventory item management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jeyren95/px-backend-hw3/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new account and returns an access token.
	Register(ctx context.Context, username, password string) (string, error)
	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the plaintext password.
	Password string `json:"password"`
}

// tokenResponse is the JSON body returned on successful registration or login.
type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles POST /register.
// It expects a JSON body with non-empty "username" and "password" fields.
// On success it responds 201 with the access token; a taken username
// yields 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: token})
}

// Login handles POST /login.
// It expects a JSON body with non-empty "username" and "password" fields.
// On success it responds 200 with the access token; an unknown username
// and a wrong password both yield the same 400.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: token})
}
