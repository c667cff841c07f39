package http

import (
	"net/http"

	"github.com/jeyren95/px-backend-hw3/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// inventory API. It applies JSON content-type enforcement and request
// logging to every route, and bearer-token authentication to the item
// and user routes.
//
// Parameters:
//
//	authHandler - handler for registration and login endpoints
//	itemHandler - handler for the item CRUD endpoints
//	userHandler - handler for user-scoped item listings
//	verifier    - token verifier used by the auth middleware
//	logger      - structured logger for request logging middleware
//
// Routes:
//
//	GET    /                   → hello
//	POST   /register           → authHandler.Register
//	POST   /login              → authHandler.Login
//	GET    /items              → itemHandler.List        (protected)
//	POST   /items              → itemHandler.Create      (protected)
//	GET    /items/{id}         → itemHandler.Get         (protected)
//	PUT    /items/{id}         → itemHandler.Update      (protected)
//	DELETE /items/{id}         → itemHandler.Delete      (protected)
//	GET    /users/{uid}/items  → userHandler.ListItems   (protected)
func NewRouter(
	authHandler *AuthHandler,
	itemHandler *ItemHandler,
	userHandler *UserHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Home route
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Hello world!"))
	})

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(verifier))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.Post("/", itemHandler.Create)
			r.Get("/{id}", itemHandler.Get)
			r.Put("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.Delete)
		})

		r.Get("/users/{uid}/items", userHandler.ListItems)
	})

	return r
}
