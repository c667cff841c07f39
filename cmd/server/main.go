// Package main initializes and starts the inventory HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/jeyren95/px-backend-hw3/internal/auth"
	"github.com/jeyren95/px-backend-hw3/internal/config"
	"github.com/jeyren95/px-backend-hw3/internal/db"
	"github.com/jeyren95/px-backend-hw3/internal/logger"
	"github.com/jeyren95/px-backend-hw3/internal/repository"
	"github.com/jeyren95/px-backend-hw3/internal/server/handler/http"
	"github.com/jeyren95/px-backend-hw3/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// An absent signing key is a configuration error, not a runtime error.
	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing key is not configured")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and items.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	itemRepo := repository.NewPostgresItemRepository(postgresDB)

	// Token service and password hasher share the process-wide configuration.
	tokens := auth.NewTokenService([]byte(options.JWTSecret), time.Duration(options.JWTExpirySeconds)*time.Second)
	hasher := auth.NewHasher(options.BcryptCost)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, hasher, tokens)
	itemService := service.NewItemService(itemRepo)

	// Create HTTP handlers for auth, item, and user endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	itemHandler := &http.ItemHandler{ItemService: itemService}
	userHandler := &http.UserHandler{ItemService: itemService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, itemHandler, userHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
