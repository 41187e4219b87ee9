package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/auth"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/config"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/handler"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/mail"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/middleware"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/repository/mongodb"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/service"
	serviceAuth "github.com/yhsunny176/curee-restaurant-management-server-side/internal/service/auth"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Setup structured logging
	logger, closeLog, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"collection_prefix", cfg.CollectionPrefix,
		"auth_provider", cfg.AuthProvider,
		"mail_driver", cfg.MailDriver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Token verification against the identity provider
	verifier, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()
	authenticator := auth.NewAuthenticator(verifier, logger)

	// Document store
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("database disconnect failed", "error", err)
		}
	}()

	repoConfig := &mongodb.RepositoryConfig{
		DB:          client.Database(cfg.DatabaseName),
		Collections: mongodb.NewCollectionNames(cfg.CollectionPrefix),
		Logger:      logger,
	}
	logger.Info("database connected", "database", cfg.DatabaseName)

	if err := mongodb.EnsureIndexes(ctx, repoConfig); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	foodRepo := mongodb.NewFoodRepository(repoConfig)
	orderRepo := mongodb.NewOrderRepository(repoConfig)

	// Mail relay
	mailer, err := newMailer(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}
	templates, err := mail.NewTemplates()
	if err != nil {
		log.Fatalf("Failed to load email templates: %v", err)
	}

	// Services (authorization is owner-based: emails as issued by the identity provider)
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(orderRepo)
	foodService := service.NewFoodService(foodRepo, authorizer, logger)
	orderService := service.NewOrderService(orderRepo, authorizer, logger)
	contactService := service.NewContactService(mailer, templates, cfg.ContactRecipient, logger)

	logger.Info("services initialized")

	mux := handler.NewRouter(&handler.Handlers{
		Food:    handler.NewFoodHandler(foodService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Contact: handler.NewContactHandler(contactService, logger),
		Health:  handler.NewHealthHandler(repoConfig, logger),
	}, middleware.RequireAuth(authenticator, logger))

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Routes (auth is per route)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - outermost so OPTIONS pre-flight requests never reach auth
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "error", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

func newVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (auth.TokenVerifier, error) {
	if cfg.AuthProvider == "oidc" {
		v, err := auth.NewOIDCVerifier(ctx, cfg.AuthIssuer, cfg.AuthAudience, logger)
		if err != nil {
			return nil, err
		}
		return v, nil
	}

	v, err := auth.NewJWKSVerifier(auth.JWKSConfig{
		JWKSURL:  cfg.AuthJWKSURL,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
	}, logger)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func newMailer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (mail.Mailer, error) {
	if cfg.MailDriver == "ses" {
		m, err := mail.NewSESMailer(ctx, mail.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			From:            cfg.MailFrom,
		}, logger)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	logger.Warn("mail driver is 'log': contact emails are logged, not sent")
	return mail.NewLogMailer(logger), nil
}
