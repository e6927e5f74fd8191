package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "refine-backend/cmd/api"
	authdomain "refine-backend/internal/auth/domain"
	authRepo "refine-backend/internal/auth/repository"
	authUsecase "refine-backend/internal/auth/usecase"
	refinedomain "refine-backend/internal/refine/domain"
	refineRepo "refine-backend/internal/refine/repository"
	refineUsecase "refine-backend/internal/refine/usecase"
	"refine-backend/pkg/ai"
	"refine-backend/pkg/config"
	"refine-backend/pkg/database"
	"refine-backend/pkg/identity"
	"refine-backend/pkg/logger"
	"refine-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	identityTimeout = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &refinedomain.Refinement{}); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	refinementRepo := refineRepo.NewGormRefinementRepository(db)

	// Identity providers and session tokens
	kakaoClient := identity.NewKakaoClient(cfg.KakaoAPIURL, identityTimeout)
	googleVerifier := identity.NewGoogleVerifier(cfg.GoogleClientID, cfg.GoogleTokenInfoURL, identityTimeout)
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)

	// AI providers read the self-hosted endpoint from runtime settings so the
	// settings API can retarget it without a restart
	runtimeConfig := api.NewRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)
	selfHosted, commercial := ai.NewProviders(ai.Config{
		GetOllamaBaseURL: runtimeConfig.OllamaBaseURL,
		GetOllamaModel:   runtimeConfig.OllamaModel,
		OllamaTimeout:    cfg.OllamaTimeout,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		OpenAIModel:      cfg.OpenAIModel,
		OpenAITimeout:    cfg.OpenAITimeout,
	})
	if len(cfg.AdminUserIDs) == 0 {
		zapLogger.Warn("ADMIN_USER_IDS is empty; runtime settings cannot be changed")
	}
	selector := ai.NewSelector(selfHosted, commercial, zapLogger)
	zapLogger.Info("AI providers initialized",
		zap.String("ollama_url", cfg.OllamaBaseURL),
		zap.String("ollama_model", cfg.OllamaModel),
		zap.String("openai_model", cfg.OpenAIModel),
	)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, kakaoClient, googleVerifier, tokenService, zapLogger)
	refineUsecaseInstance := refineUsecase.NewRefineUsecase(refinementRepo, selector, cfg.HistoryDefaultLimit, cfg.HistoryMaxLimit, zapLogger)

	// Initialize HTTP handler
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(authUsecaseInstance, refineUsecaseInstance, runtimeConfig, pingDatabase(db), cfg, zapLogger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("port", cfg.Port), zap.String("gin_mode", gin.Mode()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		zapLogger.Error("Failed to close database", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}

func pingDatabase(db *gorm.DB) api.HealthCheck {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}
