package api

import (
	"context"
	"net/http"
	"time"

	authdelivery "refine-backend/internal/auth/delivery"
	authUsecase "refine-backend/internal/auth/usecase"
	refineDelivery "refine-backend/internal/refine/delivery"
	refineUsecase "refine-backend/internal/refine/usecase"
	"refine-backend/pkg/config"
	"refine-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	authHandler     *authdelivery.AuthHandler
	refineHandler   *refineDelivery.RefineHandler
	settingsHandler *SettingsHandler
	healthCheck     HealthCheck
	config          *config.Config
	logger          *zap.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, refineUc refineUsecase.RefineUsecase, runtime *RuntimeConfig, healthCheck HealthCheck, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		authUsecase:     authUc,
		authHandler:     authdelivery.NewAuthHandler(authUc, logger),
		refineHandler:   refineDelivery.NewRefineHandler(refineUc, logger),
		settingsHandler: NewSettingsHandler(runtime, logger),
		healthCheck:     healthCheck,
		config:          cfg,
		logger:          logger,
	}
}

// Engine builds the gin engine with the global middleware and every route.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger(h.logger))
	r.Use(Recovery(h.logger))
	r.Use(CORS(h.config.CORSAllowedOrigins))
	r.Use(metrics.GinMiddleware())

	SetupRoutes(r, h)

	return r
}

// Health reports process and database liveness
// GET /health, GET /api/health
func (h *Handler) Health(c *gin.Context) {
	status, database := http.StatusOK, "ok"

	if h.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.healthCheck(ctx); err != nil {
			h.logger.Warn("database health check failed", zap.Error(err))
			status, database = http.StatusServiceUnavailable, "unavailable"
		}
	}

	state := "ok"
	if status != http.StatusOK {
		state = "error"
	}
	c.JSON(status, gin.H{
		"status":    state,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
