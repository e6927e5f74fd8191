package api

import (
	"net/http"

	"refine-backend/internal/auth/delivery"
	"refine-backend/pkg/metrics"
	"refine-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.MsgNotFoundRoute)
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/kakao", h.authHandler.KakaoLogin)
			auth.POST("/google", h.authHandler.GoogleLogin)
			auth.GET("/me", delivery.RequireAuth(h.authUsecase), h.authHandler.Me)
		}

		// Refine and history routes work for anonymous callers too
		optional := api.Group("")
		optional.Use(delivery.OptionalAuth(h.authUsecase))
		{
			optional.POST("/refine", h.refineHandler.Refine)
			optional.GET("/history", h.refineHandler.History)
			optional.GET("/history/:id", h.refineHandler.GetRefinement)
			optional.DELETE("/history/:id", h.refineHandler.DeleteRefinement)
		}

		// Settings routes - runtime configuration of the self-hosted provider.
		// Changing or probing the endpoint affects every caller, so operators only.
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", h.settingsHandler.GetOllamaSettings)

			operator := settings.Group("")
			operator.Use(delivery.RequireAuth(h.authUsecase), RequireAdmin(h.config.AdminUserIDs))
			{
				operator.PUT("/ollama", h.settingsHandler.UpdateOllamaSettings)
				operator.POST("/ollama/test", h.settingsHandler.TestOllamaConnection)
			}
		}
	}
}
