package delivery

import (
	"net/http"
	"strings"

	"refine-backend/internal/auth/usecase"
	"refine-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxClaims = "claims"
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.MsgAuthRequired)
			return
		}

		claims, err := authUsecase.ValidateToken(raw)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, response.MsgInvalidToken)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and otherwise lets the request through as anonymous.
func OptionalAuth(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if claims, err := authUsecase.ValidateToken(raw); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxClaims, claims)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or nil for anonymous callers.
func UserID(c *gin.Context) *string {
	id := c.GetString(ctxUserID)
	if id == "" {
		return nil
	}
	return &id
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
