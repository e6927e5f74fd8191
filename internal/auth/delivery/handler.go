package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdto "refine-backend/internal/auth/dto"
	"refine-backend/internal/auth/usecase"
	"refine-backend/pkg/identity"
	"refine-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles login and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// KakaoLogin exchanges a Kakao access token for a session token
// POST /api/auth/kakao
func (h *AuthHandler) KakaoLogin(c *gin.Context) {
	var req authdto.KakaoLoginRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.AccessToken) == "" {
		response.Fail(c, http.StatusBadRequest, response.MsgAccessTokenReq)
		return
	}

	res, err := h.authUsecase.KakaoLogin(c.Request.Context(), req.AccessToken)
	if err != nil {
		h.logger.Error("kakao login failed", zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgKakaoLoginFail)
		return
	}

	response.Data(c, http.StatusOK, res)
}

// GoogleLogin exchanges a Google ID token for a session token
// POST /api/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req authdto.GoogleLoginRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.IDToken) == "" {
		response.Fail(c, http.StatusBadRequest, response.MsgIDTokenRequired)
		return
	}

	res, err := h.authUsecase.GoogleLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			response.Fail(c, http.StatusBadRequest, response.MsgInvalidToken)
			return
		}
		h.logger.Error("google login failed", zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgGoogleLoginFail)
		return
	}

	response.Data(c, http.StatusOK, res)
}

// Me returns the logged-in user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := UserID(c)
	if userID == nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgAuthRequired)
		return
	}

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), *userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		h.logger.Error("user lookup failed", zap.String("user_id", *userID), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgUserLookupFail)
		return
	}

	response.Data(c, http.StatusOK, authdto.NewUserResponse(user))
}
