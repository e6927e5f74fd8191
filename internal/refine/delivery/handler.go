package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "refine-backend/internal/auth/delivery"
	"refine-backend/internal/refine/dto"
	"refine-backend/internal/refine/usecase"
	"refine-backend/pkg/ai"
	"refine-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RefineHandler handles refine and history requests
type RefineHandler struct {
	refineUsecase usecase.RefineUsecase
	logger        *zap.Logger
}

// NewRefineHandler creates a new RefineHandler
func NewRefineHandler(refineUsecase usecase.RefineUsecase, logger *zap.Logger) *RefineHandler {
	return &RefineHandler{
		refineUsecase: refineUsecase,
		logger:        logger,
	}
}

// Refine rewrites text and stores the result
// POST /api/refine
func (h *RefineHandler) Refine(c *gin.Context) {
	var req dto.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := response.MsgInvalidRequest
		if req.Text == "" {
			msg = response.MsgTextRequired
		}
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	res, err := h.refineUsecase.Refine(c.Request.Context(), authdelivery.UserID(c), req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			response.Fail(c, http.StatusBadRequest, response.MsgTextRequired)
			return
		}
		h.logger.Error("refine failed", zap.Error(err))
		msg, ok := ai.UserMessage(err)
		if !ok {
			msg = response.MsgRefineFailed
		}
		response.Fail(c, http.StatusInternalServerError, msg)
		return
	}

	response.Data(c, http.StatusOK, res)
}

// History lists recent refinements of the caller
// GET /api/history?limit=50
func (h *RefineHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	refinements, err := h.refineUsecase.History(c.Request.Context(), authdelivery.UserID(c), limit)
	if err != nil {
		h.logger.Error("history lookup failed", zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgHistoryFailed)
		return
	}

	response.Data(c, http.StatusOK, refinements)
}

// GetRefinement returns one refinement owned by the caller
// GET /api/history/:id
func (h *RefineHandler) GetRefinement(c *gin.Context) {
	refinement, err := h.refineUsecase.GetRefinement(c.Request.Context(), authdelivery.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgItemNotFound)
			return
		}
		h.logger.Error("refinement lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgItemLookupFail)
		return
	}

	response.Data(c, http.StatusOK, refinement)
}

// DeleteRefinement removes one refinement owned by the caller
// DELETE /api/history/:id
func (h *RefineHandler) DeleteRefinement(c *gin.Context) {
	err := h.refineUsecase.DeleteRefinement(c.Request.Context(), authdelivery.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgItemNotFound)
			return
		}
		h.logger.Error("refinement delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.MsgDeleteFailed)
		return
	}

	response.Message(c, http.StatusOK, response.MsgDeleted)
}
