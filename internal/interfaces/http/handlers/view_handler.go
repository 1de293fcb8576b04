package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/interfaces/http/middleware"
	"denance.backend/internal/interfaces/http/response"
	"denance.backend/internal/usecases"
)

type ViewSessionService interface {
	Current(ctx context.Context, userID uuid.UUID) (entities.ViewSession, error)
	Apply(ctx context.Context, userID uuid.UUID, input *entities.ViewEventInput) (*usecases.ViewTransition, error)
	Reset(ctx context.Context, userID uuid.UUID) error
}

// ViewHandler handles the dashboard view state machine endpoints
type ViewHandler struct {
	viewUsecase ViewSessionService
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewUsecase ViewSessionService) *ViewHandler {
	return &ViewHandler{viewUsecase: viewUsecase}
}

// Current returns the session's view state
// GET /api/v1/view
func (h *ViewHandler) Current(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	session, err := h.viewUsecase.Current(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"session": session,
	})
}

// ApplyEvent transitions the view state machine
// POST /api/v1/view/events
func (h *ViewHandler) ApplyEvent(c *gin.Context) {
	var input entities.ViewEventInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	transition, err := h.viewUsecase.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transition)
}

// Reset drops the session's view state
// DELETE /api/v1/view
func (h *ViewHandler) Reset(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.viewUsecase.Reset(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "View state reset",
	})
}
