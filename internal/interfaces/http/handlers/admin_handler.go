package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/interfaces/http/response"
)

type ActivationAdminService interface {
	ReassignCode(ctx context.Context, targetUserID uuid.UUID, newCode string) error
}

// AdminHandler handles admin endpoints
type AdminHandler struct {
	activationAdmin ActivationAdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(activationAdmin ActivationAdminService) *AdminHandler {
	return &AdminHandler{activationAdmin: activationAdmin}
}

// ReassignActivationCode assigns a new activation code to a user
// PUT /api/v1/admin/activation-code
func (h *AdminHandler) ReassignActivationCode(c *gin.Context) {
	var input entities.ReassignActivationCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	targetUserID, err := uuid.Parse(input.UserID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	if err := h.activationAdmin.ReassignCode(c.Request.Context(), targetUserID, input.NewActivationCode); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Activation code updated",
	})
}
