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
)

type RefreshService interface {
	Claim(ctx context.Context, userID uuid.UUID) (*entities.RefreshResult, error)
}

type ProfileReader interface {
	Me(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
}

// ProfileHandler handles profile and balance endpoints
type ProfileHandler struct {
	profiles ProfileReader
	refresh  RefreshService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles ProfileReader, refresh RefreshService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		refresh:  refresh,
	}
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profiles.Me(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile": profile,
	})
}

// ClaimRefresh credits the daily reward if the 24h gate has elapsed
// POST /api/v1/profile/refresh
func (h *ProfileHandler) ClaimRefresh(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.refresh.Claim(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
