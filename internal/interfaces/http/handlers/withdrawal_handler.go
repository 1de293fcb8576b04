package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/interfaces/http/middleware"
	"denance.backend/internal/interfaces/http/response"
	"denance.backend/pkg/utils"
)

type WithdrawalService interface {
	Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitWithdrawalInput) (*entities.WithdrawalConfirmation, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int64, error)
}

type viewRecorder interface {
	RecordWithdrawalSuccess(ctx context.Context, userID uuid.UUID, confirmation *entities.WithdrawalConfirmation)
}

// WithdrawalHandler handles withdrawal endpoints
type WithdrawalHandler struct {
	withdrawalUsecase WithdrawalService
	views             viewRecorder
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUsecase WithdrawalService, views viewRecorder) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUsecase: withdrawalUsecase,
		views:             views,
	}
}

// Submit creates a new withdrawal
// POST /api/v1/withdrawals
func (h *WithdrawalHandler) Submit(c *gin.Context) {
	var input entities.SubmitWithdrawalInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	confirmation, err := h.withdrawalUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Move the session to the success screen. The withdrawal itself already
	// committed, so a failure here must not surface.
	if h.views != nil {
		h.views.RecordWithdrawalSuccess(c.Request.Context(), userID, confirmation)
	}

	response.Success(c, http.StatusCreated, confirmation)
}

// History lists the user's withdrawals, newest first
// GET /api/v1/withdrawals
func (h *WithdrawalHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	withdrawals, total, err := h.withdrawalUsecase.History(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"withdrawals": withdrawals,
		"meta":        utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
