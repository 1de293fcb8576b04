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

type PurchaseService interface {
	GetActivePaymentDetails(ctx context.Context) (*entities.PaymentDetails, error)
	Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitPurchaseInput) (*entities.ActivationPurchase, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ActivationPurchase, error)
}

// PurchaseHandler handles activation code purchase endpoints
type PurchaseHandler struct {
	purchaseUsecase PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseUsecase PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUsecase: purchaseUsecase}
}

// GetPaymentDetails returns the bank account to pay into
// GET /api/v1/payment-details
func (h *PurchaseHandler) GetPaymentDetails(c *gin.Context) {
	details, err := h.purchaseUsecase.GetActivePaymentDetails(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"paymentDetails": details,
	})
}

// Submit records a bank-transfer claim for an activation code
// POST /api/v1/activation-purchases
func (h *PurchaseHandler) Submit(c *gin.Context) {
	var input entities.SubmitPurchaseInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	purchase, err := h.purchaseUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, purchase)
}

// List returns the user's purchase submissions
// GET /api/v1/activation-purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	purchases, err := h.purchaseUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"purchases": purchases,
	})
}
