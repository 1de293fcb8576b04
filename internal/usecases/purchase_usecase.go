package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"denance.backend/internal/domain/entities"
	"denance.backend/internal/domain/repositories"
	"denance.backend/pkg/logger"
)

// PurchaseUsecase handles activation code purchase submissions
type PurchaseUsecase struct {
	purchaseRepo       repositories.PurchaseRepository
	paymentDetailsRepo repositories.PaymentDetailsRepository
	notifier           Notifier
}

// NewPurchaseUsecase creates a new purchase usecase
func NewPurchaseUsecase(
	purchaseRepo repositories.PurchaseRepository,
	paymentDetailsRepo repositories.PaymentDetailsRepository,
	notifier Notifier,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		purchaseRepo:       purchaseRepo,
		paymentDetailsRepo: paymentDetailsRepo,
		notifier:           notifier,
	}
}

// GetActivePaymentDetails returns the bank account the buyer should pay into
func (u *PurchaseUsecase) GetActivePaymentDetails(ctx context.Context) (*entities.PaymentDetails, error) {
	return u.paymentDetailsRepo.GetActive(ctx)
}

// Submit records a purchase submission with status pending and alerts the
// operator channel. The notification never fails the submission.
func (u *PurchaseUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitPurchaseInput) (*entities.ActivationPurchase, error) {
	details, err := u.paymentDetailsRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	purchase := &entities.ActivationPurchase{
		UserID:           userID,
		SenderName:       input.SenderName,
		SenderEmail:      input.SenderEmail,
		PaymentDetailsID: &details.ID,
		Status:           entities.PurchaseStatusPending,
	}
	if input.PaymentScreenshotURL != "" {
		purchase.PaymentScreenshotURL = null.StringFrom(input.PaymentScreenshotURL)
	}

	if err := u.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	if notifyErr := u.notifier.NotifyPurchase(ctx, purchase); notifyErr != nil {
		logger.Warn(ctx, "purchase notification failed",
			zap.String("purchase_id", purchase.ID.String()),
			zap.Error(notifyErr))
	}

	return purchase, nil
}

// ListByUser lists the caller's purchase submissions
func (u *PurchaseUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ActivationPurchase, error) {
	return u.purchaseRepo.GetByUserID(ctx, userID)
}
