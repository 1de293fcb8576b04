package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/infrastructure/models"
)

// PaymentDetailsRepository implements payment configuration reads
type PaymentDetailsRepository struct {
	db *gorm.DB
}

// NewPaymentDetailsRepository creates a new payment details repository
func NewPaymentDetailsRepository(db *gorm.DB) *PaymentDetailsRepository {
	return &PaymentDetailsRepository{db: db}
}

// GetActive returns the active payment configuration. A single active row is
// an invariant enforced by the operator, not here; if several are active the
// newest wins.
func (r *PaymentDetailsRepository) GetActive(ctx context.Context) (*entities.PaymentDetails, error) {
	var m models.PaymentDetails
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNoActivePaymentConfig
		}
		return nil, err
	}
	return &entities.PaymentDetails{
		ID:            m.ID,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		BankName:      m.BankName,
		Amount:        m.Amount,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
