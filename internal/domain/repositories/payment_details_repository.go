package repositories

import (
	"context"

	"denance.backend/internal/domain/entities"
)

// PaymentDetailsRepository defines payment configuration reads
type PaymentDetailsRepository interface {
	GetActive(ctx context.Context) (*entities.PaymentDetails, error)
}
