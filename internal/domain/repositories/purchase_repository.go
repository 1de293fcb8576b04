package repositories

import (
	"context"

	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
)

// PurchaseRepository defines activation purchase ledger operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entities.ActivationPurchase) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ActivationPurchase, error)
}
