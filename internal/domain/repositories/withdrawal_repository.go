package repositories

import (
	"context"

	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
)

// WithdrawalRepository defines withdrawal ledger operations. Rows are
// append-only from the core's perspective; status progression is external.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entities.Withdrawal) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int64, error)
}
