package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"denance.backend/internal/domain/entities"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
	GetByActivationCode(ctx context.Context, code string) (*entities.Profile, error)
	// DebitBalance decrements the balance by amount only if the stored
	// balance still covers it. Returns ErrInsufficientBalance otherwise.
	DebitBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
	// ClaimRefresh credits the reward and stamps last_refresh_at in a single
	// conditional write. Returns ErrNotFound when the gate has not elapsed.
	ClaimRefresh(ctx context.Context, userID uuid.UUID, reward decimal.Decimal, now time.Time, interval time.Duration) error
	UpdateActivationCode(ctx context.Context, userID uuid.UUID, code string) error
}
