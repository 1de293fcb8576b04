package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m := &models.Profile{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Username:       profile.Username,
		Email:          profile.Email,
		PasswordHash:   profile.PasswordHash,
		PhoneNumber:    profile.PhoneNumber.Ptr(),
		Role:           string(profile.Role),
		Balance:        profile.Balance,
		ActivationCode: profile.ActivationCode,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a profile by its owning user ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&m), nil
}

// GetByEmail gets a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&m), nil
}

// GetByActivationCode gets the profile currently holding the given code
func (r *ProfileRepository) GetByActivationCode(ctx context.Context, code string) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("activation_code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&m), nil
}

// DebitBalance decrements the balance with a guard against overdraw. The
// balance check and the decrement are one statement, so concurrent
// withdrawals cannot both pass a stale read.
func (r *ProfileRepository) DebitBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientBalance
	}
	return nil
}

// ClaimRefresh credits the reward and stamps last_refresh_at only if the
// previous claim is older than the interval (or absent).
func (r *ProfileRepository) ClaimRefresh(ctx context.Context, userID uuid.UUID, reward decimal.Decimal, now time.Time, interval time.Duration) error {
	cutoff := now.Add(-interval)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ? AND (last_refresh_at IS NULL OR last_refresh_at <= ?)", userID, cutoff).
		Updates(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", reward),
			"last_refresh_at": now,
			"updated_at":      now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateActivationCode sets a new activation code on the target profile
func (r *ProfileRepository) UpdateActivationCode(ctx context.Context, userID uuid.UUID, code string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"activation_code": code,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toProfileEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		ID:             m.ID,
		UserID:         m.UserID,
		Username:       m.Username,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		PhoneNumber:    null.StringFromPtr(m.PhoneNumber),
		Role:           entities.ProfileRole(m.Role),
		Balance:        m.Balance,
		LastRefreshAt:  null.TimeFromPtr(m.LastRefreshAt),
		ActivationCode: m.ActivationCode,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
