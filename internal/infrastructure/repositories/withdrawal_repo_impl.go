package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"denance.backend/internal/domain/entities"
	"denance.backend/internal/infrastructure/models"
)

// WithdrawalRepository implements the withdrawal ledger
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create appends a withdrawal row
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	if withdrawal.ID == uuid.Nil {
		withdrawal.ID = uuid.New()
	}
	m := &models.Withdrawal{
		ID:             withdrawal.ID,
		UserID:         withdrawal.UserID,
		AccountName:    withdrawal.AccountName,
		AccountNumber:  withdrawal.AccountNumber,
		BankName:       withdrawal.BankName,
		Amount:         withdrawal.Amount,
		Currency:       string(withdrawal.Currency),
		ActivationCode: withdrawal.ActivationCode,
		Status:         string(withdrawal.Status),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	withdrawal.CreatedAt = m.CreatedAt
	withdrawal.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID lists a user's withdrawals newest-first with pagination
func (r *WithdrawalRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Withdrawal{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Withdrawal
	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	withdrawals := make([]*entities.Withdrawal, 0, len(rows))
	for i := range rows {
		withdrawals = append(withdrawals, toWithdrawalEntity(&rows[i]))
	}
	return withdrawals, total, nil
}

func toWithdrawalEntity(m *models.Withdrawal) *entities.Withdrawal {
	return &entities.Withdrawal{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountName:    m.AccountName,
		AccountNumber:  m.AccountNumber,
		BankName:       m.BankName,
		Amount:         m.Amount,
		Currency:       entities.Currency(m.Currency),
		ActivationCode: m.ActivationCode,
		Status:         entities.WithdrawalStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
