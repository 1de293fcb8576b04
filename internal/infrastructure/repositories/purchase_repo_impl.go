package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"denance.backend/internal/domain/entities"
	"denance.backend/internal/infrastructure/models"
)

// PurchaseRepository implements the activation purchase ledger
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create appends an activation purchase row
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entities.ActivationPurchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	m := &models.ActivationPurchase{
		ID:                   purchase.ID,
		UserID:               purchase.UserID,
		SenderName:           purchase.SenderName,
		SenderEmail:          purchase.SenderEmail,
		PaymentDetailsID:     purchase.PaymentDetailsID,
		PaymentScreenshotURL: purchase.PaymentScreenshotURL.Ptr(),
		Status:               string(purchase.Status),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	purchase.CreatedAt = m.CreatedAt
	purchase.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID lists a user's purchases newest-first
func (r *PurchaseRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ActivationPurchase, error) {
	var rows []models.ActivationPurchase
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*entities.ActivationPurchase, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		purchases = append(purchases, &entities.ActivationPurchase{
			ID:                   m.ID,
			UserID:               m.UserID,
			SenderName:           m.SenderName,
			SenderEmail:          m.SenderEmail,
			PaymentDetailsID:     m.PaymentDetailsID,
			PaymentScreenshotURL: null.StringFromPtr(m.PaymentScreenshotURL),
			Status:               entities.PurchaseStatus(m.Status),
			CreatedAt:            m.CreatedAt,
			UpdatedAt:            m.UpdatedAt,
		})
	}
	return purchases, nil
}

// GetStalePending returns pending purchases created before the cutoff
func (r *PurchaseRepository) GetStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.ActivationPurchase, error) {
	var rows []models.ActivationPurchase
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.PurchaseStatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*entities.ActivationPurchase, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		purchases = append(purchases, &entities.ActivationPurchase{
			ID:        m.ID,
			UserID:    m.UserID,
			Status:    entities.PurchaseStatus(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}
	return purchases, nil
}

// RejectPurchases marks the given pending purchases as rejected
func (r *PurchaseRepository) RejectPurchases(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ActivationPurchase{}).
		Where("id IN ? AND status = ?", ids, string(entities.PurchaseStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entities.PurchaseStatusRejected),
			"updated_at": time.Now(),
		}).Error
}
