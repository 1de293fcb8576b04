package models

import (
	"time"

	"github.com/google/uuid"
)

type ActivationPurchase struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID               uuid.UUID  `gorm:"type:uuid;index;not null"`
	SenderName           string     `gorm:"type:varchar(100);not null"`
	SenderEmail          string     `gorm:"type:varchar(255);not null"`
	PaymentDetailsID     *uuid.UUID `gorm:"type:uuid"`
	PaymentScreenshotURL *string    `gorm:"type:text"`
	Status               string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	PaymentDetails *PaymentDetails `gorm:"foreignKey:PaymentDetailsID"`
}
