package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Profile struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Username       string          `gorm:"type:varchar(50);not null"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string          `gorm:"type:varchar(255);not null"`
	PhoneNumber    *string         `gorm:"type:varchar(30)"`
	Role           string          `gorm:"type:varchar(20);not null;default:'USER'"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
	LastRefreshAt  *time.Time      `gorm:"type:timestamp"`
	ActivationCode string          `gorm:"type:varchar(8);uniqueIndex;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
