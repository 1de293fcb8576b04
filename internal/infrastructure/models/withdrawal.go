package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	AccountName    string          `gorm:"type:varchar(100);not null"`
	AccountNumber  string          `gorm:"type:varchar(100);not null"`
	BankName       string          `gorm:"type:varchar(100);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	ActivationCode string          `gorm:"type:varchar(8);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
