package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency represents a withdrawal currency tag
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

// WithdrawalStatus represents withdrawal status
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusFailed    WithdrawalStatus = "failed"
)

// Withdrawal represents a withdrawal request row in the ledger.
// For NGN the destination is a bank account; for USD the wallet address is
// carried in AccountNumber.
type Withdrawal struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID        `json:"userId"`
	AccountName    string           `json:"accountName"`
	AccountNumber  string           `json:"accountNumber"`
	BankName       string           `json:"bankName"`
	Amount         decimal.Decimal  `json:"amount"`
	Currency       Currency         `json:"currency"`
	ActivationCode string           `json:"-"`
	Status         WithdrawalStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// SubmitWithdrawalInput represents input for submitting a withdrawal
type SubmitWithdrawalInput struct {
	AccountName    string `json:"accountName"`
	AccountNumber  string `json:"accountNumber"`
	BankName       string `json:"bankName"`
	WalletAddress  string `json:"walletAddress"`
	Amount         string `json:"amount" binding:"required"`
	Currency       string `json:"currency" binding:"required,oneof=NGN USD"`
	ActivationCode string `json:"activationCode" binding:"required"`
}

// WithdrawalConfirmation echoes the accepted withdrawal for the success screen.
type WithdrawalConfirmation struct {
	WithdrawalID  uuid.UUID       `json:"withdrawalId"`
	AccountNumber string          `json:"accountNumber"`
	BankName      string          `json:"bankName,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	NewBalance    decimal.Decimal `json:"newBalance"`
}
