package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PurchaseStatus represents activation purchase status
type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusApproved PurchaseStatus = "approved"
	PurchaseStatusRejected PurchaseStatus = "rejected"
)

// ActivationPurchase represents a manual bank-transfer submission for an
// activation code. Status progression is an operator concern.
type ActivationPurchase struct {
	ID                   uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID      `json:"userId"`
	SenderName           string         `json:"senderName"`
	SenderEmail          string         `json:"senderEmail"`
	PaymentDetailsID     *uuid.UUID     `json:"paymentDetailsId,omitempty"`
	PaymentScreenshotURL null.String    `json:"paymentScreenshotUrl,omitempty"`
	Status               PurchaseStatus `json:"status"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// SubmitPurchaseInput represents input for submitting an activation purchase
type SubmitPurchaseInput struct {
	SenderName           string `json:"senderName" binding:"required,min=2,max=100"`
	SenderEmail          string `json:"senderEmail" binding:"required,email"`
	PaymentScreenshotURL string `json:"paymentScreenshotUrl"`
}
