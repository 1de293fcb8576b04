package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ProfileRole represents profile roles
type ProfileRole string

const (
	ProfileRoleAdmin ProfileRole = "ADMIN"
	ProfileRoleUser  ProfileRole = "USER"
)

// ActivationCodeLength is the required length of an activation code after uppercasing.
const ActivationCodeLength = 8

// Profile represents a user profile with its wallet balance
type Profile struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID       `json:"userId"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	PhoneNumber    null.String     `json:"phoneNumber,omitempty"`
	Role           ProfileRole     `json:"role"`
	Balance        decimal.Decimal `json:"balance"`
	LastRefreshAt  null.Time       `json:"lastRefreshAt,omitempty"`
	ActivationCode string          `json:"-"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	DeletedAt      *time.Time      `json:"-"`
}

// RegisterInput represents input for registering a profile
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string   `json:"accessToken,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	SessionID    string   `json:"sessionId,omitempty"`
	Profile      *Profile `json:"profile"`
}

// RefreshResult is returned by a successful daily refresh claim.
type RefreshResult struct {
	NewBalance    decimal.Decimal `json:"newBalance"`
	Reward        decimal.Decimal `json:"reward"`
	LastRefreshAt time.Time       `json:"lastRefreshAt"`
}

// ReassignActivationCodeInput represents input for the admin code reassignment
type ReassignActivationCodeInput struct {
	UserID            string `json:"userId" binding:"required"`
	NewActivationCode string `json:"newActivationCode" binding:"required"`
}
