package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/domain/repositories"
	"denance.backend/pkg/crypto"
	"denance.backend/pkg/jwt"
	"denance.backend/pkg/utils"
)

// codeAssignAttempts bounds the retry loop when a freshly generated
// activation code collides with an existing profile.
const codeAssignAttempts = 5

// AuthUsecase handles registration and login
type AuthUsecase struct {
	profileRepo repositories.ProfileRepository
	jwtService  *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(profileRepo repositories.ProfileRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		profileRepo: profileRepo,
		jwtService:  jwtService,
	}
}

// Register creates a profile with a zero balance and a fresh unique
// activation code.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Profile, error) {
	_, err := u.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := u.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		ID:             utils.GenerateUUIDv7(),
		UserID:         utils.GenerateUUIDv7(),
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		Role:           entities.ProfileRoleUser,
		Balance:        decimal.Zero,
		ActivationCode: code,
	}
	if input.PhoneNumber != "" {
		profile.PhoneNumber = null.StringFrom(input.PhoneNumber)
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Login checks credentials and issues a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.Profile, *jwt.TokenPair, error) {
	profile, err := u.profileRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, profile.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(profile.UserID, profile.Email, profile.Username, string(profile.Role))
	if err != nil {
		return nil, nil, err
	}
	return profile, tokens, nil
}

// RefreshToken validates a refresh token and issues a new pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	profile, err := u.profileRepo.GetByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return u.jwtService.GenerateTokenPair(profile.UserID, profile.Email, profile.Username, string(profile.Role))
}

// Me fetches the profile for the authenticated user
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

func (u *AuthUsecase) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeAssignAttempts; attempt++ {
		code, err := crypto.GenerateActivationCode()
		if err != nil {
			return "", err
		}
		_, err = u.profileRepo.GetByActivationCode(ctx, code)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// Collision; try again.
	}
	return "", fmt.Errorf("could not assign a unique activation code after %d attempts", codeAssignAttempts)
}
