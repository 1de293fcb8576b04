package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/domain/repositories"
)

// ActivationAdminUsecase handles out-of-band activation code reassignment
type ActivationAdminUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewActivationAdminUsecase creates a new activation admin usecase
func NewActivationAdminUsecase(profileRepo repositories.ProfileRepository) *ActivationAdminUsecase {
	return &ActivationAdminUsecase{profileRepo: profileRepo}
}

// ReassignCode sets a new activation code on the target profile. The code is
// uppercased, must be exactly 8 characters, and must not be held by any
// profile, the target included.
func (u *ActivationAdminUsecase) ReassignCode(ctx context.Context, targetUserID uuid.UUID, newCode string) error {
	code := strings.ToUpper(strings.TrimSpace(newCode))
	if len(code) != entities.ActivationCodeLength {
		return domainerrors.ErrInvalidCodeLength
	}

	holder, err := u.profileRepo.GetByActivationCode(ctx, code)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	if holder != nil {
		return domainerrors.ErrCodeInUse
	}

	return u.profileRepo.UpdateActivationCode(ctx, targetUserID, code)
}
