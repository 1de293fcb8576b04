package usecases

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"denance.backend/internal/config"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/domain/repositories"
)

// RefreshUsecase handles the daily balance refresh claim
type RefreshUsecase struct {
	profileRepo repositories.ProfileRepository
	policy      config.PolicyConfig
	now         func() time.Time
}

// NewRefreshUsecase creates a new refresh usecase
func NewRefreshUsecase(profileRepo repositories.ProfileRepository, policy config.PolicyConfig) *RefreshUsecase {
	return &RefreshUsecase{
		profileRepo: profileRepo,
		policy:      policy,
		now:         time.Now,
	}
}

// Claim applies the daily reward. The gate check and the credit are a single
// conditional write, so two sessions racing the claim cannot both win; the
// loser gets TooSoonError with the hours left until the next claim.
func (u *RefreshUsecase) Claim(ctx context.Context, userID uuid.UUID) (*entities.RefreshResult, error) {
	now := u.now()

	err := u.profileRepo.ClaimRefresh(ctx, userID, u.policy.RefreshReward, now, u.policy.RefreshInterval)
	if err == nil {
		profile, err := u.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &entities.RefreshResult{
			NewBalance:    profile.Balance,
			Reward:        u.policy.RefreshReward,
			LastRefreshAt: now,
		}, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	// The conditional write refused. Either the profile is missing or the
	// gate has not elapsed; the re-read distinguishes the two.
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.LastRefreshAt.Valid {
		return nil, domainerrors.ErrNotFound
	}

	elapsed := now.Sub(profile.LastRefreshAt.Time)
	remaining := hoursRemaining(u.policy.RefreshInterval, elapsed)
	return nil, &domainerrors.TooSoonError{HoursRemaining: remaining}
}

// hoursRemaining is ceil(intervalHours - elapsedHours), floored at 1 so the
// user never sees "0 hours" while still gated.
func hoursRemaining(interval, elapsed time.Duration) int {
	remaining := int(math.Ceil(interval.Hours() - elapsed.Hours()))
	if remaining < 1 {
		remaining = 1
	}
	return remaining
}
