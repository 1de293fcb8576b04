package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/domain/repositories"
	"denance.backend/pkg/redis"
)

// viewStateStore persists per-session FSM state. Satisfied by
// redis.ViewStateStore.
type viewStateStore interface {
	Save(ctx context.Context, sessionKey string, state interface{}) error
	Load(ctx context.Context, sessionKey string, dst interface{}) error
	Delete(ctx context.Context, sessionKey string) error
}

// ViewTransition is the outcome of applying a view event. Profile is
// populated only when the transition requires a balance re-fetch (entering
// the withdraw success screen or leaving the withdraw screen).
type ViewTransition struct {
	Session entities.ViewSession `json:"session"`
	Profile *entities.Profile    `json:"profile,omitempty"`
}

// ViewSessionUsecase owns the per-session view state machine
type ViewSessionUsecase struct {
	store       viewStateStore
	profileRepo repositories.ProfileRepository
}

// NewViewSessionUsecase creates a new view session usecase
func NewViewSessionUsecase(store viewStateStore, profileRepo repositories.ProfileRepository) *ViewSessionUsecase {
	return &ViewSessionUsecase{
		store:       store,
		profileRepo: profileRepo,
	}
}

// Current returns the session's view state, starting a fresh one at the
// dashboard if none exists yet.
func (u *ViewSessionUsecase) Current(ctx context.Context, userID uuid.UUID) (entities.ViewSession, error) {
	var session entities.ViewSession
	err := u.store.Load(ctx, userID.String(), &session)
	if err != nil {
		if errors.Is(err, redis.ErrViewStateNotFound) {
			return entities.NewViewSession(), nil
		}
		return entities.ViewSession{}, err
	}
	return session, nil
}

// Apply transitions the session with the given event and persists the result
func (u *ViewSessionUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.ViewEventInput) (*ViewTransition, error) {
	session, err := u.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, ok := session.Apply(input.Event, input.Withdrawal)
	if !ok {
		return nil, domainerrors.ErrInvalidViewEvent
	}

	if err := u.store.Save(ctx, userID.String(), next); err != nil {
		return nil, err
	}

	transition := &ViewTransition{Session: next}
	if next.State == entities.ViewWithdrawSuccess ||
		(session.State == entities.ViewWithdraw && next.State != entities.ViewWithdraw) {
		profile, err := u.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		transition.Profile = profile
	}
	return transition, nil
}

// Reset drops the session's view state; the next read starts at the dashboard
func (u *ViewSessionUsecase) Reset(ctx context.Context, userID uuid.UUID) error {
	return u.store.Delete(ctx, userID.String())
}

// RecordWithdrawalSuccess moves the session to the success screen after a
// completed withdrawal. Best-effort: the submission itself already happened.
func (u *ViewSessionUsecase) RecordWithdrawalSuccess(ctx context.Context, userID uuid.UUID, confirmation *entities.WithdrawalConfirmation) {
	_, _ = u.Apply(ctx, userID, &entities.ViewEventInput{
		Event: entities.ViewEventWithdrawSucceeded,
		Withdrawal: &entities.WithdrawalReceipt{
			AccountNumber: confirmation.AccountNumber,
			BankName:      confirmation.BankName,
			Amount:        confirmation.Amount,
			Currency:      confirmation.Currency,
		},
	})
}
