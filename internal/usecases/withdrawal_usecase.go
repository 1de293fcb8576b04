package usecases

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"denance.backend/internal/config"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/domain/repositories"
	"denance.backend/pkg/logger"
)

// Notifier pushes operator alerts. Implementations must be safe for
// concurrent use; errors are never surfaced to users.
type Notifier interface {
	NotifyWithdrawal(ctx context.Context, w *entities.Withdrawal) error
	NotifyPurchase(ctx context.Context, p *entities.ActivationPurchase) error
}

// WithdrawalUsecase handles withdrawal submission and history
type WithdrawalUsecase struct {
	profileRepo    repositories.ProfileRepository
	withdrawalRepo repositories.WithdrawalRepository
	uow            repositories.UnitOfWork
	notifier       Notifier
	policy         config.PolicyConfig
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	profileRepo repositories.ProfileRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
	policy config.PolicyConfig,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		profileRepo:    profileRepo,
		withdrawalRepo: withdrawalRepo,
		uow:            uow,
		notifier:       notifier,
		policy:         policy,
	}
}

// Submit validates and executes a withdrawal. Checks run in a fixed order:
// amount bounds, balance, activation code. The ledger insert and the balance
// debit are one transactional unit; the operator notification is strictly
// post-commit and best-effort.
func (u *WithdrawalUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitWithdrawalInput) (*entities.WithdrawalConfirmation, error) {
	currency := entities.Currency(input.Currency)

	destination, err := resolveDestination(currency, input)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, domainerrors.ErrInvalidAmount
	}

	bounds, ok := u.policy.Bounds(string(currency))
	if !ok {
		return nil, domainerrors.ErrBadRequest
	}
	if amount.LessThan(bounds.Min) || amount.GreaterThan(bounds.Max) {
		return nil, domainerrors.ErrInvalidAmount
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(profile.Balance) {
		return nil, domainerrors.ErrInsufficientBalance
	}

	suppliedCode := strings.ToUpper(strings.TrimSpace(input.ActivationCode))
	if suppliedCode != profile.ActivationCode {
		return nil, domainerrors.ErrInvalidActivationCode
	}

	withdrawal := &entities.Withdrawal{
		UserID:         userID,
		AccountName:    destination.accountName,
		AccountNumber:  destination.accountNumber,
		BankName:       destination.bankName,
		Amount:         amount,
		Currency:       currency,
		ActivationCode: suppliedCode,
		Status:         entities.WithdrawalStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.withdrawalRepo.Create(txCtx, withdrawal); err != nil {
			return err
		}
		return u.profileRepo.DebitBalance(txCtx, userID, amount)
	})
	if err != nil {
		return nil, err
	}

	if notifyErr := u.notifier.NotifyWithdrawal(ctx, withdrawal); notifyErr != nil {
		logger.Warn(ctx, "withdrawal notification failed",
			zap.String("withdrawal_id", withdrawal.ID.String()),
			zap.Error(notifyErr))
	}

	return &entities.WithdrawalConfirmation{
		WithdrawalID:  withdrawal.ID,
		AccountNumber: withdrawal.AccountNumber,
		BankName:      withdrawal.BankName,
		Amount:        amount,
		Currency:      currency,
		NewBalance:    profile.Balance.Sub(amount),
	}, nil
}

// History lists the caller's withdrawals newest-first
func (u *WithdrawalUsecase) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int64, error) {
	return u.withdrawalRepo.GetByUserID(ctx, userID, limit, offset)
}

type withdrawalDestination struct {
	accountName   string
	accountNumber string
	bankName      string
}

// resolveDestination validates the destination shape for the currency. NGN
// withdrawals go to a named bank account; USD withdrawals go to a hex wallet
// address carried in the account-number column.
func resolveDestination(currency entities.Currency, input *entities.SubmitWithdrawalInput) (*withdrawalDestination, error) {
	switch currency {
	case entities.CurrencyNGN:
		if input.AccountName == "" || input.AccountNumber == "" || input.BankName == "" {
			return nil, domainerrors.ErrInvalidDestination
		}
		return &withdrawalDestination{
			accountName:   input.AccountName,
			accountNumber: input.AccountNumber,
			bankName:      input.BankName,
		}, nil
	case entities.CurrencyUSD:
		if !common.IsHexAddress(input.WalletAddress) {
			return nil, domainerrors.ErrInvalidDestination
		}
		return &withdrawalDestination{
			accountName:   "Binance Wallet",
			accountNumber: input.WalletAddress,
			bankName:      "Binance",
		}, nil
	default:
		return nil, domainerrors.ErrBadRequest
	}
}
