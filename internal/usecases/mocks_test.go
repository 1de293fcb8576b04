package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"denance.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByActivationCode(ctx context.Context, code string) (*entities.Profile, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) DebitBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockProfileRepository) ClaimRefresh(ctx context.Context, userID uuid.UUID, reward decimal.Decimal, now time.Time, interval time.Duration) error {
	args := m.Called(ctx, userID, reward, now, interval)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateActivationCode(ctx context.Context, userID uuid.UUID, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

// Mock WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Withdrawal), args.Get(1).(int64), args.Error(2)
}

// Mock PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *entities.ActivationPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ActivationPurchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ActivationPurchase), args.Error(1)
}

// Mock PaymentDetailsRepository
type MockPaymentDetailsRepository struct {
	mock.Mock
}

func (m *MockPaymentDetailsRepository) GetActive(ctx context.Context) (*entities.PaymentDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentDetails), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyWithdrawal(ctx context.Context, w *entities.Withdrawal) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockNotifier) NotifyPurchase(ctx context.Context, p *entities.ActivationPurchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// Mock view state store
type MockViewStateStore struct {
	mock.Mock
}

func (m *MockViewStateStore) Save(ctx context.Context, sessionKey string, state interface{}) error {
	args := m.Called(ctx, sessionKey, state)
	return args.Error(0)
}

func (m *MockViewStateStore) Load(ctx context.Context, sessionKey string, dst interface{}) error {
	args := m.Called(ctx, sessionKey, dst)
	return args.Error(0)
}

func (m *MockViewStateStore) Delete(ctx context.Context, sessionKey string) error {
	args := m.Called(ctx, sessionKey)
	return args.Error(0)
}
