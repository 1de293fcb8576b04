package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/usecases"
)

func testPaymentDetails() *entities.PaymentDetails {
	return &entities.PaymentDetails{
		ID:            uuid.New(),
		AccountName:   "Denance Ltd",
		AccountNumber: "9988776655",
		BankName:      "Access Bank",
		IsActive:      true,
	}
}

func TestPurchaseSubmit_Success(t *testing.T) {
	userID := uuid.New()
	details := testPaymentDetails()

	purchaseRepo := new(MockPurchaseRepository)
	detailsRepo := new(MockPaymentDetailsRepository)
	notifier := new(MockNotifier)

	detailsRepo.On("GetActive", mock.Anything).Return(details, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.ActivationPurchase")).Return(nil)
	notifier.On("NotifyPurchase", mock.Anything, mock.Anything).Return(nil)

	uc := usecases.NewPurchaseUsecase(purchaseRepo, detailsRepo, notifier)
	purchase, err := uc.Submit(context.Background(), userID, &entities.SubmitPurchaseInput{
		SenderName:           "Chidi Okafor",
		SenderEmail:          "chidi@mail.com",
		PaymentScreenshotURL: "https://cdn.example.com/proof.png",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, purchase.UserID)
	assert.Equal(t, entities.PurchaseStatusPending, purchase.Status)
	require.NotNil(t, purchase.PaymentDetailsID)
	assert.Equal(t, details.ID, *purchase.PaymentDetailsID)
	assert.True(t, purchase.PaymentScreenshotURL.Valid)
	assert.Equal(t, "https://cdn.example.com/proof.png", purchase.PaymentScreenshotURL.String)
	notifier.AssertCalled(t, "NotifyPurchase", mock.Anything, purchase)
}

func TestPurchaseSubmit_NoScreenshot(t *testing.T) {
	purchaseRepo := new(MockPurchaseRepository)
	detailsRepo := new(MockPaymentDetailsRepository)
	notifier := new(MockNotifier)

	detailsRepo.On("GetActive", mock.Anything).Return(testPaymentDetails(), nil)
	purchaseRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyPurchase", mock.Anything, mock.Anything).Return(nil)

	uc := usecases.NewPurchaseUsecase(purchaseRepo, detailsRepo, notifier)
	purchase, err := uc.Submit(context.Background(), uuid.New(), &entities.SubmitPurchaseInput{
		SenderName:  "Amara Eze",
		SenderEmail: "amara@mail.com",
	})

	require.NoError(t, err)
	assert.False(t, purchase.PaymentScreenshotURL.Valid)
}

func TestPurchaseSubmit_NoActiveConfig(t *testing.T) {
	detailsRepo := new(MockPaymentDetailsRepository)
	detailsRepo.On("GetActive", mock.Anything).Return(nil, domainerrors.ErrNoActivePaymentConfig)

	purchaseRepo := new(MockPurchaseRepository)
	uc := usecases.NewPurchaseUsecase(purchaseRepo, detailsRepo, new(MockNotifier))
	_, err := uc.Submit(context.Background(), uuid.New(), &entities.SubmitPurchaseInput{
		SenderName:  "Chidi Okafor",
		SenderEmail: "chidi@mail.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNoActivePaymentConfig)
	purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseSubmit_NotifyFailureTolerated(t *testing.T) {
	purchaseRepo := new(MockPurchaseRepository)
	detailsRepo := new(MockPaymentDetailsRepository)
	notifier := new(MockNotifier)

	detailsRepo.On("GetActive", mock.Anything).Return(testPaymentDetails(), nil)
	purchaseRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyPurchase", mock.Anything, mock.Anything).Return(errors.New("telegram unreachable"))

	uc := usecases.NewPurchaseUsecase(purchaseRepo, detailsRepo, notifier)
	purchase, err := uc.Submit(context.Background(), uuid.New(), &entities.SubmitPurchaseInput{
		SenderName:  "Chidi Okafor",
		SenderEmail: "chidi@mail.com",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.PurchaseStatusPending, purchase.Status)
}

func TestPurchaseSubmit_CreateFails(t *testing.T) {
	purchaseRepo := new(MockPurchaseRepository)
	detailsRepo := new(MockPaymentDetailsRepository)
	notifier := new(MockNotifier)

	storageErr := errors.New("insert failed")
	detailsRepo.On("GetActive", mock.Anything).Return(testPaymentDetails(), nil)
	purchaseRepo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

	uc := usecases.NewPurchaseUsecase(purchaseRepo, detailsRepo, notifier)
	_, err := uc.Submit(context.Background(), uuid.New(), &entities.SubmitPurchaseInput{
		SenderName:  "Chidi Okafor",
		SenderEmail: "chidi@mail.com",
	})

	assert.ErrorIs(t, err, storageErr)
	notifier.AssertNotCalled(t, "NotifyPurchase", mock.Anything, mock.Anything)
}

func TestGetActivePaymentDetails(t *testing.T) {
	details := testPaymentDetails()
	detailsRepo := new(MockPaymentDetailsRepository)
	detailsRepo.On("GetActive", mock.Anything).Return(details, nil)

	uc := usecases.NewPurchaseUsecase(new(MockPurchaseRepository), detailsRepo, new(MockNotifier))
	got, err := uc.GetActivePaymentDetails(context.Background())

	require.NoError(t, err)
	assert.Equal(t, details.AccountNumber, got.AccountNumber)
}

func TestPurchaseListByUser(t *testing.T) {
	userID := uuid.New()
	purchases := []*entities.ActivationPurchase{
		{ID: uuid.New(), UserID: userID, Status: entities.PurchaseStatusPending},
		{ID: uuid.New(), UserID: userID, Status: entities.PurchaseStatusApproved},
	}

	purchaseRepo := new(MockPurchaseRepository)
	purchaseRepo.On("GetByUserID", mock.Anything, userID).Return(purchases, nil)

	uc := usecases.NewPurchaseUsecase(purchaseRepo, new(MockPaymentDetailsRepository), new(MockNotifier))
	got, err := uc.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
