package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"denance.backend/internal/domain/entities"
)

func seedPurchase(t *testing.T, repo *PurchaseRepository, userID uuid.UUID) *entities.ActivationPurchase {
	t.Helper()
	p := &entities.ActivationPurchase{
		UserID:               userID,
		SenderName:           "Chidi Okafor",
		SenderEmail:          "chidi@mail.com",
		PaymentScreenshotURL: null.StringFrom("https://cdn.example.com/proof.png"),
		Status:               entities.PurchaseStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPurchaseRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createPurchaseTables(t, db)
	repo := NewPurchaseRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	created := seedPurchase(t, repo, userID)
	assert.NotEqual(t, uuid.Nil, created.ID)

	purchases, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Chidi Okafor", purchases[0].SenderName)
	assert.Equal(t, entities.PurchaseStatusPending, purchases[0].Status)
	assert.True(t, purchases[0].PaymentScreenshotURL.Valid)

	other, err := repo.GetByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPurchaseRepository_GetStalePending(t *testing.T) {
	db := newTestDB(t)
	createPurchaseTables(t, db)
	repo := NewPurchaseRepository(db)
	ctx := context.Background()

	stale := seedPurchase(t, repo, uuid.New())
	fresh := seedPurchase(t, repo, uuid.New())
	approved := seedPurchase(t, repo, uuid.New())

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	mustExec(t, db, "UPDATE activation_purchases SET created_at = ? WHERE id = ?",
		cutoff.Add(-time.Hour), stale.ID)
	mustExec(t, db, "UPDATE activation_purchases SET created_at = ?, status = ? WHERE id = ?",
		cutoff.Add(-time.Hour), string(entities.PurchaseStatusApproved), approved.ID)

	got, err := repo.GetStalePending(ctx, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stale.ID, got[0].ID)
	assert.NotEqual(t, fresh.ID, got[0].ID)
}

func TestPurchaseRepository_RejectPurchases(t *testing.T) {
	db := newTestDB(t)
	createPurchaseTables(t, db)
	repo := NewPurchaseRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	pending := seedPurchase(t, repo, userID)
	approved := seedPurchase(t, repo, userID)
	mustExec(t, db, "UPDATE activation_purchases SET status = ? WHERE id = ?",
		string(entities.PurchaseStatusApproved), approved.ID)

	require.NoError(t, repo.RejectPurchases(ctx, []uuid.UUID{pending.ID, approved.ID}))

	purchases, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	statuses := map[uuid.UUID]entities.PurchaseStatus{}
	for _, p := range purchases {
		statuses[p.ID] = p.Status
	}
	assert.Equal(t, entities.PurchaseStatusRejected, statuses[pending.ID])
	assert.Equal(t, entities.PurchaseStatusApproved, statuses[approved.ID], "approved rows stay approved")
}

func TestPurchaseRepository_RejectPurchases_Empty(t *testing.T) {
	db := newTestDB(t)
	createPurchaseTables(t, db)
	repo := NewPurchaseRepository(db)

	assert.NoError(t, repo.RejectPurchases(context.Background(), nil))
}
