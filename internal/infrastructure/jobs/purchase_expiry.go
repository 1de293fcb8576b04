package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"denance.backend/internal/infrastructure/repositories"
)

// PurchaseExpiryJob rejects activation purchases that were never reviewed.
// A pending submission older than MaxPendingAge is assumed abandoned.
type PurchaseExpiryJob struct {
	repo          *repositories.PurchaseRepository
	interval      time.Duration
	maxPendingAge time.Duration
	stop          chan struct{}
}

func NewPurchaseExpiryJob(repo *repositories.PurchaseRepository, interval, maxPendingAge time.Duration) *PurchaseExpiryJob {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if maxPendingAge <= 0 {
		maxPendingAge = 7 * 24 * time.Hour
	}
	return &PurchaseExpiryJob{
		repo:          repo,
		interval:      interval,
		maxPendingAge: maxPendingAge,
		stop:          make(chan struct{}),
	}
}

func (j *PurchaseExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting purchase expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Purchase expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Purchase expiry job stopped")
			return
		case <-ticker.C:
			j.processStalePurchases(ctx)
		}
	}
}

func (j *PurchaseExpiryJob) Stop() {
	close(j.stop)
}

func (j *PurchaseExpiryJob) processStalePurchases(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxPendingAge)

	stale, err := j.repo.GetStalePending(ctx, cutoff, 100)
	if err != nil {
		log.Printf("❌ Error fetching stale purchases: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	var ids []uuid.UUID
	for _, p := range stale {
		ids = append(ids, p.ID)
	}

	if err := j.repo.RejectPurchases(ctx, ids); err != nil {
		log.Printf("❌ Error rejecting stale purchases: %v", err)
		return
	}

	log.Printf("✅ Rejected %d stale purchases", len(stale))
}
