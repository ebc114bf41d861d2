package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodibot/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// cartCleanupSchedule runs the cleanup every ten minutes. Stale carts are
// harmless between runs, so a tighter schedule buys nothing.
const cartCleanupSchedule = "*/10 * * * *"

// CartCleanupJob deletes carts whose sessions have gone quiet for longer
// than the configured TTL.
type CartCleanupJob struct {
	carts  ports.CartRepository
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCartCleanupJob creates a job that removes abandoned carts.
func NewCartCleanupJob(carts ports.CartRepository, ttl time.Duration, logger *slog.Logger) *CartCleanupJob {
	return &CartCleanupJob{
		carts:  carts,
		ttl:    ttl,
		cron:   cron.New(),
		logger: logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cleanup job on its fixed schedule.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(cartCleanupSchedule, func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.ttl)

		removed, err := j.carts.DeleteStale(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Stale carts removed", "count", removed, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started",
		"schedule", cartCleanupSchedule, "ttl", j.ttl)
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
