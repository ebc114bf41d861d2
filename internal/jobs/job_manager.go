package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodibot/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartCleanupJob *CartCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(carts ports.CartRepository, cartTTL time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		cartCleanupJob: NewCartCleanupJob(carts, cartTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartCleanupJob.Stop()
}
