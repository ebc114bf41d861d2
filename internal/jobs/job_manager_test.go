package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/jobs"
)

type stubCartRepository struct{}

func (s *stubCartRepository) Get(context.Context, kernel.SessionID) (*cart.Cart, error) {
	return nil, nil
}

func (s *stubCartRepository) Put(context.Context, *cart.Cart) error { return nil }

func (s *stubCartRepository) Delete(context.Context, kernel.SessionID) error { return nil }

func (s *stubCartRepository) DeleteStale(context.Context, time.Time) (int64, error) { return 0, nil }

func TestJobManager_StartAll(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	jm := jobs.NewJobManager(&stubCartRepository{}, 30*time.Minute, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
