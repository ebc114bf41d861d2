package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/ports"
)

func mustItemName(t *testing.T, raw string) kernel.ItemName {
	t.Helper()
	name, err := kernel.NewItemName(raw)
	require.NoError(t, err)
	return name
}

type mockCartRepository struct{ mock.Mock }

func (m *mockCartRepository) Get(ctx context.Context, sessionID kernel.SessionID) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *mockCartRepository) Put(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, sessionID kernel.SessionID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockCartRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockCatalogReader struct{ mock.Mock }

func (m *mockCatalogReader) FindItem(ctx context.Context, name kernel.ItemName) (ports.CatalogItem, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(ports.CatalogItem), args.Error(1)
}

func (m *mockCatalogReader) GetAll(ctx context.Context) ([]ports.CatalogItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ports.CatalogItem), args.Error(1)
}
