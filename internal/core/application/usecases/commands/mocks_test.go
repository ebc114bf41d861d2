package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"foodibot/internal/core/application/usecases/commands"
	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/contact"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/core/domain/services"
	"foodibot/internal/core/ports"
)

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) FindItem(ctx context.Context, name kernel.ItemName) (ports.CatalogItem, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(ports.CatalogItem), args.Error(1)
}

func (m *MockCatalogReader) GetAll(ctx context.Context) ([]ports.CatalogItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ports.CatalogItem), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, sessionID kernel.SessionID) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Put(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID kernel.SessionID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Get(ctx context.Context, sessionID kernel.SessionID) (contact.Contact, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactRepository) SetPhone(ctx context.Context, sessionID kernel.SessionID, phone string) error {
	args := m.Called(ctx, sessionID, phone)
	return args.Error(0)
}

func (m *MockContactRepository) SetEmail(ctx context.Context, sessionID kernel.SessionID, email string) error {
	args := m.Called(ctx, sessionID, email)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) AddHistory(ctx context.Context, committed order.CommittedOrder) error {
	args := m.Called(ctx, committed)
	return args.Error(0)
}

func (m *MockOrderRepository) AddTracking(ctx context.Context, committed order.CommittedOrder) error {
	args := m.Called(ctx, committed)
	return args.Error(0)
}

func (m *MockOrderRepository) GetStatus(ctx context.Context, orderID int64) (order.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCartUoW) CatalogReader() ports.CatalogReader {
	args := m.Called()
	return args.Get(0).(ports.CatalogReader)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockContactUoW struct{ mock.Mock }

func (m *MockContactUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContactUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContactUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContactUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}

type MockContactUoWFactory struct{ mock.Mock }

func (m *MockContactUoWFactory) Create() commands.ContactUoW {
	args := m.Called()
	return args.Get(0).(commands.ContactUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) CatalogReader() ports.CatalogReader {
	args := m.Called()
	return args.Get(0).(ports.CatalogReader)
}

func (m *MockCheckoutUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, notification services.Notification) services.Outcome {
	args := m.Called(ctx, notification)
	return args.Get(0).(services.Outcome)
}
