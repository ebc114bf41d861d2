package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodibot/internal/core/application/usecases/commands"
	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/errs"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(1, order.Status("lost"))
		require.Error(t, err)
	})

	t.Run("rejects non-positive order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(0, order.StatusReady)
		require.ErrorIs(t, err, commands.ErrOrderIDMustBePositive)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(7, order.StatusOutForDelivery)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, int64(7), order.StatusOutForDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(99, order.StatusReady)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("UpdateStatus", mock.Anything, int64(99), order.StatusReady).
		Return(errs.NewObjectNotFoundError("orderID", int64(99))).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
