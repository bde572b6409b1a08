package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand([]int{1}, "Alice")
	require.NoError(t, err)

	item, err := menu.NewItem(1, "Margherita", 9.5, menu.CategoryPizza)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	mock.InOrder(
		menuRepo.On("Get", ctx, 1).Return(item, nil).Once(),
		orderRepo.On("NextID", ctx).Return(1, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo)
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, 1, placed.ID())
	assert.Equal(t, order.Preparing, placed.Status())
	assert.Equal(t, []int{1}, placed.ItemIDs())
	assert.Equal(t, "Alice", placed.CustomerName())
	menuRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	h := commands.NewPlaceOrderCommandHandler(new(MockMenuRepository), new(MockOrderRepository))
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
}

func TestPlaceOrderCommandHandler_Handle_UnknownItemID(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand([]int{1, 99}, "Bob")
	require.NoError(t, err)

	item, err := menu.NewItem(1, "Margherita", 9.5, menu.CategoryPizza)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	mock.InOrder(
		menuRepo.On("Get", ctx, 1).Return(item, nil).Once(),
		menuRepo.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("itemId", 99)).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "invalid item id: 99")
	orderRepo.AssertNotCalled(t, "NextID", mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	menuRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NextIDError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand([]int{1}, "Alice")
	require.NoError(t, err)

	item, err := menu.NewItem(1, "Margherita", 9.5, menu.CategoryPizza)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	mock.InOrder(
		menuRepo.On("Get", ctx, 1).Return(item, nil).Once(),
		orderRepo.On("NextID", ctx).Return(0, errors.New("id error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPlaceOrderCommand([]int{1}, "Alice")
	require.NoError(t, err)

	item, err := menu.NewItem(1, "Margherita", 9.5, menu.CategoryPizza)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	mock.InOrder(
		menuRepo.On("Get", ctx, 1).Return(item, nil).Once(),
		orderRepo.On("NextID", ctx).Return(1, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	menuRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
