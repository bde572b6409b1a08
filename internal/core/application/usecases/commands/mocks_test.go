package commands_test

import (
	"context"

	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Upsert(ctx context.Context, candidates []menu.Candidate) ([]*menu.Item, error) {
	args := m.Called(ctx, candidates)
	if items := args.Get(0); items != nil {
		return items.([]*menu.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuRepository) Get(ctx context.Context, id int) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if item := args.Get(0); item != nil {
		return item.(*menu.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	if items := args.Get(0); items != nil {
		return items.([]*menu.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
