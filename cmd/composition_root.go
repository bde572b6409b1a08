package cmd

import (
	"log/slog"

	"foodorders/internal/adapters/out/inmemory/menurepo"
	"foodorders/internal/adapters/out/inmemory/orderrepo"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/jobs"
)

// CompositionRoot wires repositories, use case handlers and background
// jobs. The two in-memory repositories are process-lifetime singletons;
// every handler created here shares them.
type CompositionRoot struct {
	menuRepository  *menurepo.InMemoryMenuRepository
	orderRepository *orderrepo.InMemoryOrderRepository
	logger          *slog.Logger
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		menuRepository:  menurepo.NewInMemoryMenuRepository(),
		orderRepository: orderrepo.NewInMemoryOrderRepository(),
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateUpsertMenuItemsCommandHandler() commands.UpsertMenuItemsCommandHandler {
	return commands.NewUpsertMenuItemsCommandHandler(c.menuRepository)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.menuRepository, c.orderRepository)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusesCommandHandler() commands.AdvanceOrderStatusesCommandHandler {
	return commands.NewAdvanceOrderStatusesCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.menuRepository, c.orderRepository)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAdvanceOrderStatusesCommandHandler(), c.logger)
}
