package cmd

import (
	"log/slog"

	httpadapter "pharmorders/internal/adapters/in/http"
	"pharmorders/internal/adapters/out/notify"
	"pharmorders/internal/adapters/out/postgres"
	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/application/usecases/queries"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewCSVLineItemParser(),
		notify.NewSlogNotifier(c.logger),
	)
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreatePharmacyCommandHandler() commands.CreatePharmacyCommandHandler {
	var f commands.PharmacyUoWFactory = FuncPharmacyUoWFactory(func() commands.PharmacyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePharmacyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLabCommandHandler() commands.CreateLabCommandHandler {
	var f commands.LabUoWFactory = FuncLabUoWFactory(func() commands.LabUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLabCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLabStatisticsQueryHandler() queries.GetLabStatisticsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetLabStatisticsQueryHandler(
		uow.OrderRepository(),
		uow.LabRepository(),
		postgres.NewGormPharmacyNameResolver(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetAllLabsStatisticsQueryHandler() queries.GetAllLabsStatisticsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetAllLabsStatisticsQueryHandler(
		uow.OrderRepository(),
		uow.LabRepository(),
		postgres.NewGormPharmacyNameResolver(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetPharmaciesQueryHandler() queries.GetPharmaciesQueryHandler {
	return queries.NewGetPharmaciesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLabsQueryHandler() queries.GetLabsQueryHandler {
	return queries.NewGetLabsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateReviewOrderCommandHandler(),
		c.CreateScheduleDeliveryCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateCreatePharmacyCommandHandler(),
		c.CreateCreateLabCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetLabStatisticsQueryHandler(),
		c.CreateGetAllLabsStatisticsQueryHandler(),
		c.CreateGetPharmaciesQueryHandler(),
		c.CreateGetLabsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPharmacyUoWFactory func() commands.PharmacyUoW

func (f FuncPharmacyUoWFactory) Create() commands.PharmacyUoW {
	return f()
}

type FuncLabUoWFactory func() commands.LabUoW

func (f FuncLabUoWFactory) Create() commands.LabUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
