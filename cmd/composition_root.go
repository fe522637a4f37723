package cmd

import (
	"log/slog"

	apihttp "ordertracking/internal/adapters/in/http"
	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/jobs"
	"ordertracking/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	transitions order.TransitionTable
	metrics     *metrics.ServerMetrics
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, config.DBLockTimeout),
		transitions: order.NewTransitionTable(config.CancellationPolicy()),
		metrics:     metrics.NewServerMetrics("api"),
		logger:      logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.ServerMetrics {
	return c.metrics
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoW() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoW() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoW())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoW())
	return &h
}

func (c *CompositionRoot) CreateUpdateProductPriceCommandHandler() *commands.UpdateProductPriceCommandHandler {
	h := commands.NewUpdateProductPriceCommandHandler(c.productUoW())
	return &h
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() *commands.DeleteProductCommandHandler {
	h := commands.NewDeleteProductCommandHandler(c.productUoW())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.uow(), orderMetrics{c.metrics})
	return &h
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() *commands.TransitionOrderStatusCommandHandler {
	h := commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoW(), c.transitions, orderMetrics{c.metrics},
	)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoW())
	return &h
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() *commands.SeedDemoDataCommandHandler {
	h := commands.NewSeedDemoDataCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() *commands.ExpirePendingOrdersCommandHandler {
	h := commands.NewExpirePendingOrdersCommandHandler(c.orderUoW(), c.CreateTransitionOrderStatusCommandHandler())
	return &h
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the HTTP adapter exposes.
func (c *CompositionRoot) HTTPHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		UpdateProductPrice: c.CreateUpdateProductPriceCommandHandler(),
		DeleteProduct:      c.CreateDeleteProductCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		TransitionOrder:    c.CreateTransitionOrderStatusCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
	}
}

// CreateJobManager registers the background jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager()
	if c.config.PendingOrderTTL > 0 {
		jm.Add("pending order expiry", jobs.NewPendingOrderExpiryJob(
			c.CreateExpirePendingOrdersCommandHandler(),
			c.config.PendingOrderTTL,
			c.config.PendingOrderExpirySchedule,
			c.metrics.OrdersExpired,
			c.logger,
		))
	}
	return jm
}

// orderMetrics counts committed order changes, including those made by jobs.
type orderMetrics struct {
	m *metrics.ServerMetrics
}

func (o orderMetrics) OrderCreated(kernel.ID, kernel.Money) {
	o.m.OrdersCreated.Inc()
}

func (o orderMetrics) OrderStatusChanged(_ kernel.ID, from, to order.Status) {
	o.m.ObserveTransition(from.String(), to.String())
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
