// Package http exposes the order tracking use cases as a JSON API on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. Command handlers satisfy them by
// pointer, query handlers by value.
type (
	CustomerCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (kernel.ID, error)
	}

	ProductCreator interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (kernel.ID, error)
	}

	ProductPriceUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateProductPriceCommand) error
	}

	ProductDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}

	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}

	OrderTransitioner interface {
		Handle(
			ctx context.Context,
			cmd commands.TransitionOrderStatusCommand,
		) (commands.TransitionOrderStatusResult, error)
	}

	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	ProductLister interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
	}

	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}

	OrderDetailsReader interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.GetOrderDetailsQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateCustomer     CustomerCreator
	CreateProduct      ProductCreator
	UpdateProductPrice ProductPriceUpdater
	DeleteProduct      ProductDeleter
	CreateOrder        OrderCreator
	TransitionOrder    OrderTransitioner
	DeleteOrder        OrderDeleter
	ListProducts       ProductLister
	ListOrders         OrderLister
	GetOrderDetails    OrderDetailsReader
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	metrics  *metrics.ServerMetrics
	logger   *slog.Logger
	validate echo.MiddlewareFunc
}

// NewServer creates a server whose /api/v1 requests are checked against OpenAPI().
// metrics may be nil, in which case nothing is recorded.
func NewServer(handlers Handlers, serverMetrics *metrics.ServerMetrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  serverMetrics,
		logger:   logger.With("component", "http"),
		validate: mustRequestValidator(),
	}
}

// Register mounts middleware and routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler
	e.Use(requestID(), s.requestLogger(), s.observe())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	api := e.Group("/api/v1", s.validate)
	api.GET("/openapi.yaml", serveOpenAPI)

	api.POST("/customers", s.CreateCustomer)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id/price", s.UpdateProductPrice)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.TransitionOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}
