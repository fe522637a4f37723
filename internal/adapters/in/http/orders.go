package http

import (
	"net/http"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders?limit=N&status=S.
func (s *Server) ListOrders(c echo.Context) error {
	var (
		limit     int
		rawStatus string
	)
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		String("status", &rawStatus).
		BindError(); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("query", err))
	}

	status := order.Unknown
	if rawStatus != "" {
		parsed, err := order.ParseStatus(rawStatus)
		if err != nil {
			return s.fail(c, err)
		}
		status = parsed
	}

	query, err := queries.NewListOrdersQuery(limit, status)
	if err != nil {
		return s.fail(c, err)
	}

	summaries, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummary(summary)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, err := kernel.NewID(body.CustomerID)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
	}

	lines := make([]commands.OrderLine, len(body.Items))
	for i, item := range body.Items {
		productID, idErr := kernel.NewID(item.ProductID)
		if idErr != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("product_id", idErr))
		}
		lines[i] = commands.OrderLine{ProductID: productID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Int64()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(details))
}

// TransitionOrder handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Transition{
		OrderID: result.OrderID.Int64(),
		From:    result.From.String(),
		To:      result.To.String(),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
