package http

import (
	"net/http"

	"ordertracking/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email, body.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Int64()})
}
