package http

import (
	"net/http"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(c echo.Context) error {
	views, err := s.handlers.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Product, len(views))
	for i, view := range views {
		response[i] = toProduct(view)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var body NewProduct
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, body.SKU, price)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Int64()})
}

// UpdateProductPrice handles PUT /api/v1/products/:id/price.
func (s *Server) UpdateProductPrice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body PriceChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateProductPriceCommand(id, price)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateProductPrice.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
