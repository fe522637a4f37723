package http

import (
	"ordertracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context) (kernel.ID, error) {
	return kernel.ParseID(c.Param("id"))
}
