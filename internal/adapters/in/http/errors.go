package http

import (
	"errors"
	"net/http"

	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error kind to the HTTP status returned to clients.
func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindReferentialIntegrity, errs.KindIllegalTransition:
		return http.StatusConflict
	case errs.KindStoreBusy:
		return http.StatusServiceUnavailable
	case errs.KindStoreCorruption, errs.KindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// fail writes err as a JSON Error. Store failures are logged and their details
// are kept out of the response.
func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := StatusFor(kind)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"path", c.Path(),
			"kind", kind.String(),
			"error", err,
		)
		if kind != errs.KindStoreBusy {
			message = http.StatusText(status)
		}
	}

	if kind == errs.KindStoreBusy {
		c.Response().Header().Set("Retry-After", "1")
	}

	return c.JSON(status, Error{Code: status, Kind: kind.String(), Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    errs.KindValidation.String(),
		Message: message,
	})
}

// errorHandler renders errors that escape route handlers, e.g. unknown routes.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		_ = c.JSON(httpErr.Code, Error{Code: httpErr.Code, Kind: errs.KindUnknown.String(), Message: message})
		return
	}

	_ = s.fail(c, err)
}
