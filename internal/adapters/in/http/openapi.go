package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ordertracking/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// OpenAPI returns the parsed and validated API description.
func OpenAPI() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// mustRequestValidator panics because the document is embedded at build time.
func mustRequestValidator() echo.MiddlewareFunc {
	doc, err := OpenAPI()
	if err != nil {
		panic(err)
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		panic(err)
	}
	return requestValidator(router)
}

// requestValidator rejects requests whose parameters or body do not match the
// document. Routes the document does not describe are passed through.
func requestValidator(router routers.Router) echo.MiddlewareFunc {
	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Kind:    errs.KindValidation.String(),
					Message: describeRequestError(err),
				})
			}

			return next(c)
		}
	}
}

func describeRequestError(err error) string {
	subject := "request"
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			subject = fmt.Sprintf("parameter %q", reqErr.Parameter.Name)
		case reqErr.RequestBody != nil:
			subject = "request body"
		}
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return fmt.Sprintf("invalid %s: %s: %s", subject, strings.Join(pointer, "."), schemaErr.Reason)
		}
		return fmt.Sprintf("invalid %s: %s", subject, schemaErr.Reason)
	}

	if reqErr != nil && reqErr.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", subject, reqErr.Reason)
	}
	return fmt.Sprintf("invalid %s", subject)
}

func serveOpenAPI(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openAPIDocument)
}
