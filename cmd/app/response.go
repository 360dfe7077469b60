package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/services"
)

// writeServiceError maps the service error taxonomy onto HTTP. Internal
// details never reach the client; unknown errors collapse to a generic 500.
func writeServiceError(c echo.Context, err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": echo.Map{"code": "internal", "message": "internal error"},
		})
	}

	status := http.StatusInternalServerError
	switch svcErr.Category {
	case services.CategoryValidation:
		status = http.StatusBadRequest
	case services.CategoryNotFound:
		status = http.StatusNotFound
	case services.CategoryUnauthorized:
		status = http.StatusUnauthorized
	case services.CategoryConflict:
		status = http.StatusConflict
	case services.CategoryUpstream:
		status = http.StatusBadGateway
	}

	return c.JSON(status, echo.Map{
		"error": echo.Map{"code": svcErr.Code, "message": svcErr.Message},
	})
}
