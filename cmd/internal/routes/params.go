package routes

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/utils/apierror"
)

// pathID reads the :id path parameter.
func pathID(c echo.Context) (int, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		return 0, apierror.NewMissingParamError("id")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewSimple(400, "ID is not a number")
	}
	return id, nil
}

// intQuery reads an optional integer query parameter; missing means 0.
func intQuery(c echo.Context, name string) (int, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "integer")
	}
	return v, nil
}
