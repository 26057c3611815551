package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type PersistenceProbe interface {
	PersistError() error
}

type DefaultHealthRoute struct {
	Probe PersistenceProbe
}

func NewHealthDefault(probe PersistenceProbe) *DefaultHealthRoute {
	return &DefaultHealthRoute{Probe: probe}
}

// Health reports 503 while the last snapshot write is failing. The API keeps
// serving from memory in that state.
func (h *DefaultHealthRoute) Health(c echo.Context) error {
	if err := h.Probe.PersistError(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "persist": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
