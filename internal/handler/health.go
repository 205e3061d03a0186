package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers liveness probes. It reports nothing about the
// database or broker; a 200 here only means the process is serving.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
