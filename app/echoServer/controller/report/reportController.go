package report

import (
	"log/slog"
	"net/http"

	reportsvc "github.com/Mohit-0987/Bike-Rental-System/service/report"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc reportsvc.Service
	Log *slog.Logger
}

// GET /v1/reports/business
func (h *Controller) Business(c echo.Context) error {
	rep, err := h.Svc.Business(c.Request().Context())
	if err != nil {
		h.Log.Error("business report", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rep)
}
