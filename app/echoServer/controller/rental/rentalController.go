package rental

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Mohit-0987/Bike-Rental-System/service/pricing"
	rs "github.com/Mohit-0987/Bike-Rental-System/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rentals
func (h *Controller) Open(c echo.Context) error {
	var req OpenRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	customerID, _ := c.Get("customer_id").(int64)

	out, err := h.Svc.Open(c.Request().Context(), customerID, req.BikeID, req.PlannedHours)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidDuration):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "planned duration must be positive"})
		case errors.Is(err, rs.ErrBikeUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"message": "bike not available"})
		default:
			h.Log.Error("rental open", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"rental_id":              out.RentalID,
		"bike_id":                out.BikeID,
		"category":               out.Category,
		"model":                  out.Model,
		"planned_duration_hours": out.PlannedHours,
		"base_cost":              out.BaseCost,
		"rental_start":           out.RentalStart,
		"status":                 "ACTIVE",
	})
}

// POST /v1/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	customerID, _ := c.Get("customer_id").(int64)

	out, err := h.Svc.Close(c.Request().Context(), customerID, id)
	if err != nil {
		switch {
		case errors.Is(err, rs.ErrRentalNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "active rental not found"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"rental_id":             out.RentalID,
		"bike_id":               out.BikeID,
		"actual_duration_hours": out.ActualHours,
		"base_cost":             out.BaseCost,
		"overtime_charge":       out.OvertimeCharge,
		"total_cost":            out.TotalCost,
		"rental_end":            out.RentalEnd,
		"status":                "COMPLETED",
	})
}

// GET /v1/rentals/my
func (h *Controller) MyHistory(c echo.Context) error {
	customerID, _ := c.Get("customer_id").(int64)
	rows, err := h.Svc.MyHistory(c.Request().Context(), customerID)
	if err != nil {
		h.Log.Error("history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
