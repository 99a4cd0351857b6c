package bike

import (
	"log/slog"
	"net/http"
	"strconv"

	bikesvc "github.com/Mohit-0987/Bike-Rental-System/service/bike"
	"github.com/Mohit-0987/Bike-Rental-System/service/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bikesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {

	role, _ := c.Get("role").(string)
	return role == "admin"
}

// POST /v1/bikes  (admin)
func (h *Controller) Create(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req CreateBikeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	id, err := h.Svc.Create(c.Request().Context(), req.Category, req.Model, req.HourlyRate, req.DailyRate, req.LastMaintenance)
	if err != nil {
		h.Log.Error("bike create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GET /v1/bikes
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.ListAvailable(c.Request().Context())
	if err != nil {
		h.Log.Error("bike list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	views := make([]bikeView, 0, len(rows))
	for _, b := range rows {
		views = append(views, decorate(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": views})
}

// GET /v1/bikes/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("bike detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, decorate(*row))
}

func decorate(b bikesvc.Bike) bikeView {
	s := pricing.ForBike(b.Category, pricing.Rates{Hourly: b.HourlyRate, Daily: b.DailyRate})
	samples := make(map[string]float64, 3)
	for _, hours := range []int{2, 8, 24} {
		cost, err := s.Cost(hours)
		if err != nil {
			continue
		}
		samples[strconv.Itoa(hours)+"h"] = cost
	}
	return bikeView{Bike: b, SamplePricing: samples}
}
