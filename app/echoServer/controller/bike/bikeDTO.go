package bike

import (
	"time"

	bikesvc "github.com/Mohit-0987/Bike-Rental-System/service/bike"
)

type CreateBikeReq struct {
	Category        string     `json:"category" validate:"required"`
	Model           string     `json:"model" validate:"required"`
	HourlyRate      float64    `json:"hourly_rate" validate:"required,gt=0"`
	DailyRate       float64    `json:"daily_rate" validate:"required,gt=0"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
}

// bikeView decorates a fleet row with what a few common durations would
// cost, so clients can show prices without reimplementing the formulas.
type bikeView struct {
	bikesvc.Bike
	SamplePricing map[string]float64 `json:"sample_pricing"`
}
