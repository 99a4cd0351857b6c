package model

import "time"

type RentalStatus string

const (
	RentalActive    RentalStatus = "ACTIVE"
	RentalCompleted RentalStatus = "COMPLETED"
)

// Rental is the lifecycle record for one checkout. RentalEnd and ActualHours
// stay NULL while the rental is open; TotalCost holds the upfront quote until
// return settles it.
type Rental struct {
	ID                int64        `json:"id"`
	CustomerID        int64        `json:"customer_id"`
	BikeID            int64        `json:"bike_id"`
	RentalStart       time.Time    `json:"rental_start"`
	RentalEnd         *time.Time   `json:"rental_end,omitempty"`
	PlannedHours      int          `json:"planned_duration_hours"`
	ActualHours       *float64     `json:"actual_duration_hours,omitempty"`
	BaseCost          float64      `json:"base_cost"`
	AdditionalCharges float64      `json:"additional_charges"`
	TotalCost         float64      `json:"total_cost"`
	Status            RentalStatus `json:"status"`
}
