package model

import "time"

// Bike is one unit of rentable inventory. Category is the stored label and is
// resolved to a pricing strategy at rental time, so rows with retired labels
// still price.
type Bike struct {
	ID              int64      `json:"id"`
	Category        string     `json:"category"`
	Model           string     `json:"model"`
	HourlyRate      float64    `json:"hourly_rate"`
	DailyRate       float64    `json:"daily_rate"`
	IsAvailable     bool       `json:"is_available"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
}
