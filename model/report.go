package model

// BusinessReport aggregates rental activity for the operator dashboard.
// Revenue counts COMPLETED rentals only; open rentals carry quotes, not
// settled money.
type BusinessReport struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalRentals         int64   `json:"total_rentals"`
	ActiveRentals        int64   `json:"active_rentals"`
	MostPopularCategory  string  `json:"most_popular_category,omitempty"`
	AverageDurationHours float64 `json:"average_duration_hours"`
}
