// service/pricing/pricing.go
package pricing

import (
	"errors"
	"fmt"
)

// Category selects the cost formula applied to a rental.
type Category string

const (
	Mountain Category = "Mountain"
	Road     Category = "Road"
	Hybrid   Category = "Hybrid"
	Electric Category = "Electric"
)

// Categories lists every known category. The order is stable and reporting
// uses it to break popularity ties, so append only.
var Categories = []Category{Mountain, Road, Hybrid, Electric}

// ErrInvalidDuration rejects rentals quoted for zero or negative hours.
var ErrInvalidDuration = errors.New("rental duration must be a positive number of hours")

// Rates carries a bike's price card. Daily applies per full 24h block once a
// category's hourly window is exceeded.
type Rates struct {
	Hourly float64
	Daily  float64
}

type costFunc func(hours int, r Rates) float64

var costs = map[Category]costFunc{
	Mountain: mountainCost,
	Road:     roadCost,
	Hybrid:   hybridCost,
	Electric: electricCost,
}

// Strategy prices rentals for one bike. Zero value is unusable; build it with
// ForBike.
type Strategy struct {
	category Category
	rates    Rates
	cost     costFunc
}

// ForBike resolves the strategy for a stored category label. Unknown labels
// price as Hybrid so inventory rows with retired or mistyped labels keep
// working.
func ForBike(label string, rates Rates) Strategy {
	c := Category(label)
	fn, ok := costs[c]
	if !ok {
		c = Hybrid
		fn = costs[Hybrid]
	}
	return Strategy{category: c, rates: rates, cost: fn}
}

// Known reports whether label maps to a category without the Hybrid fallback.
func Known(label string) bool {
	_, ok := costs[Category(label)]
	return ok
}

// Category returns the category the strategy prices as, which is Hybrid when
// the stored label was unknown.
func (s Strategy) Category() Category { return s.category }

// Cost computes the charge for a whole number of hours.
func (s Strategy) Cost(hours int) (float64, error) {
	if hours <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, hours)
	}
	return s.cost(hours, s.rates), nil
}

// OvertimeCharge is the penalty for keeping a bike past the planned window:
// every late hour bills at 1.5x the hourly rate. Returns 0 when the bike came
// back on time.
func OvertimeCharge(actualHours, plannedHours, hourlyRate float64) float64 {
	if actualHours <= plannedHours {
		return 0
	}
	return (actualHours - plannedHours) * hourlyRate * 1.5
}

// Mountain bills hourly up to 4h; longer rentals pay per started day plus a
// 20% discount on the leftover hours.
func mountainCost(hours int, r Rates) float64 {
	if hours <= 4 {
		return float64(hours) * r.Hourly
	}
	days := hours / 24
	rem := hours % 24
	return float64(days)*r.Daily + float64(rem)*r.Hourly*0.8
}

// Road bills hourly up to 3h; leftover hours past the daily blocks get no
// discount.
func roadCost(hours int, r Rates) float64 {
	if hours <= 3 {
		return float64(hours) * r.Hourly
	}
	days := hours / 24
	rem := hours % 24
	return float64(days)*r.Daily + float64(rem)*r.Hourly
}

// Hybrid bills hourly up to 6h; leftover hours get a 10% discount.
func hybridCost(hours int, r Rates) float64 {
	if hours <= 6 {
		return float64(hours) * r.Hourly
	}
	days := hours / 24
	rem := hours % 24
	return float64(days)*r.Daily + float64(rem)*r.Hourly*0.9
}

// Electric bills hourly up to 8h, then day blocks with undiscounted leftover
// hours. The battery fee of 2.0 per hour applies on top of every electric
// rental, both branches.
func electricCost(hours int, r Rates) float64 {
	base := float64(hours) * r.Hourly
	if hours > 8 {
		days := hours / 24
		rem := hours % 24
		base = float64(days)*r.Daily + float64(rem)*r.Hourly
	}
	return base + float64(hours)*2.0
}
