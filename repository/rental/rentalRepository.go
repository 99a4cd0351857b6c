// repository/rental/rentalRepository.go
package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/model"
)

// ActiveRental joins the locked rental row with the rate card needed to
// settle it.
type ActiveRental struct {
	RentalID     int64
	CustomerID   int64
	BikeID       int64
	RentalStart  time.Time
	PlannedHours int
	BaseCost     float64
	Category     string
	Model        string
	HourlyRate   float64
}

type HistoryRow struct {
	RentalID     int64      `json:"rental_id"`
	BikeID       int64      `json:"bike_id"`
	Category     string     `json:"category"`
	Model        string     `json:"model"`
	RentalStart  time.Time  `json:"rental_start"`
	RentalEnd    *time.Time `json:"rental_end,omitempty"`
	PlannedHours int        `json:"planned_duration_hours"`
	ActualHours  *float64   `json:"actual_duration_hours,omitempty"`
	TotalCost    float64    `json:"total_cost"`
	Status       string     `json:"status"` // ACTIVE | COMPLETED
}

type Repo interface {
	// Bikes
	GetBikeForQuote(ctx context.Context, tx *sql.Tx, bikeID int64) (*model.Bike, error)
	ReserveBike(ctx context.Context, tx *sql.Tx, bikeID int64) (bool, error)
	ReleaseBike(ctx context.Context, tx *sql.Tx, bikeID int64) error

	// Rentals
	InsertRental(ctx context.Context, tx *sql.Tx, rec *model.Rental) (int64, error)
	GetActiveForUpdate(ctx context.Context, tx *sql.Tx, rentalID, customerID int64) (*ActiveRental, error)
	CompleteRental(ctx context.Context, tx *sql.Tx, rentalID int64, end time.Time, actualHours, additionalCharges, totalCost float64) (bool, error)

	// History
	ListByCustomer(ctx context.Context, customerID int64) ([]HistoryRow, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

// Bikes

func (r *repo) GetBikeForQuote(ctx context.Context, tx *sql.Tx, bikeID int64) (*model.Bike, error) {
	const q = `
				SELECT id, category, model, hourly_rate, daily_rate, is_available
				FROM bikes
				WHERE id = $1`
	var b model.Bike
	err := tx.QueryRowContext(ctx, q, bikeID).Scan(
		&b.ID, &b.Category, &b.Model, &b.HourlyRate, &b.DailyRate, &b.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) ReserveBike(ctx context.Context, tx *sql.Tx, bikeID int64) (bool, error) {
	// Guard: flip only when still available, so of two concurrent rentals
	// exactly one sees RowsAffected()==1.
	const q = `
			UPDATE bikes
			SET is_available = FALSE
			WHERE id = $1
			AND is_available = TRUE`
	res, err := tx.ExecContext(ctx, q, bikeID)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff == 1, nil
}

func (r *repo) ReleaseBike(ctx context.Context, tx *sql.Tx, bikeID int64) error {
	const q = `
		UPDATE bikes
		SET is_available = TRUE
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, bikeID)
	return err
}

// Rentals

func (r *repo) InsertRental(ctx context.Context, tx *sql.Tx, rec *model.Rental) (int64, error) {
	const q = `
		INSERT INTO rentals (customer_id, bike_id, rental_start, planned_duration_hours,
		                     base_cost, additional_charges, total_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	if err := tx.QueryRowContext(ctx, q,
		rec.CustomerID, rec.BikeID, rec.RentalStart, rec.PlannedHours,
		rec.BaseCost, rec.AdditionalCharges, rec.TotalCost, rec.Status,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) GetActiveForUpdate(ctx context.Context, tx *sql.Tx, rentalID, customerID int64) (*ActiveRental, error) {
	// Row lock serializes concurrent returns of the same rental; the loser
	// re-reads after commit and no longer matches status = 'ACTIVE'.
	const q = `
		SELECT r.id, r.customer_id, r.bike_id, r.rental_start, r.planned_duration_hours,
		       r.base_cost, b.category, b.model, b.hourly_rate
		FROM rentals r
		JOIN bikes b ON b.id = r.bike_id
		WHERE r.id = $1
		AND r.customer_id = $2
		AND r.status = 'ACTIVE'
		FOR UPDATE OF r`
	var a ActiveRental
	err := tx.QueryRowContext(ctx, q, rentalID, customerID).Scan(
		&a.RentalID, &a.CustomerID, &a.BikeID, &a.RentalStart, &a.PlannedHours,
		&a.BaseCost, &a.Category, &a.Model, &a.HourlyRate,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) CompleteRental(ctx context.Context, tx *sql.Tx, rentalID int64, end time.Time, actualHours, additionalCharges, totalCost float64) (bool, error) {
	// Guard: only an ACTIVE row settles.
	const q = `
		UPDATE rentals
		SET rental_end = $2,
			actual_duration_hours = $3,
			additional_charges = $4,
			total_cost = $5,
			status = 'COMPLETED'
		WHERE id = $1
		AND status = 'ACTIVE'`
	res, err := tx.ExecContext(ctx, q, rentalID, end, actualHours, additionalCharges, totalCost)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff == 1, nil
}

// History

func (r *repo) ListByCustomer(ctx context.Context, customerID int64) ([]HistoryRow, error) {
	const q = `
			SELECT
			r.id                     AS rental_id,
			r.bike_id                AS bike_id,
			b.category               AS category,
			b.model                  AS model,
			r.rental_start           AS rental_start,
			r.rental_end             AS rental_end,
			r.planned_duration_hours AS planned_duration_hours,
			r.actual_duration_hours  AS actual_duration_hours,
			r.total_cost             AS total_cost,
			r.status                 AS status
			FROM rentals r
			JOIN bikes b ON b.id = r.bike_id
			WHERE r.customer_id = $1
			ORDER BY r.rental_start DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(
			&h.RentalID, &h.BikeID, &h.Category, &h.Model,
			&h.RentalStart, &h.RentalEnd, &h.PlannedHours, &h.ActualHours,
			&h.TotalCost, &h.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
