package reportrepo

import (
	"context"
	"database/sql"
)

// CategoryCount is one row of the popularity breakdown, counting every rental
// ever opened against a bike of that category.
type CategoryCount struct {
	Category string
	Rentals  int64
}

type Repo interface {
	TotalRevenue(ctx context.Context) (float64, error)
	RentalCounts(ctx context.Context) (total, active int64, err error)
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
	AverageDuration(ctx context.Context) (float64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// TotalRevenue sums settled money only; ACTIVE rentals hold quotes that may
// still change at return.
func (r *repo) TotalRevenue(ctx context.Context) (float64, error) {
	const q = `
	SELECT COALESCE(SUM(total_cost), 0)
	FROM rentals
	WHERE status = 'COMPLETED'`
	var revenue float64
	err := r.db.QueryRowContext(ctx, q).Scan(&revenue)
	return revenue, err
}

func (r *repo) RentalCounts(ctx context.Context) (int64, int64, error) {
	const q = `
	SELECT COUNT(*),
	       COALESCE(COUNT(*) FILTER (WHERE status = 'ACTIVE'), 0)::BIGINT
	FROM rentals`
	var total, active int64
	err := r.db.QueryRowContext(ctx, q).Scan(&total, &active)
	return total, active, err
}

func (r *repo) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	const q = `
	SELECT b.category, COUNT(r.*)::BIGINT AS rentals
	FROM rentals r
	JOIN bikes b ON b.id = r.bike_id
	GROUP BY b.category
	ORDER BY rentals DESC, b.category`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Rentals); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AverageDuration averages hours over rentals that have been returned; an
// empty fleet history reports 0.
func (r *repo) AverageDuration(ctx context.Context) (float64, error) {
	const q = `
	SELECT COALESCE(AVG(actual_duration_hours), 0)
	FROM rentals
	WHERE actual_duration_hours IS NOT NULL`
	var avg float64
	err := r.db.QueryRowContext(ctx, q).Scan(&avg)
	return avg, err
}
