package bikerepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Bike) (int64, error)
	ListAvailable(ctx context.Context) ([]model.Bike, error)
	Detail(ctx context.Context, id int64) (*model.Bike, error)
	SeedSampleData(ctx context.Context) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Bike) (int64, error) {
	const q = `
INSERT INTO bikes (category, model, hourly_rate, daily_rate, last_maintenance)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		b.Category, b.Model, b.HourlyRate, b.DailyRate, b.LastMaintenance,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListAvailable(ctx context.Context) ([]model.Bike, error) {
	const q = `
	SELECT id, category, model, hourly_rate, daily_rate, is_available, last_maintenance
	FROM bikes
	WHERE is_available = TRUE
	ORDER BY category, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Bike
	for rows.Next() {
		var b model.Bike
		var maint sql.NullTime
		if err := rows.Scan(&b.ID, &b.Category, &b.Model, &b.HourlyRate, &b.DailyRate, &b.IsAvailable, &maint); err != nil {
			return nil, err
		}
		if maint.Valid {
			t := maint.Time
			b.LastMaintenance = &t
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Bike, error) {
	const q = `
SELECT id, category, model, hourly_rate, daily_rate, is_available, last_maintenance
FROM bikes
WHERE id=$1`
	var b model.Bike
	var maint sql.NullTime
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.Category, &b.Model, &b.HourlyRate, &b.DailyRate, &b.IsAvailable, &maint,
	); err != nil {
		return nil, err
	}
	if maint.Valid {
		t := maint.Time
		b.LastMaintenance = &t
	}
	return &b, nil
}

// SeedSampleData loads the starter fleet into an empty bikes table and
// reports how many rows it inserted. A non-empty table is left alone so
// restarts never duplicate inventory.
func (r *repo) SeedSampleData(ctx context.Context) (n int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int64
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bikes`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		err = tx.Commit()
		return 0, err
	}

	const ins = `
INSERT INTO bikes (category, model, hourly_rate, daily_rate, last_maintenance)
VALUES ($1,$2,$3,$4,$5)`
	for _, b := range sampleFleet() {
		if _, err = tx.ExecContext(ctx, ins, b.Category, b.Model, b.HourlyRate, b.DailyRate, b.LastMaintenance); err != nil {
			return 0, err
		}
		n++
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func sampleFleet() []model.Bike {
	day := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}
	return []model.Bike{
		{Category: "Mountain", Model: "Trek X-Caliber", HourlyRate: 15.0, DailyRate: 80.0, LastMaintenance: day("2024-01-15")},
		{Category: "Road", Model: "Giant Defy", HourlyRate: 12.0, DailyRate: 65.0, LastMaintenance: day("2024-01-20")},
		{Category: "Hybrid", Model: "Cannondale Quick", HourlyRate: 10.0, DailyRate: 55.0, LastMaintenance: day("2024-01-18")},
		{Category: "Electric", Model: "Rad Power RadCity", HourlyRate: 25.0, DailyRate: 120.0, LastMaintenance: day("2024-01-22")},
		{Category: "Mountain", Model: "Specialized Rockhopper", HourlyRate: 14.0, DailyRate: 75.0, LastMaintenance: day("2024-01-10")},
		{Category: "Road", Model: "Cannondale CAAD", HourlyRate: 13.0, DailyRate: 70.0, LastMaintenance: day("2024-01-25")},
	}
}
