package bikesvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/model"
)

type Bike = model.Bike

type Repo interface {
	Create(ctx context.Context, b *model.Bike) (int64, error)
	ListAvailable(ctx context.Context) ([]model.Bike, error)
	Detail(ctx context.Context, id int64) (*model.Bike, error)
	SeedSampleData(ctx context.Context) (int64, error)
}

type Service interface {
	Create(ctx context.Context, category, bikeModel string, hourly, daily float64, lastMaintenance *time.Time) (int64, error)
	ListAvailable(ctx context.Context) ([]Bike, error)
	// Detail returns (nil, nil) when the bike does not exist.
	Detail(ctx context.Context, id int64) (*Bike, error)
	SeedSampleData(ctx context.Context) (int64, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, category, bikeModel string, hourly, daily float64, lastMaintenance *time.Time) (int64, error) {
	// Unknown category labels are accepted; they price as Hybrid until the
	// label is added to the rate formulas.
	if category == "" || bikeModel == "" || hourly <= 0 || daily <= 0 {
		return 0, errors.New("invalid payload")
	}
	return s.r.Create(ctx, &model.Bike{
		Category:        category,
		Model:           bikeModel,
		HourlyRate:      hourly,
		DailyRate:       daily,
		LastMaintenance: lastMaintenance,
	})
}

func (s *service) ListAvailable(ctx context.Context) ([]Bike, error) {
	return s.r.ListAvailable(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*Bike, error) {
	b, err := s.r.Detail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (s *service) SeedSampleData(ctx context.Context) (int64, error) {
	return s.r.SeedSampleData(ctx)
}
