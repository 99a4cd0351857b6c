package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	rrepo "github.com/Mohit-0987/Bike-Rental-System/repository/rental"
	"github.com/Mohit-0987/Bike-Rental-System/service/pricing"
)

// errors used by controllers

var (
	// ErrBikeUnavailable covers both a bike nobody has ever stocked and a
	// bike currently out on another rental. Callers get no stronger claim
	// than "not rentable right now".
	ErrBikeUnavailable = errors.New("bike not available")

	// ErrRentalNotFound covers a missing rental id, a rental owned by
	// someone else, and a rental already returned.
	ErrRentalNotFound = errors.New("active rental not found")

	// ErrStorage wraps infrastructure failures so handlers can answer 500
	// without leaking driver detail.
	ErrStorage = errors.New("storage failure")
)

// dto

type Quote struct {
	RentalID     int64
	BikeID       int64
	Category     string
	Model        string
	PlannedHours int
	BaseCost     float64
	RentalStart  time.Time
}

type Summary struct {
	RentalID       int64
	BikeID         int64
	Category       string
	Model          string
	PlannedHours   int
	ActualHours    float64
	BaseCost       float64
	OvertimeCharge float64
	TotalCost      float64
	RentalEnd      time.Time
}

// HistoryRow = repository shape
type HistoryRow = rrepo.HistoryRow

type Repo interface {
	GetBikeForQuote(ctx context.Context, tx *sql.Tx, bikeID int64) (*model.Bike, error)
	ReserveBike(ctx context.Context, tx *sql.Tx, bikeID int64) (bool, error)
	ReleaseBike(ctx context.Context, tx *sql.Tx, bikeID int64) error

	InsertRental(ctx context.Context, tx *sql.Tx, rec *model.Rental) (int64, error)
	GetActiveForUpdate(ctx context.Context, tx *sql.Tx, rentalID, customerID int64) (*rrepo.ActiveRental, error)
	CompleteRental(ctx context.Context, tx *sql.Tx, rentalID int64, end time.Time, actualHours, additionalCharges, totalCost float64) (bool, error)

	ListByCustomer(ctx context.Context, customerID int64) ([]HistoryRow, error)
}

type Service interface {
	// Open: reserve the bike, quote the planned duration and record the
	// rental as ACTIVE.
	Open(ctx context.Context, customerID, bikeID int64, plannedHours int) (*Quote, error)

	// Close: settle an ACTIVE rental, charging overtime when the bike came
	// back late, and put the bike back in the fleet.
	Close(ctx context.Context, customerID, rentalID int64) (*Summary, error)

	// MyHistory: list rentals for a customer, newest first.
	MyHistory(ctx context.Context, customerID int64) ([]HistoryRow, error)
}

// ----- Service implementation -----

type service struct {
	db  *sql.DB
	r   Repo
	now func() time.Time
}

func New(db *sql.DB, r Repo) Service {
	return &service{db: db, r: r, now: time.Now}
}

// Open validates the requested duration before touching storage, then runs
// quote, reservation and insert in one transaction. Any failure past BeginTx
// rolls the whole thing back, so a reserved bike never lacks its rental row.
func (s *service) Open(ctx context.Context, customerID, bikeID int64, plannedHours int) (q *Quote, err error) {
	if plannedHours <= 0 {
		return nil, fmt.Errorf("%w: got %d", pricing.ErrInvalidDuration, plannedHours)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bike, err := s.r.GetBikeForQuote(ctx, tx, bikeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBikeUnavailable
		}
		return nil, fmt.Errorf("%w: load bike: %v", ErrStorage, err)
	}

	strategy := pricing.ForBike(bike.Category, pricing.Rates{Hourly: bike.HourlyRate, Daily: bike.DailyRate})
	baseCost, err := strategy.Cost(plannedHours)
	if err != nil {
		return nil, err
	}

	// Of two concurrent opens on the same bike, the reservation flip lets
	// exactly one through.
	reserved, err := s.r.ReserveBike(ctx, tx, bikeID)
	if err != nil {
		return nil, fmt.Errorf("%w: reserve bike: %v", ErrStorage, err)
	}
	if !reserved {
		return nil, ErrBikeUnavailable
	}

	start := s.now().UTC()
	rec := &model.Rental{
		CustomerID:   customerID,
		BikeID:       bikeID,
		RentalStart:  start,
		PlannedHours: plannedHours,
		BaseCost:     baseCost,
		TotalCost:    baseCost,
		Status:       model.RentalActive,
	}
	rentalID, err := s.r.InsertRental(ctx, tx, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: insert rental: %v", ErrStorage, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrStorage, err)
	}

	return &Quote{
		RentalID:     rentalID,
		BikeID:       bike.ID,
		Category:     bike.Category,
		Model:        bike.Model,
		PlannedHours: plannedHours,
		BaseCost:     baseCost,
		RentalStart:  start,
	}, nil
}

// Close settles the rental and frees the bike.
func (s *service) Close(ctx context.Context, customerID, rentalID int64) (sum *Summary, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	act, err := s.r.GetActiveForUpdate(ctx, tx, rentalID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, fmt.Errorf("%w: load rental: %v", ErrStorage, err)
	}

	end := s.now().UTC()
	actualHours := end.Sub(act.RentalStart).Hours()
	overtime := pricing.OvertimeCharge(actualHours, float64(act.PlannedHours), act.HourlyRate)
	totalCost := act.BaseCost + overtime

	done, err := s.r.CompleteRental(ctx, tx, rentalID, end, actualHours, overtime, totalCost)
	if err != nil {
		return nil, fmt.Errorf("%w: complete rental: %v", ErrStorage, err)
	}
	if !done {
		// Lost a race with another return of the same rental.
		return nil, ErrRentalNotFound
	}

	if err = s.r.ReleaseBike(ctx, tx, act.BikeID); err != nil {
		return nil, fmt.Errorf("%w: release bike: %v", ErrStorage, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrStorage, err)
	}

	return &Summary{
		RentalID:       act.RentalID,
		BikeID:         act.BikeID,
		Category:       act.Category,
		Model:          act.Model,
		PlannedHours:   act.PlannedHours,
		ActualHours:    actualHours,
		BaseCost:       act.BaseCost,
		OvertimeCharge: overtime,
		TotalCost:      totalCost,
		RentalEnd:      end,
	}, nil
}

func (s *service) MyHistory(ctx context.Context, customerID int64) ([]HistoryRow, error) {
	return s.r.ListByCustomer(ctx, customerID)
}
