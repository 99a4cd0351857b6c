// service/bike/bike_service_test.go
package bikesvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	bikesvc "github.com/Mohit-0987/Bike-Rental-System/service/bike"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Bike) (int64, error)
	listFn   func(ctx context.Context) ([]model.Bike, error)
	detailFn func(ctx context.Context, id int64) (*model.Bike, error)
	seedFn   func(ctx context.Context) (int64, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Bike) (int64, error) {
	return m.createFn(ctx, b)
}
func (m *repoMock) ListAvailable(ctx context.Context) ([]model.Bike, error) { return m.listFn(ctx) }
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Bike, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) SeedSampleData(ctx context.Context) (int64, error) { return m.seedFn(ctx) }

func TestCreate_Validation(t *testing.T) {
	s := bikesvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "Trek X-Caliber", 15, 80, nil); err == nil {
		t.Fatal("expected error for empty category")
	}
	if _, err := s.Create(context.Background(), "Mountain", "", 15, 80, nil); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := s.Create(context.Background(), "Mountain", "Trek X-Caliber", 0, 80, nil); err == nil {
		t.Fatal("expected error for zero hourly rate")
	}
	if _, err := s.Create(context.Background(), "Mountain", "Trek X-Caliber", 15, -1, nil); err == nil {
		t.Fatal("expected error for negative daily rate")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Bike) (int64, error) {
			if b.Category != "Electric" || b.Model != "Rad Power RadCity" || b.HourlyRate != 25 || b.DailyRate != 120 {
				return 0, errors.New("bad args")
			}
			return 42, nil
		},
	}
	s := bikesvc.New(m)
	id, err := s.Create(context.Background(), "Electric", "Rad Power RadCity", 25, 120, nil)
	if err != nil || id != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", id, err)
	}
}

func TestDetail_Missing(t *testing.T) {
	m := &repoMock{
		detailFn: func(ctx context.Context, id int64) (*model.Bike, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := bikesvc.New(m)

	b, err := s.Detail(context.Background(), 99)
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if b != nil {
		t.Fatalf("got %+v; want nil for missing bike", b)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Bike, error) {
			return []model.Bike{{ID: 1, Category: "Road"}}, nil
		},
		detailFn: func(ctx context.Context, id int64) (*model.Bike, error) {
			return &model.Bike{ID: id}, nil
		},
		seedFn: func(ctx context.Context) (int64, error) { return 6, nil },
	}
	s := bikesvc.New(m)

	bikes, err := s.ListAvailable(context.Background())
	if err != nil || len(bikes) != 1 {
		t.Fatalf("ListAvailable got %v %v; want 1 bike", bikes, err)
	}
	if b, err := s.Detail(context.Background(), 7); err != nil || b.ID != 7 {
		t.Fatalf("Detail got %v %v; want ID 7", b, err)
	}
	if n, err := s.SeedSampleData(context.Background()); err != nil || n != 6 {
		t.Fatalf("SeedSampleData got %v %v; want 6 nil", n, err)
	}
}
