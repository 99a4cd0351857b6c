// service/report/report_service_test.go
package reportsvc_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	reportrepo "github.com/Mohit-0987/Bike-Rental-System/repository/report"
	reportsvc "github.com/Mohit-0987/Bike-Rental-System/service/report"
)

type repoMock struct {
	revenueFn func(ctx context.Context) (float64, error)
	countsFn  func(ctx context.Context) (int64, int64, error)
	catsFn    func(ctx context.Context) ([]reportrepo.CategoryCount, error)
	avgFn     func(ctx context.Context) (float64, error)
}

func (m *repoMock) TotalRevenue(ctx context.Context) (float64, error) {
	if m.revenueFn == nil {
		return 0, nil
	}
	return m.revenueFn(ctx)
}
func (m *repoMock) RentalCounts(ctx context.Context) (int64, int64, error) {
	if m.countsFn == nil {
		return 0, 0, nil
	}
	return m.countsFn(ctx)
}
func (m *repoMock) CategoryCounts(ctx context.Context) ([]reportrepo.CategoryCount, error) {
	if m.catsFn == nil {
		return nil, nil
	}
	return m.catsFn(ctx)
}
func (m *repoMock) AverageDuration(ctx context.Context) (float64, error) {
	if m.avgFn == nil {
		return 0, nil
	}
	return m.avgFn(ctx)
}

type cacheMock struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

func (m *cacheMock) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn == nil {
		return nil, nil
	}
	return m.getFn(ctx, key)
}
func (m *cacheMock) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, key, val, ttl)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBusiness_EmptyHistory(t *testing.T) {
	svc := reportsvc.New(&repoMock{}, nil, time.Minute, testLogger())

	rep, err := svc.Business(context.Background())
	require.NoError(t, err)
	require.Zero(t, rep.TotalRevenue)
	require.Zero(t, rep.TotalRentals)
	require.Zero(t, rep.ActiveRentals)
	require.Zero(t, rep.AverageDurationHours)
	require.Empty(t, rep.MostPopularCategory)
}

func TestBusiness_Aggregates(t *testing.T) {
	m := &repoMock{
		revenueFn: func(ctx context.Context) (float64, error) { return 439.5, nil },
		countsFn:  func(ctx context.Context) (int64, int64, error) { return 3, 1, nil },
		catsFn: func(ctx context.Context) ([]reportrepo.CategoryCount, error) {
			return []reportrepo.CategoryCount{
				{Category: "Mountain", Rentals: 2},
				{Category: "Road", Rentals: 1},
			}, nil
		},
		avgFn: func(ctx context.Context) (float64, error) { return 7.5, nil },
	}
	svc := reportsvc.New(m, nil, time.Minute, testLogger())

	rep, err := svc.Business(context.Background())
	require.NoError(t, err)
	require.Equal(t, 439.5, rep.TotalRevenue)
	require.Equal(t, int64(3), rep.TotalRentals)
	require.Equal(t, int64(1), rep.ActiveRentals)
	require.Equal(t, "Mountain", rep.MostPopularCategory)
	require.Equal(t, 7.5, rep.AverageDurationHours)
}

func TestBusiness_PopularTieBreak(t *testing.T) {
	cases := []struct {
		name   string
		counts []reportrepo.CategoryCount
		want   string
	}{
		{
			// Mountain precedes Road in the category order.
			name: "known tie",
			counts: []reportrepo.CategoryCount{
				{Category: "Road", Rentals: 2},
				{Category: "Mountain", Rentals: 2},
			},
			want: "Mountain",
		},
		{
			name: "legacy label wins outright",
			counts: []reportrepo.CategoryCount{
				{Category: "Tandem", Rentals: 3},
				{Category: "Mountain", Rentals: 2},
			},
			want: "Tandem",
		},
		{
			// On equal counts a known category beats a legacy label.
			name: "legacy label loses tie",
			counts: []reportrepo.CategoryCount{
				{Category: "Tandem", Rentals: 2},
				{Category: "Electric", Rentals: 2},
			},
			want: "Electric",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &repoMock{
				catsFn: func(ctx context.Context) ([]reportrepo.CategoryCount, error) {
					return tc.counts, nil
				},
			}
			svc := reportsvc.New(m, nil, time.Minute, testLogger())

			rep, err := svc.Business(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.want, rep.MostPopularCategory)
		})
	}
}

func TestBusiness_CacheHitSkipsQueries(t *testing.T) {
	cached, err := json.Marshal(model.BusinessReport{
		TotalRevenue: 99, TotalRentals: 4, ActiveRentals: 2,
		MostPopularCategory: "Electric", AverageDurationHours: 3.25,
	})
	require.NoError(t, err)

	queried := false
	m := &repoMock{
		revenueFn: func(ctx context.Context) (float64, error) {
			queried = true
			return 0, nil
		},
	}
	c := &cacheMock{
		getFn: func(ctx context.Context, key string) ([]byte, error) { return cached, nil },
	}
	svc := reportsvc.New(m, c, time.Minute, testLogger())

	rep, err := svc.Business(context.Background())
	require.NoError(t, err)
	require.False(t, queried, "cache hit must not hit the database")
	require.Equal(t, 99.0, rep.TotalRevenue)
	require.Equal(t, "Electric", rep.MostPopularCategory)
}

func TestBusiness_CacheMissWritesBack(t *testing.T) {
	m := &repoMock{
		revenueFn: func(ctx context.Context) (float64, error) { return 10, nil },
		countsFn:  func(ctx context.Context) (int64, int64, error) { return 1, 0, nil },
	}

	var gotKey string
	var gotTTL time.Duration
	var gotVal []byte
	c := &cacheMock{
		setFn: func(ctx context.Context, key string, val []byte, ttl time.Duration) error {
			gotKey, gotVal, gotTTL = key, val, ttl
			return nil
		},
	}
	svc := reportsvc.New(m, c, 30*time.Second, testLogger())

	rep, err := svc.Business(context.Background())
	require.NoError(t, err)
	require.Equal(t, "reports:business", gotKey)
	require.Equal(t, 30*time.Second, gotTTL)

	var stored model.BusinessReport
	require.NoError(t, json.Unmarshal(gotVal, &stored))
	require.Equal(t, *rep, stored)
}

func TestBusiness_CacheTroubleFallsThrough(t *testing.T) {
	m := &repoMock{
		revenueFn: func(ctx context.Context) (float64, error) { return 55, nil },
	}
	c := &cacheMock{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("redis down")
		},
		setFn: func(ctx context.Context, key string, val []byte, ttl time.Duration) error {
			return errors.New("redis still down")
		},
	}
	svc := reportsvc.New(m, c, time.Minute, testLogger())

	rep, err := svc.Business(context.Background())
	require.NoError(t, err)
	require.Equal(t, 55.0, rep.TotalRevenue)
}

func TestBusiness_RepoErrorSurfaces(t *testing.T) {
	boom := errors.New("db down")
	m := &repoMock{
		revenueFn: func(ctx context.Context) (float64, error) { return 0, boom },
	}
	svc := reportsvc.New(m, nil, time.Minute, testLogger())

	_, err := svc.Business(context.Background())
	require.ErrorIs(t, err, boom)
}
