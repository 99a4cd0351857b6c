package reportsvc

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	reportrepo "github.com/Mohit-0987/Bike-Rental-System/repository/report"
	"github.com/Mohit-0987/Bike-Rental-System/service/pricing"
)

const cacheKey = "reports:business"

type Repo interface {
	TotalRevenue(ctx context.Context) (float64, error)
	RentalCounts(ctx context.Context) (total, active int64, err error)
	CategoryCounts(ctx context.Context) ([]reportrepo.CategoryCount, error)
	AverageDuration(ctx context.Context) (float64, error)
}

// Cache is the read-through layer in front of the aggregate queries. Get
// reports a miss as (nil, nil). A nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Service interface {
	Business(ctx context.Context) (*model.BusinessReport, error)
}

type service struct {
	r     Repo
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

func New(r Repo, cache Cache, ttl time.Duration, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{r: r, cache: cache, ttl: ttl, log: log}
}

// Business assembles the operator report. Cache trouble never fails the
// request; it only costs the direct queries.
func (s *service) Business(ctx context.Context) (*model.BusinessReport, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			s.log.Warn("report cache read failed", "err", err)
		case raw != nil:
			var rep model.BusinessReport
			if err := json.Unmarshal(raw, &rep); err != nil {
				s.log.Warn("report cache entry unreadable", "err", err)
			} else {
				return &rep, nil
			}
		}
	}

	revenue, err := s.r.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	total, active, err := s.r.RentalCounts(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.r.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := s.r.AverageDuration(ctx)
	if err != nil {
		return nil, err
	}

	rep := &model.BusinessReport{
		TotalRevenue:         revenue,
		TotalRentals:         total,
		ActiveRentals:        active,
		MostPopularCategory:  mostPopular(counts),
		AverageDurationHours: avg,
	}

	if s.cache != nil {
		raw, err := json.Marshal(rep)
		if err == nil {
			err = s.cache.Set(ctx, cacheKey, raw, s.ttl)
		}
		if err != nil {
			s.log.Warn("report cache write failed", "err", err)
		}
	}
	return rep, nil
}

// mostPopular picks the category with the highest rental count. Ties resolve
// by the pricing.Categories order; labels outside it (legacy rows priced as
// Hybrid) come after the known ones, alphabetically. Empty history yields "".
func mostPopular(counts []reportrepo.CategoryCount) string {
	byLabel := make(map[string]int64, len(counts))
	for _, c := range counts {
		byLabel[c.Category] = c.Rentals
	}

	var best string
	var bestCount int64
	for _, c := range pricing.Categories {
		if n := byLabel[string(c)]; n > bestCount {
			best, bestCount = string(c), n
		}
		delete(byLabel, string(c))
	}

	rest := make([]string, 0, len(byLabel))
	for label := range byLabel {
		rest = append(rest, label)
	}
	sort.Strings(rest)
	for _, label := range rest {
		if byLabel[label] > bestCount {
			best, bestCount = label, byLabel[label]
		}
	}
	return best
}
