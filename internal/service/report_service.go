package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"canteen-pos/internal/domain"

	"github.com/shopspring/decimal"
)

const MaxPopularLimit = 50

var ErrInvalidLimit = errors.New("limit must be between 1 and 50")

type ReportService struct {
	repo  ReportRepository
	cache ReportCache
}

func NewReportService(repo ReportRepository, cache ReportCache) *ReportService {
	return &ReportService{repo: repo, cache: cache}
}

// Daily aggregates committed orders for one date. The average guards the
// empty day: zero orders means a zero average, not a division by zero.
func (s *ReportService) Daily(day time.Time) (*domain.DailyReport, error) {
	report, err := s.repo.DailyStats(day)
	if err != nil {
		return nil, err
	}

	if report.OrdersCount > 0 {
		report.AverageOrder = report.DailyTotal.DivRound(decimal.NewFromInt(int64(report.OrdersCount)), 2)
	} else {
		report.AverageOrder = decimal.Zero
	}
	return report, nil
}

// ByCategory sums line item totals per category over the date range and
// derives each category's share of the grand total. All percentages are 0
// when nothing was sold.
func (s *ReportService) ByCategory(start, end time.Time) (*domain.CategoryReport, error) {
	sales, err := s.repo.CategorySales(start, end)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range sales {
		total = total.Add(row.Amount)
	}

	hundred := decimal.NewFromInt(100)
	for i := range sales {
		if total.IsPositive() {
			pct, _ := sales[i].Amount.Mul(hundred).Div(total).Round(1).Float64()
			sales[i].Percentage = pct
		} else {
			sales[i].Percentage = 0
		}
	}

	return &domain.CategoryReport{
		Period: domain.ReportPeriod{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
		TotalAmount: total,
		Categories:  sales,
	}, nil
}

// Popular ranks dishes by units sold, cache-first with a database fallback.
// The cached payload is the committed-data aggregate itself, so a cache hit
// never changes what a report can contain.
func (s *ReportService) Popular(ctx context.Context, start, end *time.Time, limit int) ([]domain.PopularDish, error) {
	if limit < 1 || limit > MaxPopularLimit {
		return nil, ErrInvalidLimit
	}

	var key string
	if s.cache != nil {
		key = s.cache.PopularKey(start, end, limit)
		if payload, err := s.cache.Get(ctx, key); err == nil && len(payload) > 0 {
			var cached []domain.PopularDish
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
		}
	}

	dishes, err := s.repo.PopularDishes(start, end, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(dishes); err == nil {
			if err := s.cache.Set(ctx, key, payload); err != nil {
				log.Printf("[pos] warning: failed to cache popular dishes: %v", err)
			}
		}
	}
	return dishes, nil
}
