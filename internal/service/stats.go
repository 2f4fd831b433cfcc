package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/repository"
)

// monthlyStatsLimit caps the monthly statistics at the most recent groups.
const monthlyStatsLimit = 6

// StatsService computes aggregate views over a user's expenses. Grouping and
// summing run in memory over the repository-fetched set; sums use decimal
// arithmetic to keep totals exact.
type StatsService struct {
	repo *repository.ExpenseRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo *repository.ExpenseRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns the total amount and record count over exactly the set
// List would return for the same filter.
func (s *StatsService) Summary(ctx context.Context, userID int64, filter model.ExpenseFilter) (model.Summary, error) {
	expenses, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return model.Summary{}, err
	}

	return summarize(expenses), nil
}

// ByCategory groups the filtered expenses by category and sums each group,
// sorted by total descending.
func (s *StatsService) ByCategory(ctx context.Context, userID int64, filter model.ExpenseFilter) ([]model.CategoryTotal, error) {
	expenses, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return groupByCategory(expenses), nil
}

// ByMonth groups all of a user's expenses by calendar month, ascending, and
// returns at most the most recent groups.
func (s *StatsService) ByMonth(ctx context.Context, userID int64) ([]model.MonthTotal, error) {
	expenses, err := s.repo.ListByUser(ctx, userID, model.ExpenseFilter{})
	if err != nil {
		return nil, err
	}

	return groupByMonth(expenses), nil
}

func summarize(expenses []model.Expense) model.Summary {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	return model.Summary{
		Total: total.InexactFloat64(),
		Count: len(expenses),
	}
}

func groupByCategory(expenses []model.Expense) []model.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	result := make([]model.CategoryTotal, len(order))
	for i, category := range order {
		result[i] = model.CategoryTotal{
			Category: category,
			Total:    totals[category].InexactFloat64(),
		}
	}

	// Stable sort keeps first-seen order among equal totals.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})

	return result
}

func groupByMonth(expenses []model.Expense) []model.MonthTotal {
	type yearMonth struct {
		year  int
		month int
	}

	totals := make(map[yearMonth]decimal.Decimal)
	for _, e := range expenses {
		key := yearMonth{year: e.Date.Year(), month: int(e.Date.Month())}
		totals[key] = totals[key].Add(decimal.NewFromFloat(e.Amount))
	}

	keys := make([]yearMonth, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	if len(keys) > monthlyStatsLimit {
		keys = keys[len(keys)-monthlyStatsLimit:]
	}

	result := make([]model.MonthTotal, len(keys))
	for i, key := range keys {
		result[i] = model.MonthTotal{
			Month: fmt.Sprintf("%d-%02d", key.year, key.month),
			Total: totals[key].InexactFloat64(),
		}
	}

	return result
}
