package service

import (
	"context"
	"errors"

	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/repository"
)

// BudgetStore is the budget persistence surface the budget service depends
// on, satisfied by repository.BudgetRepository.
type BudgetStore interface {
	Get(ctx context.Context, userID int64, month string) (*model.Budget, error)
	Upsert(ctx context.Context, budget *model.Budget) error
}

// BudgetService handles monthly budget business logic.
type BudgetService struct {
	repo BudgetStore
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(repo BudgetStore) *BudgetService {
	return &BudgetService{repo: repo}
}

// Get returns the budget limit for a month. An unset budget is 0, not an
// error.
func (s *BudgetService) Get(ctx context.Context, userID int64, month string) (float64, error) {
	budget, err := s.repo.Get(ctx, userID, month)
	if err != nil {
		if errors.Is(err, repository.ErrBudgetNotSet) {
			return 0, nil
		}
		return 0, err
	}

	return budget.MonthlyLimit, nil
}

// Set upserts the budget for a month and returns the resulting limit.
func (s *BudgetService) Set(ctx context.Context, userID int64, req model.SetBudgetRequest) (float64, error) {
	budget := model.Budget{
		UserID:       userID,
		Month:        req.Month,
		MonthlyLimit: req.MonthlyLimit,
	}

	if err := s.repo.Upsert(ctx, &budget); err != nil {
		return 0, err
	}

	return budget.MonthlyLimit, nil
}
