package service

import (
	"context"
	"errors"
	"time"

	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/repository"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseService handles expense business logic. Validation happens upstream
// in the handlers; the service assumes well-formed input.
type ExpenseService struct {
	repo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(repo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create records a new expense for a user.
func (s *ExpenseService) Create(ctx context.Context, userID int64, req model.CreateExpenseRequest, date time.Time) (model.ExpenseResponse, error) {
	expense := model.Expense{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		Note:     req.Note,
	}

	if err := s.repo.Create(ctx, &expense); err != nil {
		return model.ExpenseResponse{}, err
	}

	return formatExpense(expense), nil
}

// List returns a user's expenses matching the filter, newest first.
func (s *ExpenseService) List(ctx context.Context, userID int64, filter model.ExpenseFilter) ([]model.ExpenseResponse, error) {
	expenses, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = formatExpense(e)
	}
	return result, nil
}

// Get retrieves a single expense owned by the user.
func (s *ExpenseService) Get(ctx context.Context, userID int64, id string) (model.ExpenseResponse, error) {
	expense, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return model.ExpenseResponse{}, ErrExpenseNotFound
		}
		return model.ExpenseResponse{}, err
	}

	return formatExpense(*expense), nil
}

// Update applies the provided fields to an existing expense, leaving the
// rest untouched.
func (s *ExpenseService) Update(ctx context.Context, userID int64, id string, req model.UpdateExpenseRequest, date *time.Time) (model.ExpenseResponse, error) {
	expense, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return model.ExpenseResponse{}, ErrExpenseNotFound
		}
		return model.ExpenseResponse{}, err
	}

	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if date != nil {
		expense.Date = *date
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return model.ExpenseResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.ExpenseResponse{}, err
	}

	return formatExpense(*updated), nil
}

// Delete removes an expense owned by the user.
func (s *ExpenseService) Delete(ctx context.Context, userID int64, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrExpenseNotFound) {
		return ErrExpenseNotFound
	}
	return err
}

// formatExpense converts a stored expense to its API representation.
func formatExpense(e model.Expense) model.ExpenseResponse {
	return model.ExpenseResponse{
		ID:        e.ID,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
