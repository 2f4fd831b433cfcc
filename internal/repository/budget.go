package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rishav75way-bit/tracker/internal/model"
)

var ErrBudgetNotSet = errors.New("budget not set")

// BudgetRepository handles budget persistence operations. Budgets are keyed
// by (user_id, month) with at most one row per pair.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Get retrieves the budget for a (user, month) pair. Returns ErrBudgetNotSet
// when no budget has been configured for that month.
func (r *BudgetRepository) Get(ctx context.Context, userID int64, month string) (*model.Budget, error) {
	query := `SELECT user_id, month, monthly_limit, created_at, updated_at
		FROM budgets WHERE user_id = ? AND month = ?`

	budget := &model.Budget{}
	err := r.db.QueryRowContext(ctx, query, userID, month).Scan(
		&budget.UserID, &budget.Month, &budget.MonthlyLimit, &budget.CreatedAt, &budget.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBudgetNotSet
		}
		return nil, err
	}

	return budget, nil
}

// Upsert inserts or overwrites the budget for a (user, month) pair. The
// primary key on (user_id, month) makes the operation atomic.
func (r *BudgetRepository) Upsert(ctx context.Context, budget *model.Budget) error {
	query := `
		INSERT INTO budgets (user_id, month, monthly_limit)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE monthly_limit = VALUES(monthly_limit)`

	_, err := r.db.ExecContext(ctx, query, budget.UserID, budget.Month, budget.MonthlyLimit)
	return err
}
