package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rishav75way-bit/tracker/internal/model"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository handles expense persistence operations. Every query is
// scoped to the owning user.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, user_id, amount, category, date, note, created_at, updated_at`

// Create inserts a new expense with a server-assigned UUID and reads back the
// stored row so database-assigned timestamps are returned.
func (r *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	expense.ID = uuid.NewString()

	query := `INSERT INTO expenses (id, user_id, amount, category, date, note) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.UserID, expense.Amount, expense.Category, expense.Date, expense.Note,
	)
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, expense.UserID, expense.ID)
	if err != nil {
		return err
	}
	*expense = *stored
	return nil
}

// GetByID retrieves an expense by ID, scoped to the owning user. A row owned
// by another user is indistinguishable from a missing one.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID int64, id string) (*model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ? AND user_id = ?`

	expense := &model.Expense{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Category,
		&expense.Date, &expense.Note, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	return expense, nil
}

// ListByUser retrieves a user's expenses matching the filter, newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID int64, filter model.ExpenseFilter) ([]model.Expense, error) {
	query, args := buildListQuery(userID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Amount, &e.Category,
			&e.Date, &e.Note, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Update writes all mutable fields of an expense. Field merging and the
// existence check happen in the service layer; RowsAffected is not consulted
// here because MySQL reports zero for updates that leave values unchanged.
func (r *ExpenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	query := `UPDATE expenses SET amount = ?, category = ?, date = ?, note = ? WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		expense.Amount, expense.Category, expense.Date, expense.Note,
		expense.ID, expense.UserID,
	)
	return err
}

// Delete removes an expense owned by the user.
func (r *ExpenseRepository) Delete(ctx context.Context, userID int64, id string) error {
	query := `DELETE FROM expenses WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// buildListQuery composes the filtered list query. Category is an exact
// match; date bounds are inclusive and independently optional.
func buildListQuery(userID int64, filter model.ExpenseFilter) (string, []any) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = ?`
	args := []any{userID}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.StartDate != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += ` AND date <= ?`
		args = append(args, *filter.EndDate)
	}

	query += ` ORDER BY date DESC`
	return query, args
}
