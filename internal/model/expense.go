package model

import "time"

// Categories is the closed set of expense categories.
var Categories = []string{"Food", "Travel", "Rent", "Shopping", "Other"}

// ValidCategory reports whether c is one of the known expense categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense represents an expense record in the database.
type Expense struct {
	ID        string
	UserID    int64
	Amount    float64
	Category  string
	Date      time.Time
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateExpenseRequest represents an expense creation request. Date is an
// RFC 3339 timestamp string, parsed after validation.
type CreateExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Note     string  `json:"note,omitempty"`
}

// UpdateExpenseRequest represents a partial expense update. Nil fields are
// left untouched.
type UpdateExpenseRequest struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Note     *string  `json:"note"`
}

// ExpenseFilter narrows expense queries. Zero values mean "no constraint";
// date bounds are inclusive.
type ExpenseFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the total and count over a filtered expense set.
type Summary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// CategoryTotal is one group in the per-category statistics.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is one group in the per-month statistics. Month is formatted
// "YYYY-MM".
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}
