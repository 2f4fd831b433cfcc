// Package validation holds the pure per-endpoint request validators. Each
// validator maps a decoded request to a field-keyed error list; handlers turn
// a non-empty result into a 400 response.
package validation

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/rishav75way-bit/tracker/internal/model"
)

const maxAmount = 1_000_000_000

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// FieldErrors collects validation messages keyed by field name.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Empty reports whether no validation errors were collected.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Register validates a registration request.
func Register(req model.RegisterRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Email == "" {
		errs.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		errs.Add("email", "Invalid email format")
	}

	if len(req.Password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if len(req.Password) > 100 {
		errs.Add("password", "Password must not exceed 100 characters")
	}

	return errs
}

// Login validates a login request.
func Login(req model.LoginRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Email == "" {
		errs.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		errs.Add("email", "Invalid email format")
	}

	if req.Password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// CreateExpense validates an expense creation request and returns the parsed
// date on success.
func CreateExpense(req model.CreateExpenseRequest) (time.Time, FieldErrors) {
	errs := FieldErrors{}

	validateAmount(errs, req.Amount)

	if !model.ValidCategory(req.Category) {
		errs.Add("category", "Invalid category")
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		errs.Add("date", "Invalid date format")
	}

	validateNote(errs, req.Note)

	return date, errs
}

// UpdateExpense validates a partial expense update and returns the parsed
// date when one was provided.
func UpdateExpense(req model.UpdateExpenseRequest) (*time.Time, FieldErrors) {
	errs := FieldErrors{}

	if req.Amount != nil {
		validateAmount(errs, *req.Amount)
	}
	if req.Category != nil && !model.ValidCategory(*req.Category) {
		errs.Add("category", "Invalid category")
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			errs.Add("date", "Invalid date format")
		} else {
			date = &parsed
		}
	}

	if req.Note != nil {
		validateNote(errs, *req.Note)
	}

	return date, errs
}

// ExpenseQuery validates list/summary/stats query parameters and returns the
// composed filter. Empty parameters leave that side of the filter open.
func ExpenseQuery(category, startDate, endDate string) (model.ExpenseFilter, FieldErrors) {
	errs := FieldErrors{}
	filter := model.ExpenseFilter{}

	if category != "" {
		if !model.ValidCategory(category) {
			errs.Add("category", "Invalid category")
		} else {
			filter.Category = category
		}
	}

	if startDate != "" {
		parsed, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			errs.Add("startDate", "Invalid start date format")
		} else {
			filter.StartDate = &parsed
		}
	}

	if endDate != "" {
		parsed, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			errs.Add("endDate", "Invalid end date format")
		} else {
			filter.EndDate = &parsed
		}
	}

	return filter, errs
}

// SetBudget validates a budget upsert request.
func SetBudget(req model.SetBudgetRequest) FieldErrors {
	errs := FieldErrors{}

	if req.MonthlyLimit < 0 {
		errs.Add("monthlyLimit", "Budget must be at least 0")
	}
	if !monthPattern.MatchString(req.Month) {
		errs.Add("month", "Month must be in YYYY-MM format")
	}

	return errs
}

func validateAmount(errs FieldErrors, amount float64) {
	if amount <= 0 {
		errs.Add("amount", "Amount must be positive")
	} else if amount > maxAmount {
		errs.Add("amount", "Amount is too large")
	}
}

// validateNote limits notes to 500 characters, counted as runes so multibyte
// text gets the full length.
func validateNote(errs FieldErrors, note string) {
	if utf8.RuneCountInString(note) > 500 {
		errs.Add("note", "Note must not exceed 500 characters")
	}
}
