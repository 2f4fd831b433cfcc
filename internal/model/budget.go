package model

import "time"

// Budget represents a per-user monthly spending limit. One row exists per
// (user, month) pair.
type Budget struct {
	UserID       int64
	Month        string
	MonthlyLimit float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetBudgetRequest represents a budget upsert request. Month is "YYYY-MM".
type SetBudgetRequest struct {
	MonthlyLimit float64 `json:"monthlyLimit"`
	Month        string  `json:"month"`
}
