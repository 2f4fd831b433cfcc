package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishav75way-bit/tracker/internal/model"
)

func expenseAt(amount float64, category string, date time.Time) model.Expense {
	return model.Expense{Amount: amount, Category: category, Date: date}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil)
	assert.Equal(t, float64(0), s.Total)
	assert.Equal(t, 0, s.Count)
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	s := summarize([]model.Expense{
		expenseAt(50, "Food", now),
		expenseAt(30.25, "Travel", now),
		expenseAt(19.75, "Other", now),
	})
	assert.Equal(t, float64(100), s.Total)
	assert.Equal(t, 3, s.Count)
}

func TestSummarizeExactDecimalSums(t *testing.T) {
	now := time.Now()
	// 0.1+0.2 drifts under naive float64 addition.
	s := summarize([]model.Expense{
		expenseAt(0.1, "Food", now),
		expenseAt(0.2, "Food", now),
	})
	assert.Equal(t, 0.3, s.Total)
}

func TestGroupByCategoryDescendingTotals(t *testing.T) {
	now := time.Now()
	result := groupByCategory([]model.Expense{
		expenseAt(20, "Travel", now),
		expenseAt(30, "Food", now),
		expenseAt(10, "Travel", now),
	})

	require.Len(t, result, 2)
	assert.Equal(t, model.CategoryTotal{Category: "Food", Total: 30}, result[0])
	assert.Equal(t, model.CategoryTotal{Category: "Travel", Total: 30}, result[1])
}

func TestGroupByCategoryTieKeepsInputOrder(t *testing.T) {
	now := time.Now()
	result := groupByCategory([]model.Expense{
		expenseAt(25, "Rent", now),
		expenseAt(25, "Shopping", now),
	})

	require.Len(t, result, 2)
	assert.Equal(t, "Rent", result[0].Category)
	assert.Equal(t, "Shopping", result[1].Category)
}

func TestGroupByCategoryTwoCategories(t *testing.T) {
	now := time.Now()
	result := groupByCategory([]model.Expense{
		expenseAt(30, "Food", now),
		expenseAt(20, "Travel", now),
	})

	require.Len(t, result, 2)
	assert.Equal(t, model.CategoryTotal{Category: "Food", Total: 30}, result[0])
	assert.Equal(t, model.CategoryTotal{Category: "Travel", Total: 20}, result[1])
}

func TestGroupByMonthAscendingWithLabels(t *testing.T) {
	result := groupByMonth([]model.Expense{
		expenseAt(10, "Food", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		expenseAt(20, "Food", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		expenseAt(5, "Food", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),
		expenseAt(40, "Food", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, result, 3)
	assert.Equal(t, model.MonthTotal{Month: "2023-11", Total: 40}, result[0])
	assert.Equal(t, model.MonthTotal{Month: "2024-01", Total: 20}, result[1])
	assert.Equal(t, model.MonthTotal{Month: "2024-03", Total: 15}, result[2])
}

func TestGroupByMonthSingleDigitZeroPadded(t *testing.T) {
	result := groupByMonth([]model.Expense{
		expenseAt(10, "Food", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)),
		expenseAt(10, "Food", time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, result, 2)
	assert.Equal(t, "2024-09", result[0].Month)
	assert.Equal(t, "2024-10", result[1].Month)
}

func TestGroupByMonthKeepsSixMostRecent(t *testing.T) {
	var expenses []model.Expense
	for m := 1; m <= 9; m++ {
		expenses = append(expenses, expenseAt(float64(m), "Food", time.Date(2024, time.Month(m), 1, 0, 0, 0, 0, time.UTC)))
	}

	result := groupByMonth(expenses)

	require.Len(t, result, 6)
	assert.Equal(t, "2024-04", result[0].Month)
	assert.Equal(t, "2024-09", result[5].Month)
}
