package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(paidBy uuid.UUID, amount float64, category string, date time.Time) ExpenseRecord {
	return ExpenseRecord{
		ID:       uuid.New(),
		Amount:   amount,
		PaidBy:   paidBy,
		Category: category,
		Date:     date,
	}
}

func TestCalculateInsightsEmptyInput(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	result := CalculateInsights(nil, now)

	require.Len(t, result.MonthlyTrend, 6)
	for _, p := range result.MonthlyTrend {
		assert.Zero(t, p.Amount)
	}
	assert.Empty(t, result.ByCategory)
	assert.Zero(t, result.TotalSpent)
	assert.Zero(t, result.AverageMonthly)
	assert.Zero(t, result.Predictions.NextMonth)
	assert.Equal(t, TrendStable, result.Predictions.Trend)
}

func TestCalculateInsightsMonthlyWindow(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	result := CalculateInsights(nil, now)

	want := []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}
	require.Len(t, result.MonthlyTrend, 6)
	for i, p := range result.MonthlyTrend {
		assert.Equal(t, want[i], p.Month)
	}
}

func TestCalculateInsightsFiltersByDate(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		// Before the window: February is seven months back when the
		// window opens on March 1.
		dated(u1, 500, "rent", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)),
		// After now.
		dated(u1, 500, "rent", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)),
		// In the window.
		dated(u1, 120, "food", time.Date(2026, time.July, 3, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	assert.InDelta(t, 120, result.TotalSpent, 1e-9)
	require.Len(t, result.ByCategory, 1)
	assert.Equal(t, "food", result.ByCategory[0].Category)
}

func TestCalculateInsightsCategoryAggregation(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 60, "food", july),
		dated(u2, 40, "food", july),
		dated(u1, 80, "rent", july),
		dated(u2, 20, "", july), // no category falls under "other"
	}

	result := CalculateInsights(expenses, now)

	require.Len(t, result.ByCategory, 3)
	assert.Equal(t, "food", result.ByCategory[0].Category)
	assert.InDelta(t, 100, result.ByCategory[0].Amount, 1e-9)
	assert.InDelta(t, 50, result.ByCategory[0].Percentage, 1e-9)
	assert.Equal(t, 2, result.ByCategory[0].Count)

	assert.Equal(t, "rent", result.ByCategory[1].Category)
	assert.InDelta(t, 40, result.ByCategory[1].Percentage, 1e-9)

	assert.Equal(t, CategoryOther, result.ByCategory[2].Category)
	assert.Equal(t, 1, result.ByCategory[2].Count)
}

func TestCalculateInsightsAverageExcludesEmptyMonths(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 100, "food", time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 200, "food", time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	assert.InDelta(t, 300, result.TotalSpent, 1e-9)
	assert.InDelta(t, 150, result.AverageMonthly, 1e-9, "zero months must not dilute the average")
}

func TestCalculateInsightsForecastIncreasing(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 100, "food", time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 200, "food", time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 300, "food", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	// Perfect 100/month slope extrapolates to 400.
	assert.InDelta(t, 400, result.Predictions.NextMonth, 1e-6)
	assert.Equal(t, TrendIncreasing, result.Predictions.Trend)
}

func TestCalculateInsightsForecastClampNegative(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 300, "food", time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 90, "food", time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 30, "food", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	// The fitted line extrapolates below zero; the forecast falls back
	// to the monthly average instead.
	assert.InDelta(t, result.AverageMonthly, result.Predictions.NextMonth, 1e-9)
	assert.Equal(t, TrendDecreasing, result.Predictions.Trend)
}

func TestCalculateInsightsForecastNeedsTwoPoints(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 250, "food", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	assert.InDelta(t, 250, result.Predictions.NextMonth, 1e-9)
	assert.Equal(t, TrendStable, result.Predictions.Trend)
}

func TestCalculateInsightsForecastSkipsZeroMonths(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	// July is empty; the regression runs over June and August only.
	expenses := []ExpenseRecord{
		dated(u1, 100, "food", time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)),
		dated(u1, 200, "food", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
	}

	result := CalculateInsights(expenses, now)

	// Two points 100 -> 200 extrapolate to 300.
	assert.InDelta(t, 300, result.Predictions.NextMonth, 1e-6)
	assert.Equal(t, TrendIncreasing, result.Predictions.Trend)
}

func TestCalculateInsightsRounding(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		dated(u1, 10.333, "food", july),
		dated(u1, 20.334, "rent", july),
	}

	result := CalculateInsights(expenses, now)

	assert.InDelta(t, 30.67, result.TotalSpent, 1e-9)
	require.Len(t, result.MonthlyTrend, 6)
	assert.InDelta(t, 30.67, result.MonthlyTrend[4].Amount, 1e-9)
}
