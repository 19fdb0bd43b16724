package ledger

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// trendMonths is the size of the trailing analysis window.
	trendMonths = 6
	// forecastPoints is how many recent months feed the regression.
	forecastPoints = 3

	// CategoryOther labels expenses recorded without a category.
	CategoryOther = "other"

	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// CalculateInsights aggregates the trailing six calendar months of
// expenses (by Date, ending at now's month inclusive) into a category
// breakdown, a zero-filled monthly series, and a next-month forecast.
// now is explicit so the computation is deterministic under test.
func CalculateInsights(expenses []ExpenseRecord, now time.Time) InsightsResult {
	windowStart := monthStart(now).AddDate(0, -(trendMonths - 1), 0)

	var windowed []ExpenseRecord
	for _, e := range expenses {
		if e.Date.Before(windowStart) || e.Date.After(now) {
			continue
		}
		windowed = append(windowed, e)
	}

	var totalSpent float64
	for _, e := range windowed {
		totalSpent += e.Amount
	}

	byCategory := aggregateCategories(windowed, totalSpent)
	trend := monthlySeries(windowed, windowStart)

	var activeMonths int
	for _, p := range trend {
		if p.Amount > 0 {
			activeMonths++
		}
	}
	var avgMonthly float64
	if activeMonths > 0 {
		avgMonthly = totalSpent / float64(activeMonths)
	}

	predictions := forecast(trend, avgMonthly)

	for i := range trend {
		trend[i].Amount = roundTwo(trend[i].Amount)
	}

	return InsightsResult{
		ByCategory:     byCategory,
		MonthlyTrend:   trend,
		Predictions:    predictions,
		TotalSpent:     roundTwo(totalSpent),
		AverageMonthly: roundTwo(avgMonthly),
	}
}

func aggregateCategories(expenses []ExpenseRecord, totalSpent float64) []CategorySpending {
	amounts := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = CategoryOther
		}
		if _, ok := amounts[cat]; !ok {
			order = append(order, cat)
		}
		amounts[cat] += e.Amount
		counts[cat]++
	}

	result := make([]CategorySpending, 0, len(order))
	for _, cat := range order {
		var pct float64
		if totalSpent > 0 {
			pct = amounts[cat] / totalSpent * 100
		}
		result = append(result, CategorySpending{
			Category:   cat,
			Amount:     roundTwo(amounts[cat]),
			Percentage: roundTwo(pct),
			Count:      counts[cat],
		})
	}

	// Stable keeps input order for equal amounts.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})

	return result
}

// monthlySeries returns exactly trendMonths points, chronological
// ascending, with zero amounts for empty months.
func monthlySeries(expenses []ExpenseRecord, windowStart time.Time) []MonthlyPoint {
	byMonth := make(map[string]float64)
	for _, e := range expenses {
		byMonth[monthKey(e.Date)] += e.Amount
	}

	series := make([]MonthlyPoint, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := monthKey(m)
		series = append(series, MonthlyPoint{Month: key, Amount: byMonth[key]})
	}
	return series
}

// forecast fits an ordinary least-squares line over the nonzero tail
// of the monthly series and extrapolates one month ahead. With fewer
// than two nonzero points there is nothing to fit; the average stands
// in as the prediction.
func forecast(trend []MonthlyPoint, avgMonthly float64) Predictions {
	var points []float64
	for _, p := range trend[len(trend)-forecastPoints:] {
		if p.Amount > 0 {
			points = append(points, p.Amount)
		}
	}

	if len(points) < 2 {
		return Predictions{NextMonth: roundTwo(avgMonthly), Trend: TrendStable}
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range points {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	next := slope*(n+1) + intercept
	if next < 0 {
		next = avgMonthly
	}

	trendLabel := TrendStable
	switch {
	case slope > 0.1*avgMonthly:
		trendLabel = TrendIncreasing
	case slope < -0.1*avgMonthly:
		trendLabel = TrendDecreasing
	}

	return Predictions{NextMonth: roundTwo(next), Trend: trendLabel}
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthKey formats a "YYYY-MM" grouping key, independent of locale.
func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
