// Package ledger derives views from a household's raw expense and
// settlement records: the minimal pairwise-debt graph and spending
// insights with a short-horizon forecast. Both computations are pure —
// they read an in-memory snapshot supplied by the caller and allocate a
// fresh result. Input validation (share sums, positive amounts) belongs
// to the HTTP layer, not here.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Share is one participant's portion of an expense.
type Share struct {
	UserID uuid.UUID
	Amount float64
}

// ExpenseRecord is the engine-facing view of a stored expense.
type ExpenseRecord struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Amount      float64
	PaidBy      uuid.UUID
	Shares      []Share
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// SettlementRecord is the engine-facing view of a recorded payment
// from one member to another.
type SettlementRecord struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	From        uuid.UUID
	To          uuid.UUID
	Amount      float64
	Date        time.Time
}

// PairwiseBalance says From owes To Amount. At most one balance is
// emitted per unordered pair of members, and Amount is always above
// the cent tolerance.
type PairwiseBalance struct {
	From   uuid.UUID `json:"from"`
	To     uuid.UUID `json:"to"`
	Amount float64   `json:"amount"`
}

// CategorySpending is one row of the per-category breakdown.
type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// MonthlyPoint is one month of the trailing spending series.
type MonthlyPoint struct {
	Month  string  `json:"month"` // "YYYY-MM"
	Amount float64 `json:"amount"`
}

// Predictions carries the next-month forecast and its direction.
type Predictions struct {
	NextMonth float64 `json:"next_month"`
	Trend     string  `json:"trend"` // increasing, decreasing, stable
}

// InsightsResult is the full derived spending view for one household.
type InsightsResult struct {
	ByCategory     []CategorySpending `json:"by_category"`
	MonthlyTrend   []MonthlyPoint     `json:"monthly_trend"`
	Predictions    Predictions        `json:"predictions"`
	TotalSpent     float64            `json:"total_spent"`
	AverageMonthly float64            `json:"average_monthly"`
}
