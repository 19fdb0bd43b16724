package models

import (
	"time"

	"github.com/google/uuid"
)

// Balance is one net pairwise debt, enriched with member names and the
// date the oldest contributing expense was recorded.
type Balance struct {
	From      uuid.UUID  `json:"from"`
	FromName  string     `json:"from_name"`
	To        uuid.UUID  `json:"to"`
	ToName    string     `json:"to_name"`
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	SinceDate *time.Time `json:"since_date,omitempty"`
}

// FriendBalance represents the overall balance with a single member
// across all shared households
type FriendBalance struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Amount    float64   `json:"amount"` // positive = they owe you, negative = you owe them
	Currency  string    `json:"currency"`
}

// HouseholdBalanceSummary is returned for GET /api/households/:id/balances
type HouseholdBalanceSummary struct {
	HouseholdID   uuid.UUID `json:"household_id"`
	HouseholdName string    `json:"household_name"`
	Balances      []Balance `json:"balances"`
	TotalSpent    float64   `json:"total_spent"`
}

// OverallBalanceSummary is returned for GET /api/balances
type OverallBalanceSummary struct {
	TotalOwed  float64         `json:"total_owed"`  // total others owe you
	TotalOwing float64         `json:"total_owing"` // total you owe others
	Friends    []FriendBalance `json:"friends"`
}
