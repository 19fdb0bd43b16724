package ledger

import (
	"math"

	"github.com/google/uuid"
)

// centTolerance is the threshold below which a net pairwise balance is
// treated as settled. Residuals from float accumulation or an exact
// settlement must not surface as a phantom one-cent debt.
const centTolerance = 0.01

// ComputeBalances reduces expenses and settlements into the smallest
// set of net pairwise obligations. Each share owed to a payer adds to
// the forward debt; each settlement subtracts from it; the two
// directions for a pair are then netted into at most one balance.
// Member pairs are enumerated in first-seen order so identical input
// always yields identical output.
func ComputeBalances(expenses []ExpenseRecord, settlements []SettlementRecord) []PairwiseBalance {
	var members []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}

	for _, e := range expenses {
		add(e.PaidBy)
		for _, s := range e.Shares {
			add(s.UserID)
		}
	}
	for _, s := range settlements {
		add(s.From)
		add(s.To)
	}

	// debt[a][b] = amount a owes b
	debt := make(map[uuid.UUID]map[uuid.UUID]float64, len(members))
	for _, m := range members {
		debt[m] = make(map[uuid.UUID]float64)
	}

	for _, e := range expenses {
		for _, s := range e.Shares {
			if s.UserID == e.PaidBy {
				continue // own share of own payment
			}
			debt[s.UserID][e.PaidBy] += s.Amount
		}
	}

	for _, s := range settlements {
		debt[s.From][s.To] -= s.Amount
	}

	var balances []PairwiseBalance
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			net := debt[a][b] - debt[b][a]
			if math.Abs(net) <= centTolerance {
				continue
			}
			if net > 0 {
				balances = append(balances, PairwiseBalance{From: a, To: b, Amount: net})
			} else {
				balances = append(balances, PairwiseBalance{From: b, To: a, Amount: -net})
			}
		}
	}

	return balances
}
