package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	u1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	u2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	u3 = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

func expense(paidBy uuid.UUID, amount float64, shares ...Share) ExpenseRecord {
	return ExpenseRecord{
		ID:     uuid.New(),
		Amount: amount,
		PaidBy: paidBy,
		Shares: shares,
	}
}

func TestComputeBalancesSingleExpense(t *testing.T) {
	expenses := []ExpenseRecord{
		expense(u1, 100, Share{UserID: u1, Amount: 30}, Share{UserID: u2, Amount: 70}),
	}

	balances := ComputeBalances(expenses, nil)

	require.Len(t, balances, 1)
	assert.Equal(t, u2, balances[0].From)
	assert.Equal(t, u1, balances[0].To)
	assert.InDelta(t, 70, balances[0].Amount, 1e-9)
}

func TestComputeBalancesFullSettlementClearsPair(t *testing.T) {
	expenses := []ExpenseRecord{
		expense(u1, 100, Share{UserID: u1, Amount: 30}, Share{UserID: u2, Amount: 70}),
	}
	settlements := []SettlementRecord{
		{ID: uuid.New(), From: u2, To: u1, Amount: 70},
	}

	balances := ComputeBalances(expenses, settlements)

	assert.Empty(t, balances)
}

func TestComputeBalancesOverpaymentFlipsDirection(t *testing.T) {
	expenses := []ExpenseRecord{
		expense(u1, 100, Share{UserID: u1, Amount: 50}, Share{UserID: u2, Amount: 50}),
	}
	settlements := []SettlementRecord{
		{ID: uuid.New(), From: u2, To: u1, Amount: 80},
	}

	balances := ComputeBalances(expenses, settlements)

	require.Len(t, balances, 1)
	assert.Equal(t, u1, balances[0].From)
	assert.Equal(t, u2, balances[0].To)
	assert.InDelta(t, 30, balances[0].Amount, 1e-9)
}

func TestComputeBalancesNeverEmitsBothDirections(t *testing.T) {
	expenses := []ExpenseRecord{
		expense(u1, 90, Share{UserID: u1, Amount: 30}, Share{UserID: u2, Amount: 30}, Share{UserID: u3, Amount: 30}),
		expense(u2, 60, Share{UserID: u1, Amount: 20}, Share{UserID: u2, Amount: 20}, Share{UserID: u3, Amount: 20}),
		expense(u3, 30, Share{UserID: u1, Amount: 10}, Share{UserID: u2, Amount: 10}, Share{UserID: u3, Amount: 10}),
	}
	settlements := []SettlementRecord{
		{ID: uuid.New(), From: u3, To: u1, Amount: 15},
		{ID: uuid.New(), From: u2, To: u3, Amount: 5},
	}

	balances := ComputeBalances(expenses, settlements)

	type pair struct{ a, b uuid.UUID }
	seen := make(map[pair]bool)
	for _, b := range balances {
		assert.Greater(t, b.Amount, centTolerance)
		lo, hi := b.From, b.To
		if hi.String() < lo.String() {
			lo, hi = hi, lo
		}
		p := pair{lo, hi}
		assert.False(t, seen[p], "pair emitted twice: %s/%s", lo, hi)
		seen[p] = true
	}
}

func TestComputeBalancesCentToleranceBoundary(t *testing.T) {
	// A net of exactly one cent is treated as settled.
	atThreshold := []ExpenseRecord{
		expense(u1, 0.01, Share{UserID: u2, Amount: 0.01}),
	}
	assert.Empty(t, ComputeBalances(atThreshold, nil))

	// Just above the threshold the balance must survive.
	aboveThreshold := []ExpenseRecord{
		expense(u1, 0.011, Share{UserID: u2, Amount: 0.011}),
	}
	balances := ComputeBalances(aboveThreshold, nil)
	require.Len(t, balances, 1)
	assert.Equal(t, u2, balances[0].From)
}

func TestComputeBalancesEmptyInput(t *testing.T) {
	assert.Empty(t, ComputeBalances(nil, nil))
}

func TestComputeBalancesSettlementOnlyMembers(t *testing.T) {
	// Members can appear in settlements without any expense history.
	settlements := []SettlementRecord{
		{ID: uuid.New(), From: u1, To: u2, Amount: 25},
	}

	balances := ComputeBalances(nil, settlements)

	require.Len(t, balances, 1)
	assert.Equal(t, u2, balances[0].From)
	assert.Equal(t, u1, balances[0].To)
	assert.InDelta(t, 25, balances[0].Amount, 1e-9)
}

func TestComputeBalancesDeterministicOrder(t *testing.T) {
	expenses := []ExpenseRecord{
		expense(u1, 60, Share{UserID: u2, Amount: 30}, Share{UserID: u3, Amount: 30}),
		expense(u2, 40, Share{UserID: u3, Amount: 40}),
	}

	first := ComputeBalances(expenses, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeBalances(expenses, nil))
	}

	// Pairs are enumerated in first-seen member order: u1 before u2 before u3.
	require.Len(t, first, 3)
	assert.Equal(t, u2, first[0].From)
	assert.Equal(t, u1, first[0].To)
}
