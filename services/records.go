package services

import (
	"github.com/google/uuid"
	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/ledger"
	"github.com/nurlanmnn/roomate-sub001/models"
)

// LoadLedgerRecords materializes a household's expense and settlement
// rows into the engine-facing record shapes. Callers hand the snapshot
// to ledger.ComputeBalances or ledger.CalculateInsights.
func LoadLedgerRecords(householdID uuid.UUID) ([]ledger.ExpenseRecord, []ledger.SettlementRecord) {
	var expenses []models.Expense
	database.DB.Where("household_id = ?", householdID).Preload("Splits").Find(&expenses)

	expenseRecords := make([]ledger.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		shares := make([]ledger.Share, 0, len(e.Splits))
		for _, s := range e.Splits {
			shares = append(shares, ledger.Share{UserID: s.UserID, Amount: s.OwedAmount})
		}
		expenseRecords = append(expenseRecords, ledger.ExpenseRecord{
			ID:          e.ID,
			HouseholdID: e.HouseholdID,
			Amount:      e.Amount,
			PaidBy:      e.PaidBy,
			Shares:      shares,
			Category:    e.Category,
			Date:        e.ExpenseDate,
			CreatedAt:   e.CreatedAt,
		})
	}

	var settlements []models.Settlement
	database.DB.Where("household_id = ?", householdID).Find(&settlements)

	settlementRecords := make([]ledger.SettlementRecord, 0, len(settlements))
	for _, s := range settlements {
		settlementRecords = append(settlementRecords, ledger.SettlementRecord{
			ID:          s.ID,
			HouseholdID: s.HouseholdID,
			From:        s.PaidBy,
			To:          s.PaidTo,
			Amount:      s.Amount,
			Date:        s.SettledAt,
		})
	}

	return expenseRecords, settlementRecords
}
