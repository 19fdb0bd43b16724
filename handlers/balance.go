package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/ledger"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/services"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// GET /api/households/:id/balances
func GetHouseholdBalances(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	householdID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid household ID")
		return
	}

	if !isMember(householdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	var household models.Household
	database.DB.First(&household, householdID)

	expenses, settlements := services.LoadLedgerRecords(householdID)
	pairwise := ledger.ComputeBalances(expenses, settlements)
	balances := enrichBalances(pairwise, expenses)

	// Calculate total spent
	var totalSpent float64
	database.DB.Model(&models.Expense{}).Where("household_id = ?", householdID).Select("COALESCE(SUM(amount), 0)").Scan(&totalSpent)

	summary := models.HouseholdBalanceSummary{
		HouseholdID:   householdID,
		HouseholdName: household.Name,
		Balances:      balances,
		TotalSpent:    totalSpent,
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// GET /api/balances — overall balances across all households for current user
func GetOverallBalances(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	// Get all households the user is part of
	var memberships []models.HouseholdMember
	database.DB.Where("user_id = ?", userID).Find(&memberships)

	// Aggregate balances across all households
	friendBalances := make(map[uuid.UUID]float64)
	var friendOrder []uuid.UUID

	for _, m := range memberships {
		expenses, settlements := services.LoadLedgerRecords(m.HouseholdID)

		for _, b := range ledger.ComputeBalances(expenses, settlements) {
			var friendID uuid.UUID
			var delta float64
			if b.From == userID {
				// I owe this person
				friendID, delta = b.To, -b.Amount
			} else if b.To == userID {
				// This person owes me
				friendID, delta = b.From, b.Amount
			} else {
				continue
			}
			if _, ok := friendBalances[friendID]; !ok {
				friendOrder = append(friendOrder, friendID)
			}
			friendBalances[friendID] += delta
		}
	}

	var totalOwed, totalOwing float64
	var friends []models.FriendBalance

	for _, friendID := range friendOrder {
		amount := friendBalances[friendID]
		if utils.RoundToTwo(amount) == 0 {
			continue
		}

		var user models.User
		database.DB.First(&user, friendID)

		friends = append(friends, models.FriendBalance{
			UserID:    friendID,
			Name:      user.Name,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
			Amount:    utils.RoundToTwo(amount),
			Currency:  user.Currency,
		})

		if amount > 0 {
			totalOwed += amount
		} else {
			totalOwing += -amount
		}
	}

	summary := models.OverallBalanceSummary{
		TotalOwed:  utils.RoundToTwo(totalOwed),
		TotalOwing: utils.RoundToTwo(totalOwing),
		Friends:    friends,
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// enrichBalances attaches member names and the sinceDate of each pair.
func enrichBalances(pairwise []ledger.PairwiseBalance, expenses []ledger.ExpenseRecord) []models.Balance {
	var balances []models.Balance
	for _, b := range pairwise {
		var fromUser, toUser models.User
		database.DB.First(&fromUser, b.From)
		database.DB.First(&toUser, b.To)

		balances = append(balances, models.Balance{
			From:      b.From,
			FromName:  fromUser.Name,
			To:        b.To,
			ToName:    toUser.Name,
			Amount:    utils.RoundToTwo(b.Amount),
			Currency:  toUser.Currency,
			SinceDate: balanceSinceDate(b, expenses),
		})
	}
	return balances
}

// balanceSinceDate scans for the oldest expense where the debtor held
// a share and the creditor paid. It ignores settlements that partially
// reduced the debt along the way, so the date is a best-effort origin
// rather than an exact one.
func balanceSinceDate(b ledger.PairwiseBalance, expenses []ledger.ExpenseRecord) *time.Time {
	var since *time.Time
	for _, e := range expenses {
		if e.PaidBy != b.To {
			continue
		}
		for _, s := range e.Shares {
			if s.UserID != b.From || s.Amount <= 0 {
				continue
			}
			at := e.Date
			if e.CreatedAt.Before(at) {
				at = e.CreatedAt
			}
			if since == nil || at.Before(*since) {
				since = &at
			}
			break
		}
	}
	return since
}
