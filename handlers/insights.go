package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/ledger"
	"github.com/nurlanmnn/roomate-sub001/services"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// GET /api/households/:id/insights
func GetHouseholdInsights(c *gin.Context) {
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

	expenses, _ := services.LoadLedgerRecords(householdID)
	result := ledger.CalculateInsights(expenses, time.Now())

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
