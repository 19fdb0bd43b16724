package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/services"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// POST /api/households/:id/settle
func CreateSettlement(c *gin.Context) {
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

	var req models.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	paidTo, err := uuid.Parse(req.PaidTo)
	if err != nil {
		utils.BadRequest(c, "Invalid paid_to user ID")
		return
	}

	if paidTo == userID {
		utils.BadRequest(c, "Cannot settle with yourself")
		return
	}

	if !isMember(householdID, paidTo) {
		utils.BadRequest(c, "Payee is not a member of this household")
		return
	}

	settlement := models.Settlement{
		HouseholdID: householdID,
		PaidBy:      userID,
		PaidTo:      paidTo,
		Amount:      req.Amount,
		Notes:       req.Notes,
		SettledAt:   time.Now(),
	}

	if err := database.DB.Create(&settlement).Error; err != nil {
		utils.InternalError(c, "Failed to create settlement")
		return
	}

	// Log activity
	var payer, payee models.User
	database.DB.First(&payer, userID)
	database.DB.First(&payee, paidTo)
	var household models.Household
	database.DB.First(&household, householdID)

	database.DB.Create(&models.Activity{
		HouseholdID: householdID,
		UserID:      userID,
		Type:        "settlement",
		ReferenceID: settlement.ID,
		Description: fmt.Sprintf("%s paid %s %.2f", payer.Name, payee.Name, req.Amount),
	})

	// Notify the payee
	go services.GetNotificationService().NotifySettlement(settlement, payer, payee, household)

	utils.SuccessResponse(c, http.StatusCreated, "Settlement recorded", settlement)
}

// GET /api/households/:id/settlements
func GetHouseholdSettlements(c *gin.Context) {
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

	var settlements []models.Settlement
	database.DB.Where("household_id = ?", householdID).
		Preload("Payer").Preload("Payee").
		Order("created_at DESC").
		Find(&settlements)

	utils.SuccessResponse(c, http.StatusOK, "", settlements)
}
