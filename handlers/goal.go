package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// POST /api/households/:id/goals
func CreateGoal(c *gin.Context) {
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

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	goal := models.Goal{
		HouseholdID:  householdID,
		CreatedBy:    userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			utils.BadRequest(c, "Invalid deadline, expected YYYY-MM-DD")
			return
		}
		goal.Deadline = &deadline
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		utils.InternalError(c, "Failed to create goal")
		return
	}

	var creator models.User
	database.DB.First(&creator, userID)
	database.DB.Create(&models.Activity{
		HouseholdID: householdID,
		UserID:      userID,
		Type:        "goal_created",
		ReferenceID: goal.ID,
		Description: fmt.Sprintf("%s created goal \"%s\" (%.2f)", creator.Name, goal.Name, goal.TargetAmount),
	})

	utils.SuccessResponse(c, http.StatusCreated, "Goal created", goal)
}

// GET /api/households/:id/goals
func GetHouseholdGoals(c *gin.Context) {
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

	var goals []models.Goal
	database.DB.Where("household_id = ?", householdID).
		Order("created_at DESC").
		Find(&goals)

	utils.SuccessResponse(c, http.StatusOK, "", goals)
}

// POST /api/goals/:id/contribute
func ContributeToGoal(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid goal ID")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, goalID).Error; err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}

	if !isMember(goal.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	var req models.ContributeGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	contribution := models.GoalContribution{
		GoalID: goalID,
		UserID: userID,
		Amount: req.Amount,
	}
	database.DB.Create(&contribution)

	database.DB.Model(&goal).Update("saved_amount", utils.RoundToTwo(goal.SavedAmount+req.Amount))
	database.DB.First(&goal, goalID)

	var contributor models.User
	database.DB.First(&contributor, userID)
	database.DB.Create(&models.Activity{
		HouseholdID: goal.HouseholdID,
		UserID:      userID,
		Type:        "goal_contribution",
		ReferenceID: goal.ID,
		Description: fmt.Sprintf("%s put %.2f toward \"%s\"", contributor.Name, req.Amount, goal.Name),
	})

	utils.SuccessResponse(c, http.StatusOK, "Contribution recorded", goal)
}

// DELETE /api/goals/:id
func DeleteGoal(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid goal ID")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, goalID).Error; err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}

	if !isMember(goal.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	database.DB.Where("goal_id = ?", goalID).Delete(&models.GoalContribution{})
	database.DB.Delete(&goal)

	utils.SuccessResponse(c, http.StatusOK, "Goal deleted", nil)
}
