package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// GET /api/activity — global activity feed for current user
func GetActivity(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	// Get all households user is in
	var memberships []models.HouseholdMember
	database.DB.Where("user_id = ?", userID).Find(&memberships)

	var householdIDs []uuid.UUID
	for _, m := range memberships {
		householdIDs = append(householdIDs, m.HouseholdID)
	}

	var activities []models.Activity
	if len(householdIDs) > 0 {
		database.DB.Where("household_id IN ?", householdIDs).
			Preload("User").
			Order("created_at DESC").
			Offset(pagination.Offset()).
			Limit(pagination.Limit).
			Find(&activities)

		// Attach household names
		householdNames := make(map[uuid.UUID]string)
		var households []models.Household
		database.DB.Where("id IN ?", householdIDs).Find(&households)
		for _, h := range households {
			householdNames[h.ID] = h.Name
		}
		for i := range activities {
			activities[i].HouseholdName = householdNames[activities[i].HouseholdID]
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}

// GET /api/households/:id/activity — activity feed for a specific household
func GetHouseholdActivity(c *gin.Context) {
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

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	var activities []models.Activity
	database.DB.Where("household_id = ?", householdID).
		Preload("User").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&activities)

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}
