package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/services"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// POST /api/households
func CreateHousehold(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	householdType := req.Type
	if householdType == "" {
		householdType = "apartment"
	}

	household := models.Household{
		Name:      req.Name,
		Type:      householdType,
		CreatedBy: userID,
	}

	if err := database.DB.Create(&household).Error; err != nil {
		utils.InternalError(c, "Failed to create household")
		return
	}

	// Add creator as admin member
	member := models.HouseholdMember{
		HouseholdID: household.ID,
		UserID:      userID,
		Role:        "admin",
	}
	database.DB.Create(&member)

	// Add other members if provided
	for _, memberInput := range req.Members {
		memberUUID, err := uuid.Parse(memberInput)
		if err != nil {
			// Might be an email, try to find user
			var user models.User
			if dbErr := database.DB.Where("email = ?", memberInput).First(&user).Error; dbErr == nil {
				memberUUID = user.ID
			} else {
				// Send invitation
				go services.InviteToHousehold(household.ID, userID, memberInput, "")
				continue
			}
		}

		if memberUUID != userID {
			database.DB.Create(&models.HouseholdMember{
				HouseholdID: household.ID,
				UserID:      memberUUID,
				Role:        "member",
			})
		}
	}

	// Log activity
	var creator models.User
	database.DB.First(&creator, userID)
	database.DB.Create(&models.Activity{
		HouseholdID: household.ID,
		UserID:      userID,
		Type:        "household_created",
		ReferenceID: household.ID,
		Description: fmt.Sprintf("%s created household \"%s\"", creator.Name, household.Name),
	})

	response := buildHouseholdResponse(household.ID)
	utils.SuccessResponse(c, http.StatusCreated, "Household created", response)
}

// GET /api/households
func GetHouseholds(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var memberships []models.HouseholdMember
	database.DB.Where("user_id = ?", userID).Find(&memberships)

	var householdIDs []uuid.UUID
	for _, m := range memberships {
		householdIDs = append(householdIDs, m.HouseholdID)
	}

	var households []models.Household
	if len(householdIDs) > 0 {
		database.DB.Where("id IN ?", householdIDs).Order("created_at DESC").Find(&households)
	}

	var responses []models.HouseholdResponse
	for _, h := range households {
		responses = append(responses, buildHouseholdResponse(h.ID))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/households/:id
func GetHousehold(c *gin.Context) {
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

	response := buildHouseholdResponse(householdID)
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// PUT /api/households/:id
func UpdateHousehold(c *gin.Context) {
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

	var req struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	database.DB.Model(&models.Household{}).Where("id = ?", householdID).Updates(updates)

	response := buildHouseholdResponse(householdID)
	utils.SuccessResponse(c, http.StatusOK, "Household updated", response)
}

// POST /api/households/:id/members
func AddMember(c *gin.Context) {
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

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var targetUser models.User
	found := false

	if req.UserID != "" {
		memberUUID, _ := uuid.Parse(req.UserID)
		if err := database.DB.First(&targetUser, memberUUID).Error; err == nil {
			found = true
		}
	}

	if !found && req.Email != "" {
		if err := database.DB.Where("email = ?", req.Email).First(&targetUser).Error; err == nil {
			found = true
		}
	}

	if !found && req.Phone != "" {
		if err := database.DB.Where("phone = ?", req.Phone).First(&targetUser).Error; err == nil {
			found = true
		}
	}

	if found {
		// Check if already a member
		var existing models.HouseholdMember
		if err := database.DB.Where("household_id = ? AND user_id = ?", householdID, targetUser.ID).First(&existing).Error; err == nil {
			utils.BadRequest(c, "User is already a member of this household")
			return
		}

		database.DB.Create(&models.HouseholdMember{
			HouseholdID: householdID,
			UserID:      targetUser.ID,
			Role:        "member",
		})

		// Log activity and notify
		var adder models.User
		database.DB.First(&adder, userID)
		var household models.Household
		database.DB.First(&household, householdID)

		database.DB.Create(&models.Activity{
			HouseholdID: householdID,
			UserID:      userID,
			Type:        "member_joined",
			Description: fmt.Sprintf("%s added %s to %s", adder.Name, targetUser.Name, household.Name),
		})

		go services.GetNotificationService().NotifyMemberAdded(household, adder, targetUser)

		utils.SuccessResponse(c, http.StatusOK, "Member added", targetUser.ToResponse())
	} else {
		// User not registered — send invitation
		go services.InviteToHousehold(householdID, userID, req.Email, req.Phone)
		utils.SuccessResponse(c, http.StatusOK, "Invitation sent", nil)
	}
}

// DELETE /api/households/:id/members/:uid
func RemoveMember(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	householdID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid household ID")
		return
	}

	memberUID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	// Only admin or self can remove
	var membership models.HouseholdMember
	database.DB.Where("household_id = ? AND user_id = ?", householdID, userID).First(&membership)
	if membership.Role != "admin" && userID != memberUID {
		utils.Unauthorized(c, "Only admins can remove other members")
		return
	}

	database.DB.Where("household_id = ? AND user_id = ?", householdID, memberUID).Delete(&models.HouseholdMember{})

	var removedUser models.User
	database.DB.First(&removedUser, memberUID)
	var household models.Household
	database.DB.First(&household, householdID)

	database.DB.Create(&models.Activity{
		HouseholdID: householdID,
		UserID:      userID,
		Type:        "member_left",
		Description: fmt.Sprintf("%s left %s", removedUser.Name, household.Name),
	})

	utils.SuccessResponse(c, http.StatusOK, "Member removed", nil)
}

// POST /api/households/:id/invite
func InviteToHouseholdHandler(c *gin.Context) {
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

	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.Email == "" && req.Phone == "" {
		utils.BadRequest(c, "Email or phone required")
		return
	}

	go services.InviteToHousehold(householdID, userID, req.Email, req.Phone)

	utils.SuccessResponse(c, http.StatusOK, "Invitation sent", nil)
}

// Helper: check household membership
func isMember(householdID, userID uuid.UUID) bool {
	var count int64
	database.DB.Model(&models.HouseholdMember{}).Where("household_id = ? AND user_id = ?", householdID, userID).Count(&count)
	return count > 0
}

// Helper: build full household response with members
func buildHouseholdResponse(householdID uuid.UUID) models.HouseholdResponse {
	var household models.Household
	database.DB.First(&household, householdID)

	var members []models.HouseholdMember
	database.DB.Where("household_id = ?", householdID).Find(&members)

	var memberResponses []models.HouseholdMemberResponse
	for _, m := range members {
		var user models.User
		database.DB.First(&user, m.UserID)
		memberResponses = append(memberResponses, models.HouseholdMemberResponse{
			UserID:    user.ID,
			Name:      user.Name,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt,
		})
	}

	return models.HouseholdResponse{
		ID:        household.ID,
		Name:      household.Name,
		Type:      household.Type,
		ImageURL:  household.ImageURL,
		CreatedBy: household.CreatedBy,
		Members:   memberResponses,
		CreatedAt: household.CreatedAt,
	}
}
