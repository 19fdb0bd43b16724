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

// POST /api/households/:id/events
func CreateEvent(c *gin.Context) {
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

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		utils.BadRequest(c, "Invalid starts_at, expected RFC3339")
		return
	}

	event := models.Event{
		HouseholdID: householdID,
		CreatedBy:   userID,
		Title:       req.Title,
		Location:    req.Location,
		Notes:       req.Notes,
		StartsAt:    startsAt,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		utils.InternalError(c, "Failed to create event")
		return
	}

	var creator models.User
	database.DB.First(&creator, userID)
	database.DB.Create(&models.Activity{
		HouseholdID: householdID,
		UserID:      userID,
		Type:        "event_created",
		ReferenceID: event.ID,
		Description: fmt.Sprintf("%s planned \"%s\"", creator.Name, event.Title),
	})

	utils.SuccessResponse(c, http.StatusCreated, "Event created", event)
}

// GET /api/households/:id/events
func GetHouseholdEvents(c *gin.Context) {
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

	var events []models.Event
	database.DB.Where("household_id = ?", householdID).
		Preload("Creator").
		Order("starts_at ASC").
		Find(&events)

	utils.SuccessResponse(c, http.StatusOK, "", events)
}

// PUT /api/events/:id
func UpdateEvent(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event ID")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		utils.NotFound(c, "Event not found")
		return
	}

	if !isMember(event.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	if req.StartsAt != "" {
		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			utils.BadRequest(c, "Invalid starts_at, expected RFC3339")
			return
		}
		updates["starts_at"] = startsAt
	}

	database.DB.Model(&event).Updates(updates)
	database.DB.First(&event, eventID)

	utils.SuccessResponse(c, http.StatusOK, "Event updated", event)
}

// DELETE /api/events/:id
func DeleteEvent(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event ID")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		utils.NotFound(c, "Event not found")
		return
	}

	if !isMember(event.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	database.DB.Delete(&event)

	utils.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}
