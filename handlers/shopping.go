package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/nurlanmnn/roomate-sub001/utils"
)

// POST /api/households/:id/shopping
func CreateShoppingItem(c *gin.Context) {
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

	var req models.CreateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := models.ShoppingItem{
		HouseholdID: householdID,
		AddedBy:     userID,
		Name:        req.Name,
		Quantity:    quantity,
		Notes:       req.Notes,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		utils.InternalError(c, "Failed to add shopping item")
		return
	}

	var adder models.User
	database.DB.First(&adder, userID)
	database.DB.Create(&models.Activity{
		HouseholdID: householdID,
		UserID:      userID,
		Type:        "shopping_item_added",
		ReferenceID: item.ID,
		Description: fmt.Sprintf("%s added \"%s\" to the shopping list", adder.Name, item.Name),
	})

	utils.SuccessResponse(c, http.StatusCreated, "Item added", item)
}

// GET /api/households/:id/shopping
func GetShoppingList(c *gin.Context) {
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

	var items []models.ShoppingItem
	database.DB.Where("household_id = ?", householdID).
		Preload("Adder").
		Order("purchased ASC, created_at DESC").
		Find(&items)

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// PUT /api/shopping/:id
func UpdateShoppingItem(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	var item models.ShoppingItem
	if err := database.DB.First(&item, itemID).Error; err != nil {
		utils.NotFound(c, "Item not found")
		return
	}

	if !isMember(item.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	var req models.UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Quantity > 0 {
		updates["quantity"] = req.Quantity
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	if req.Purchased != nil {
		updates["purchased"] = *req.Purchased
		if *req.Purchased {
			updates["purchased_by"] = userID
		} else {
			updates["purchased_by"] = nil
		}
	}

	database.DB.Model(&item).Updates(updates)
	database.DB.First(&item, itemID)

	utils.SuccessResponse(c, http.StatusOK, "Item updated", item)
}

// DELETE /api/shopping/:id
func DeleteShoppingItem(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	var item models.ShoppingItem
	if err := database.DB.First(&item, itemID).Error; err != nil {
		utils.NotFound(c, "Item not found")
		return
	}

	if !isMember(item.HouseholdID, userID) {
		utils.Unauthorized(c, "You are not a member of this household")
		return
	}

	database.DB.Delete(&item)

	utils.SuccessResponse(c, http.StatusOK, "Item removed", nil)
}
