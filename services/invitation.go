package services

import (
	"github.com/google/uuid"
	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/sirupsen/logrus"
)

// InviteToHousehold creates an invitation and sends the invite email.
// Already-registered users are added to the household directly.
func InviteToHousehold(householdID uuid.UUID, invitedBy uuid.UUID, email string, phone string) {
	// Check if invitation already exists
	var existing models.Invitation
	query := database.DB.Where("household_id = ? AND status = ?", householdID, "pending")
	if email != "" {
		query = query.Where("email = ?", email)
	} else if phone != "" {
		query = query.Where("phone = ?", phone)
	}

	if err := query.First(&existing).Error; err == nil {
		logrus.Warnf("⚠️  Invitation already exists for %s/%s in household %s", email, phone, householdID)
		return
	}

	// Check if user is already registered
	var existingUser models.User
	if email != "" {
		if err := database.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
			var existingMember models.HouseholdMember
			if err := database.DB.Where("household_id = ? AND user_id = ?", householdID, existingUser.ID).First(&existingMember).Error; err != nil {
				database.DB.Create(&models.HouseholdMember{
					HouseholdID: householdID,
					UserID:      existingUser.ID,
					Role:        "member",
				})
				logrus.Infof("✅ Added existing user %s to household %s", email, householdID)
			}
			return
		}
	}

	// Create invitation
	invitation := models.Invitation{
		HouseholdID: householdID,
		InvitedBy:   invitedBy,
		Email:       email,
		Phone:       phone,
		Status:      "pending",
	}

	if err := database.DB.Create(&invitation).Error; err != nil {
		logrus.Error("❌ Failed to create invitation: ", err)
		return
	}

	// Send notification
	var inviter models.User
	database.DB.First(&inviter, invitedBy)
	var household models.Household
	database.DB.First(&household, householdID)

	if email != "" {
		GetNotificationService().NotifyInvitation(email, inviter.Name, household.Name)
	}

	logrus.Infof("✅ Invitation sent to %s/%s for household %s", email, phone, householdID)
}
