package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Household struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string            `gorm:"not null;size:100" json:"name"`
	Type      string            `gorm:"default:apartment;size:20" json:"type"` // apartment, house, dorm, other
	ImageURL  string            `json:"image_url,omitempty"`
	CreatedBy uuid.UUID         `gorm:"type:uuid" json:"created_by"`
	Creator   User              `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Members   []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (h *Household) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type HouseholdMember struct {
	HouseholdID uuid.UUID `gorm:"type:uuid;primaryKey" json:"household_id"`
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role        string    `gorm:"default:member;size:20" json:"role"` // admin, member
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// Request structs
type CreateHouseholdRequest struct {
	Name    string   `json:"name" binding:"required"`
	Type    string   `json:"type"`
	Members []string `json:"members"` // list of user IDs or emails
}

type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Response structs
type HouseholdResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	Type      string                    `json:"type"`
	ImageURL  string                    `json:"image_url,omitempty"`
	CreatedBy uuid.UUID                 `json:"created_by"`
	Members   []HouseholdMemberResponse `json:"members"`
	CreatedAt time.Time                 `json:"created_at"`
}

type HouseholdMemberResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}
