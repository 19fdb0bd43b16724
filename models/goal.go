package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	HouseholdID  uuid.UUID  `gorm:"type:uuid;index" json:"household_id"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	Creator      User       `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Name         string     `gorm:"not null;size:150" json:"name"`
	TargetAmount float64    `gorm:"type:decimal(12,2);not null" json:"target_amount"`
	SavedAmount  float64    `gorm:"type:decimal(12,2);default:0" json:"saved_amount"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type GoalContribution struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID    uuid.UUID `gorm:"type:uuid;index" json:"goal_id"`
	UserID    uuid.UUID `gorm:"type:uuid" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (gc *GoalContribution) BeforeCreate(tx *gorm.DB) error {
	if gc.ID == uuid.Nil {
		gc.ID = uuid.New()
	}
	return nil
}

type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Deadline     string  `json:"deadline"` // YYYY-MM-DD
}

type ContributeGoalRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
