package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HouseholdID uuid.UUID `gorm:"type:uuid;index" json:"household_id"`
	CreatedBy   uuid.UUID `gorm:"type:uuid" json:"created_by"`
	Creator     User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Title       string    `gorm:"not null;size:150" json:"title"`
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type CreateEventRequest struct {
	Title    string `json:"title" binding:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	StartsAt string `json:"starts_at" binding:"required"` // RFC3339
}

type UpdateEventRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	StartsAt string `json:"starts_at"`
}
