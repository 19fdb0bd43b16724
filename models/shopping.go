package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	HouseholdID uuid.UUID  `gorm:"type:uuid;index" json:"household_id"`
	AddedBy     uuid.UUID  `gorm:"type:uuid" json:"added_by"`
	Adder       User       `gorm:"foreignKey:AddedBy" json:"adder,omitempty"`
	Name        string     `gorm:"not null;size:100" json:"name"`
	Quantity    int        `gorm:"default:1" json:"quantity"`
	Notes       string     `json:"notes,omitempty"`
	Purchased   bool       `gorm:"default:false" json:"purchased"`
	PurchasedBy *uuid.UUID `gorm:"type:uuid" json:"purchased_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (si *ShoppingItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

type CreateShoppingItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type UpdateShoppingItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
	Purchased *bool  `json:"purchased"`
}
