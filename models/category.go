package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a two-level tree: parents carry ParentID = nil, every
// product hangs off a subcategory.
type Category struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	ParentID    *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

type CategoryRequest struct {
	Name        string     `json:"name" binding:"required" example:"Telefonok"`
	Description string     `json:"description" binding:"required" example:"Okostelefonok és kiegészítők"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Active Inactive"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

// StorefrontCategory is the public tree node with product counts.
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}
