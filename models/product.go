package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Attribute is a selectable product attribute used to generate
// variants, e.g. {Name: "Szín", Values: ["Fekete", "Fehér"]}.
type Attribute struct {
	Name   string   `json:"name" binding:"required" example:"Szín"`
	Values []string `json:"values" binding:"required" example:"['Fekete', 'Fehér']"`
}

// Variant is one concrete combination of attribute values. Price
// overrides the product price when set.
type Variant struct {
	Name  string   `json:"name" example:"Fekete / 128 GB"`
	Combo []string `json:"combo" example:"['Fekete', '128 GB']"`
	SKU   string   `json:"sku,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Stock int      `json:"stock" example:"25"`
}

// Custom slice types so GORM can persist them as JSONB.
type (
	AttributeList []Attribute
	VariantList   []Variant
	TagsList      []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product statuses. Archived products stay queryable in the admin but
// are excluded from every storefront scan, aggregation included.
const (
	ProductStatusActive   = "Active"
	ProductStatusDraft    = "Draft"
	ProductStatusArchived = "Archived"
)

type Product struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string          `json:"name" gorm:"not null;index"`
	Description    string          `json:"description" gorm:"not null"`
	Price          float64         `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	ImageURL       string          `json:"image_url"`
	SubCategoryID  uuid.UUID       `json:"sub_category_id" gorm:"type:uuid;not null;index:idx_products_subcategory"`
	SubCategory    *Category       `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID;references:ID"`
	Status         string          `json:"status" gorm:"not null;check:status IN ('Active', 'Draft', 'Archived');index"`
	Tags           TagsList        `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Specifications specs.EntryList `json:"specifications" gorm:"type:jsonb;not null;default:'[]'"`
	Attributes     AttributeList   `json:"attributes" gorm:"type:jsonb;not null;default:'[]'"`
	Variants       VariantList     `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Views          int             `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name           string        `json:"name" binding:"required" example:"Nexu Phone X2"`
	Description    string        `json:"description" binding:"required"`
	Price          float64       `json:"price" binding:"required,min=0" example:"129990"`
	ImageURL       string        `json:"image_url"`
	SubCategoryID  uuid.UUID     `json:"sub_category_id" binding:"required"`
	Status         string        `json:"status" binding:"omitempty,oneof=Active Draft Archived" example:"Draft"`
	Tags           []string      `json:"tags"`
	Specifications []specs.Entry `json:"specifications"`
	Attributes     []Attribute   `json:"attributes" binding:"dive"`
	Variants       []Variant     `json:"variants" binding:"dive"`
}

type UpdateProductRequest struct {
	Name           *string        `json:"name"`
	Description    *string        `json:"description"`
	Price          *float64       `json:"price" binding:"omitempty,min=0"`
	ImageURL       *string        `json:"image_url"`
	SubCategoryID  *uuid.UUID     `json:"sub_category_id"`
	Status         *string        `json:"status" binding:"omitempty,oneof=Active Draft Archived"`
	Tags           *[]string      `json:"tags"`
	Specifications *[]specs.Entry `json:"specifications"`
	Attributes     *[]Attribute   `json:"attributes"`
	Variants       *[]Variant     `json:"variants"`
}

// GenerateVariantsRequest carries the attribute selection the variant
// drafts are expanded from. Regeneration discards prior variant-level
// edits; the admin UI asks for confirmation before calling this.
type GenerateVariantsRequest struct {
	Attributes []Attribute `json:"attributes" binding:"dive"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStatsResponseItem struct {
	TotalProducts    int     `json:"total_products"`
	ActiveProducts   int     `json:"active_products"`
	DraftProducts    int     `json:"draft_products"`
	ArchivedProducts int     `json:"archived_products"`
	PercentageActive float64 `json:"percentage_active"`
	AveragePrice     float64 `json:"average_price"`
	TotalStock       int     `json:"total_stock"`
	LowStockProducts int     `json:"low_stock_products"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (a *AttributeList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AttributeList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AttributeList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]Attribute{})
	}
	return json.Marshal(a)
}

func (v *VariantList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]Variant{})
	}
	return json.Marshal(v)
}

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}
