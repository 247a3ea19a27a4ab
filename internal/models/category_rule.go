package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEmptyNormDesc   = errors.New("normalized description is required")
	ErrUnknownCategory = errors.New("category id is not part of the system taxonomy")
)

// CategoryRule maps a normalized description to a previously resolved
// category. Rules are a global append-only cache shared across users;
// content is immutable once written.
type CategoryRule struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	NormDesc     string    `gorm:"type:text;not null;uniqueIndex:ux_category_rules_norm_desc" json:"norm_desc"`
	CategoryID   int       `gorm:"not null;default:0" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(255);not null;default:''" json:"category_name"`
	Note         string    `gorm:"type:text;not null;default:''" json:"note"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CategoryRule
func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	return r.Validate()
}

// Validate validates the rule fields
func (r *CategoryRule) Validate() error {
	if r.NormDesc == "" {
		return ErrEmptyNormDesc
	}
	if !IsValidCategoryID(r.CategoryID) {
		return ErrUnknownCategory
	}
	return nil
}

// TableName returns the table name for CategoryRule
func (r *CategoryRule) TableName() string {
	return "category_rules"
}
