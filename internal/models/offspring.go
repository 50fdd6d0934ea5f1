package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Offspring is a piglet born to a breeding animal. CurrentWeight follows the
// latest weight record and falls back to InitialWeight.
type Offspring struct {
	Base
	Name             string          `gorm:"size:150;not null;uniqueIndex" json:"name"`
	BreedingStockID  string          `gorm:"type:uuid;not null;index" json:"breeding_stock_id"`
	BirthDate        datatypes.Date  `gorm:"not null;index" json:"birth_date"`
	InitialWeight    decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"initial_weight"`
	CurrentWeight    decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"current_weight"`
	Status           AnimalStatus    `gorm:"size:10;not null;index" json:"status"`
	BreedingMethodID *string         `gorm:"type:uuid" json:"breeding_method_id,omitempty"`

	// Relationships
	BreedingStock  *BreedingStock  `gorm:"foreignKey:BreedingStockID" json:"breeding_stock,omitempty"`
	BreedingMethod *BreedingMethod `gorm:"foreignKey:BreedingMethodID" json:"breeding_method,omitempty"`
}

// TableName keeps the table name singular.
func (Offspring) TableName() string {
	return "offspring"
}

// IsActive reports whether the animal can still receive records.
func (o *Offspring) IsActive() bool {
	return o.Status == AnimalStatusActive
}
