package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// StockCategory is the age class of a breeding animal, derived from weight.
type StockCategory string

const (
	StockCategoryYoung StockCategory = "young"
	StockCategoryPrime StockCategory = "prime"
	StockCategoryOld   StockCategory = "old"
)

// StockOrigin records where a breeding animal came from.
type StockOrigin string

const (
	StockOriginPurchased        StockOrigin = "purchased"
	StockOriginBirthedElsewhere StockOrigin = "birthed_elsewhere"
	StockOriginBornInFarm       StockOrigin = "born_in_farm"
)

var (
	primeWeight = decimal.NewFromInt(150)
	oldWeight   = decimal.NewFromInt(250)
)

// BreedingStock is a sow kept for breeding. TotalOffspring and BirthCount
// are maintained by the aggregate recalculator.
type BreedingStock struct {
	Base
	Name                    string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	RoomID                  string          `gorm:"type:uuid;not null;index" json:"room_id"`
	Category                StockCategory   `gorm:"size:20;not null" json:"category"`
	Origin                  StockOrigin     `gorm:"size:20;not null" json:"origin"`
	Status                  AnimalStatus    `gorm:"size:10;not null;index" json:"status"`
	PurchaseCost            decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"purchase_cost"`
	RegisteredDate          datatypes.Date  `gorm:"not null" json:"registered_date"`
	PromotedFromOffspringID *string         `gorm:"type:uuid" json:"promoted_from_offspring_id,omitempty"`
	BreedingMethodID        *string         `gorm:"type:uuid" json:"breeding_method_id,omitempty"`
	TotalOffspring          int             `gorm:"not null;default:0" json:"total_offspring"`
	BirthCount              int             `gorm:"not null;default:0" json:"birth_count"`

	// Relationships
	Room           *Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	BreedingMethod *BreedingMethod `gorm:"foreignKey:BreedingMethodID" json:"breeding_method,omitempty"`
}

// TableName keeps the table name singular.
func (BreedingStock) TableName() string {
	return "breeding_stock"
}

// IsActive reports whether the animal can still receive records.
func (b *BreedingStock) IsActive() bool {
	return b.Status == AnimalStatusActive
}

// CategoryForWeight classifies a breeding animal by its latest weight.
func CategoryForWeight(weight decimal.Decimal) StockCategory {
	switch {
	case weight.LessThan(primeWeight):
		return StockCategoryYoung
	case weight.LessThan(oldWeight):
		return StockCategoryPrime
	default:
		return StockCategoryOld
	}
}
