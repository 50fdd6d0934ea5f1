package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SoldAnimal is a sale snapshot. Name and TotalCost are copied at sale time
// and are not touched by later changes to the animal's records. The animal
// ids are cleared if the animal itself is deleted.
type SoldAnimal struct {
	Base
	AnimalKind      AnimalKind      `gorm:"size:20;not null;index" json:"animal_kind"`
	BreedingStockID *string         `gorm:"type:uuid;index" json:"breeding_stock_id,omitempty"`
	OffspringID     *string         `gorm:"type:uuid;index" json:"offspring_id,omitempty"`
	AnimalName      string          `gorm:"size:150;not null" json:"animal_name"`
	SoldPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"sold_price"`
	TotalCost       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_cost"`
	Profit          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"profit"`
	DateSold        datatypes.Date  `gorm:"not null;index" json:"date_sold"`
}

// InactiveAnimal logs why an animal was taken out of the active herd.
type InactiveAnimal struct {
	Base
	AnimalKind         AnimalKind     `gorm:"size:20;not null;index" json:"animal_kind"`
	AnimalID           string         `gorm:"type:uuid;not null;index" json:"animal_id"`
	AnimalName         string         `gorm:"size:150;not null" json:"animal_name"`
	Reason             string         `gorm:"size:200;not null" json:"reason"`
	DateMarkedInactive datatypes.Date `gorm:"not null" json:"date_marked_inactive"`
}
