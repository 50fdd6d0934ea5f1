package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeedType is the form of a feed.
type FeedType string

const (
	FeedTypeGrain      FeedType = "grain"
	FeedTypePellet     FeedType = "pellet"
	FeedTypeMash       FeedType = "mash"
	FeedTypeSupplement FeedType = "supplement"
)

// FeedUnit is the unit feed quantities are counted in.
type FeedUnit string

const (
	FeedUnitKg FeedUnit = "kg"
	FeedUnitLb FeedUnit = "lb"
)

// StockStatus flags whether a feed is running low.
type StockStatus string

const (
	StockStatusSufficient   StockStatus = "sufficient"
	StockStatusInsufficient StockStatus = "insufficient"
)

// LowStockPercent is the share of the baseline below which a feed is insufficient.
var LowStockPercent = decimal.NewFromInt(20)

var hundred = decimal.NewFromInt(100)

// ErrNegativeQuantity is returned by the save hook when a write would leave
// the stock below zero.
var ErrNegativeQuantity = errors.New("feed stock quantity cannot be negative")

// FeedStock is one inventory line of feed. InitialQuantity is the quantity at
// creation and never changes; BaselineQuantity is reset on every restock and
// is what sufficiency is measured against.
type FeedStock struct {
	Base
	Name             string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	FeedType         FeedType        `gorm:"size:20;not null" json:"feed_type"`
	Unit             FeedUnit        `gorm:"size:5;not null" json:"unit"`
	InitialQuantity  decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"initial_quantity"`
	BaselineQuantity decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"baseline_quantity"`
	StockQuantity    decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"stock_quantity"`
	UnitCost         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_cost"`
	TotalValue       decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_value"`
	Version          int64           `gorm:"not null;default:1" json:"version"`

	StockStatus      StockStatus     `gorm:"-" json:"stock_status"`
	RemainingPercent decimal.Decimal `gorm:"-" json:"remaining_percent"`
}

// Revalue sets TotalValue from the current quantity and unit cost.
func (f *FeedStock) Revalue() {
	f.TotalValue = f.StockQuantity.Mul(f.UnitCost).Round(2)
}

// Classify computes the read-side sufficiency fields.
func (f *FeedStock) Classify() {
	if f.BaselineQuantity.IsZero() {
		f.RemainingPercent = decimal.Zero
		f.StockStatus = StockStatusInsufficient
		return
	}
	f.RemainingPercent = f.StockQuantity.Mul(hundred).Div(f.BaselineQuantity).Round(2)
	// Compare unrounded: 19.9996% displays as 20 but is still low.
	if f.StockQuantity.Mul(hundred).LessThan(f.BaselineQuantity.Mul(LowStockPercent)) {
		f.StockStatus = StockStatusInsufficient
	} else {
		f.StockStatus = StockStatusSufficient
	}
}

// IsLow reports whether the stock is below the sufficiency threshold.
func (f *FeedStock) IsLow() bool {
	f.Classify()
	return f.StockStatus == StockStatusInsufficient
}

// BeforeSave rejects negative quantities and keeps TotalValue consistent.
func (f *FeedStock) BeforeSave(tx *gorm.DB) error {
	if f.StockQuantity.IsNegative() {
		return ErrNegativeQuantity
	}
	f.Revalue()
	return nil
}

// AfterFind fills in the computed sufficiency fields.
func (f *FeedStock) AfterFind(tx *gorm.DB) error {
	f.Classify()
	return nil
}

// FeedingRecord logs feed given to one animal. UnitCost and TotalCost are
// captured from the stock at the time of feeding.
type FeedingRecord struct {
	Base
	AnimalRef
	FeedStockID  string          `gorm:"type:uuid;not null;index" json:"feed_stock_id"`
	QuantityUsed decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity_used"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_cost"`
	TotalCost    decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_cost"`
	RecordedAt   time.Time       `gorm:"not null;index" json:"recorded_at"`

	// Relationships
	FeedStock *FeedStock `gorm:"foreignKey:FeedStockID" json:"feed_stock,omitempty"`
}
