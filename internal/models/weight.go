package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeightTrend compares a weighing with the previous one of the same animal.
type WeightTrend string

const (
	WeightTrendIncreased WeightTrend = "increased"
	WeightTrendDecreased WeightTrend = "decreased"
	WeightTrendNoChange  WeightTrend = "no_change"
)

// WeightClass is the color band used on the weight board.
type WeightClass string

const (
	WeightClassBlue   WeightClass = "blue"
	WeightClassYellow WeightClass = "yellow"
	WeightClassPurple WeightClass = "purple"
	WeightClassGreen  WeightClass = "green"
)

var (
	blueLimit   = decimal.NewFromInt(12)
	yellowLimit = decimal.NewFromInt(25)
	purpleLimit = decimal.NewFromInt(60)
)

// WeightRecord is one weighing. Difference and Trend are recomputed for the
// whole series of the animal whenever any of its weighings change.
type WeightRecord struct {
	Base
	AnimalRef
	RecordedDate datatypes.Date  `gorm:"not null;index" json:"recorded_date"`
	Weight       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"weight"`
	Difference   decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"difference"`
	Trend        WeightTrend     `gorm:"size:10;not null" json:"trend"`
	Class        WeightClass     `gorm:"-" json:"weight_class"`
}

// ClassForWeight maps a weight to its color band.
func ClassForWeight(weight decimal.Decimal) WeightClass {
	switch {
	case weight.LessThan(blueLimit):
		return WeightClassBlue
	case weight.LessThanOrEqual(yellowLimit):
		return WeightClassYellow
	case weight.LessThanOrEqual(purpleLimit):
		return WeightClassPurple
	default:
		return WeightClassGreen
	}
}

// TrendBetween compares a weighing with the one before it.
func TrendBetween(previous, current decimal.Decimal) WeightTrend {
	switch current.Cmp(previous) {
	case 1:
		return WeightTrendIncreased
	case -1:
		return WeightTrendDecreased
	default:
		return WeightTrendNoChange
	}
}

// AfterFind fills in the weight class.
func (w *WeightRecord) AfterFind(tx *gorm.DB) error {
	w.Class = ClassForWeight(w.Weight)
	return nil
}
