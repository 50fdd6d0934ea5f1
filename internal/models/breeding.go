package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// GestationDays is the farrowing interval counted from the last insemination.
const GestationDays = 114

// BreedingStatus tracks a breeding attempt.
type BreedingStatus string

const (
	BreedingStatusPending           BreedingStatus = "pending"
	BreedingStatusConfirmedPregnant BreedingStatus = "confirmed_pregnant"
	BreedingStatusCompleted         BreedingStatus = "completed"
	BreedingStatusFailed            BreedingStatus = "failed"
)

// BreedingMethod is an insemination method, e.g. natural or artificial.
type BreedingMethod struct {
	Base
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `json:"description"`
}

// BreedingRecord is one breeding cycle of a breeding animal.
type BreedingRecord struct {
	Base
	BreedingStockID    string          `gorm:"type:uuid;not null;index" json:"breeding_stock_id"`
	HeatDetectionDate  *datatypes.Date `json:"heat_detection_date,omitempty"`
	Insemination1Date  *datatypes.Date `gorm:"column:insemination_1_date" json:"insemination_1_date,omitempty"`
	Insemination2Date  *datatypes.Date `gorm:"column:insemination_2_date" json:"insemination_2_date,omitempty"`
	Insemination3Date  *datatypes.Date `gorm:"column:insemination_3_date" json:"insemination_3_date,omitempty"`
	BreedingMethodID   *string         `gorm:"type:uuid;index" json:"breeding_method_id,omitempty"`
	Cost               decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	ExpectedFarrowDate *datatypes.Date `json:"expected_farrow_date,omitempty"`
	ActualFarrowDate   *datatypes.Date `json:"actual_farrow_date,omitempty"`
	Status             BreedingStatus  `gorm:"size:20;not null;index" json:"status"`
	Note               string          `json:"note"`

	// Relationships
	BreedingStock  *BreedingStock  `gorm:"foreignKey:BreedingStockID" json:"breeding_stock,omitempty"`
	BreedingMethod *BreedingMethod `gorm:"foreignKey:BreedingMethodID" json:"breeding_method,omitempty"`
}

// LatestInsemination returns the most recent of the insemination dates.
func (r *BreedingRecord) LatestInsemination() *time.Time {
	var latest *time.Time
	for _, d := range []*datatypes.Date{r.Insemination1Date, r.Insemination2Date, r.Insemination3Date} {
		if d == nil {
			continue
		}
		t := time.Time(*d)
		if latest == nil || t.After(*latest) {
			latest = &t
		}
	}
	return latest
}

// ApplyStatusRules derives the farrow dates from the current status.
func (r *BreedingRecord) ApplyStatusRules(today time.Time) {
	switch r.Status {
	case BreedingStatusConfirmedPregnant:
		if latest := r.LatestInsemination(); latest != nil {
			expected := DateOf(latest.AddDate(0, 0, GestationDays))
			r.ExpectedFarrowDate = &expected
		}
	case BreedingStatusCompleted:
		if r.ActualFarrowDate == nil {
			actual := DateOf(today)
			r.ActualFarrowDate = &actual
		}
	}
}
