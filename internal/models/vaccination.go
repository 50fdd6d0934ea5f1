package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// VaccinationStatus tracks whether a dose is current.
type VaccinationStatus string

const (
	VaccinationStatusVaccinated VaccinationStatus = "vaccinated"
	VaccinationStatusOverdue    VaccinationStatus = "overdue"
	VaccinationStatusDone       VaccinationStatus = "done"
)

// Vaccine is a catalog entry; DurationDays is the protection window of one dose.
type Vaccine struct {
	Base
	Name         string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description  string `json:"description"`
	DurationDays int    `gorm:"not null" json:"duration_days"`
}

// VaccinationRecord is one dose given to one animal.
type VaccinationRecord struct {
	Base
	AnimalRef
	VaccineID           string            `gorm:"type:uuid;not null;index" json:"vaccine_id"`
	VaccinationDate     datatypes.Date    `gorm:"not null;index" json:"vaccination_date"`
	NextVaccinationDate *datatypes.Date   `gorm:"index" json:"next_vaccination_date,omitempty"`
	Cost                decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"cost"`
	Status              VaccinationStatus `gorm:"size:15;not null;index" json:"status"`

	// Relationships
	Vaccine *Vaccine `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
}

// Schedule derives the next due date from the vaccine's duration and marks
// the dose overdue when that date has already passed.
func (r *VaccinationRecord) Schedule(durationDays int, today time.Time) {
	next := DateOf(time.Time(r.VaccinationDate).AddDate(0, 0, durationDays))
	r.NextVaccinationDate = &next
	if r.Status == VaccinationStatusDone {
		return
	}
	if time.Time(next).Before(time.Time(DateOf(today))) {
		r.Status = VaccinationStatusOverdue
	} else {
		r.Status = VaccinationStatusVaccinated
	}
}
