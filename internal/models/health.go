package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// HealthStatus is the state of a treated condition.
type HealthStatus string

const (
	HealthStatusOngoing   HealthStatus = "ongoing"
	HealthStatusRecovered HealthStatus = "recovered"
	HealthStatusCritical  HealthStatus = "critical"
)

// HealthRecord logs a treatment given to one animal.
type HealthRecord struct {
	Base
	AnimalRef
	HealthIssue       string          `gorm:"size:200;not null" json:"health_issue"`
	TreatmentGiven    string          `gorm:"size:200" json:"treatment_given"`
	Dosage            string          `gorm:"size:100" json:"dosage"`
	TreatmentDate     datatypes.Date  `gorm:"not null;index" json:"treatment_date"`
	NextTreatmentDate *datatypes.Date `json:"next_treatment_date,omitempty"`
	Status            HealthStatus    `gorm:"size:15;not null" json:"status"`
	Cost              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Note              string          `json:"note"`
}
