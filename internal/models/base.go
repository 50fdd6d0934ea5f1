package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"farmledger/internal/uuid"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a time-ordered UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// DateOf truncates t to a calendar date at UTC midnight.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// DatePtr is DateOf for optional columns; the zero time maps to nil.
func DatePtr(t *time.Time) *datatypes.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := DateOf(*t)
	return &d
}

// DateKey formats a date column as YYYY-MM-DD.
func DateKey(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Room{},
		&BreedingMethod{},
		&BreedingStock{},
		&Offspring{},
		&BreedingRecord{},
		&FeedStock{},
		&FeedingRecord{},
		&HealthRecord{},
		&Vaccine{},
		&VaccinationRecord{},
		&WeightRecord{},
		&SoldAnimal{},
		&InactiveAnimal{},
		&IncomeRecord{},
		&ExpenseRecord{},
		&AuditLog{},
	}
}
