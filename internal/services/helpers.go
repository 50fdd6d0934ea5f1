package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
)

// animal is the common view of breeding stock and offspring that per-animal
// records need.
type animal struct {
	Kind   models.AnimalKind
	ID     string
	Name   string
	Status models.AnimalStatus
}

// findAnimal loads the id, name and status of an animal of either kind.
func findAnimal(db *gorm.DB, kind models.AnimalKind, id string) (*animal, error) {
	switch kind {
	case models.AnimalKindBreedingStock:
		var stock models.BreedingStock
		if err := db.Select("id", "name", "status").Where("id = ?", id).First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBreedingStockNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &animal{Kind: kind, ID: stock.ID, Name: stock.Name, Status: stock.Status}, nil
	case models.AnimalKindOffspring:
		var offspring models.Offspring
		if err := db.Select("id", "name", "status").Where("id = ?", id).First(&offspring).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOffspringNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &animal{Kind: kind, ID: offspring.ID, Name: offspring.Name, Status: offspring.Status}, nil
	}
	return nil, apperrors.ErrInvalidTarget
}

// findActiveTarget validates a record target and requires the animal to be active.
func findActiveTarget(db *gorm.DB, target models.AnimalRef) (*animal, error) {
	if !target.Valid() {
		return nil, apperrors.ErrInvalidTarget
	}
	a, err := findAnimal(db, target.TargetKind, target.TargetID())
	if err != nil {
		return nil, err
	}
	if a.Status != models.AnimalStatusActive {
		return nil, apperrors.WithMessage(apperrors.ErrAnimalInactive, a.Name+" is not active")
	}
	return a, nil
}

// setAnimalStatus flips the lifecycle status of an animal.
func setAnimalStatus(tx *gorm.DB, kind models.AnimalKind, id string, status models.AnimalStatus) error {
	var model interface{} = &models.BreedingStock{}
	if kind == models.AnimalKindOffspring {
		model = &models.Offspring{}
	}
	if err := tx.Model(model).Where("id = ?", id).Update("status", status).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyRecordFilter narrows a per-animal record query. dateColumn is the
// column the date range applies to.
func applyRecordFilter(query *gorm.DB, filter RecordFilter, dateColumn string) *gorm.DB {
	if filter.Kind != nil {
		query = query.Where("target_kind = ?", *filter.Kind)
		if filter.AnimalID != nil {
			query = query.Where(models.TargetColumn(*filter.Kind)+" = ?", *filter.AnimalID)
		}
	} else if filter.AnimalID != nil {
		query = query.Where("breeding_stock_id = ? OR offspring_id = ?", *filter.AnimalID, *filter.AnimalID)
	}
	return applyDateRange(query, dateColumn, filter.FromDate, filter.ToDate)
}

// applyDateRange restricts column to the inclusive [from, to] calendar range.
func applyDateRange(query *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", time.Time(models.DateOf(*from)))
	}
	if to != nil {
		query = query.Where(column+" < ?", time.Time(models.DateOf(to.AddDate(0, 0, 1))))
	}
	return query
}

// sumDecimal plucks a numeric column and sums it exactly. SQL SUM over
// NUMERIC is exact on PostgreSQL but goes through floats on SQLite.
func sumDecimal(query *gorm.DB, column string) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := query.Pluck(column, &values).Error; err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, values...), nil
}

// forUpdate row-locks the selected rows on databases that support it.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// nameTaken reports whether another row of model already uses name.
func nameTaken(db *gorm.DB, model interface{}, name, excludeID string) (bool, error) {
	var count int64
	query := db.Model(model).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func today() time.Time {
	return time.Time(models.DateOf(time.Now()))
}
