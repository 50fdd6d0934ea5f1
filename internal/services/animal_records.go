package services

import (
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
)

// purgeAnimalRecords removes everything hanging off the given animals ahead
// of their deletion. Sale snapshots are kept with the animal reference
// cleared. Feed eaten by the removed feeding records stays consumed.
func purgeAnimalRecords(tx *gorm.DB, kind models.AnimalKind, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	column := models.TargetColumn(kind)

	for _, model := range []interface{}{
		&models.FeedingRecord{},
		&models.HealthRecord{},
		&models.VaccinationRecord{},
		&models.WeightRecord{},
	} {
		if err := tx.Where(column+" IN ?", ids).Delete(model).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if kind == models.AnimalKindBreedingStock {
		if err := tx.Where("breeding_stock_id IN ?", ids).Delete(&models.BreedingRecord{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	} else {
		// Breeding stock promoted from these offspring outlives them.
		if err := tx.Model(&models.BreedingStock{}).
			Where("promoted_from_offspring_id IN ?", ids).
			Update("promoted_from_offspring_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if err := tx.Where("animal_kind = ? AND animal_id IN ?", kind, ids).Delete(&models.InactiveAnimal{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tx.Model(&models.SoldAnimal{}).Where(column+" IN ?", ids).Update(column, nil).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
