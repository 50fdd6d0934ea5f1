package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// animalStatusService moves animals in and out of the active herd.
type animalStatusService struct {
	db *gorm.DB
}

// NewAnimalStatusService creates a new AnimalStatusServicer.
func NewAnimalStatusService(db *gorm.DB) AnimalStatusServicer {
	return &animalStatusService{db: db}
}

// MarkInactive retires an animal and logs the reason.
func (s *animalStatusService) MarkInactive(kind models.AnimalKind, animalID, reason string, date time.Time) (*models.InactiveAnimal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reason is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	var entry *models.InactiveAnimal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAnimal(tx, kind, animalID)
		if err != nil {
			return err
		}
		if a.Status != models.AnimalStatusActive {
			return apperrors.WithMessage(apperrors.ErrAnimalInactive, a.Name+" is already inactive")
		}

		if err := setAnimalStatus(tx, kind, animalID, models.AnimalStatusInactive); err != nil {
			return err
		}

		entry = &models.InactiveAnimal{
			AnimalKind:         kind,
			AnimalID:           a.ID,
			AnimalName:         a.Name,
			Reason:             reason,
			DateMarkedInactive: models.DateOf(date),
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Reactivate returns an animal to the active herd and clears its inactive log.
func (s *animalStatusService) Reactivate(kind models.AnimalKind, animalID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAnimal(tx, kind, animalID)
		if err != nil {
			return err
		}
		if a.Status == models.AnimalStatusActive {
			return apperrors.WithMessage(apperrors.ErrAnimalAlreadyActive, a.Name+" is already active")
		}

		if err := setAnimalStatus(tx, kind, animalID, models.AnimalStatusActive); err != nil {
			return err
		}
		if err := tx.Where("animal_kind = ? AND animal_id = ?", kind, animalID).Delete(&models.InactiveAnimal{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetInactiveAnimals lists the inactive log, most recent first.
func (s *animalStatusService) GetInactiveAnimals(page pagination.PageRequest, kind *models.AnimalKind) (*pagination.PageResponse[models.InactiveAnimal], error) {
	query := s.db.Model(&models.InactiveAnimal{})
	if kind != nil {
		query = query.Where("animal_kind = ?", *kind)
	}

	result, err := pagination.Fetch[models.InactiveAnimal](query, page, "date_marked_inactive DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
