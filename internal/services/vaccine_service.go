package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// vaccineService handles the vaccine catalog.
type vaccineService struct {
	db *gorm.DB
}

// NewVaccineService creates a new VaccineServicer.
func NewVaccineService(db *gorm.DB) VaccineServicer {
	return &vaccineService{db: db}
}

func (s *vaccineService) CreateVaccine(name, description string, durationDays int) (*models.Vaccine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vaccine name is required")
	}
	if durationDays < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duration must be at least one day")
	}

	taken, err := nameTaken(s.db, &models.Vaccine{}, name, "")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "vaccine "+name+" already exists")
	}

	vaccine := &models.Vaccine{Name: name, Description: description, DurationDays: durationDays}
	if err := s.db.Create(vaccine).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vaccine, nil
}

func (s *vaccineService) GetVaccines(page pagination.PageRequest) (*pagination.PageResponse[models.Vaccine], error) {
	result, err := pagination.Fetch[models.Vaccine](s.db.Model(&models.Vaccine{}), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *vaccineService) GetVaccineByID(vaccineID string) (*models.Vaccine, error) {
	return findVaccine(s.db, vaccineID)
}

// UpdateVaccine edits a catalog entry. Existing records keep the next dates
// they were given.
func (s *vaccineService) UpdateVaccine(vaccineID string, name string, description *string, durationDays *int) (*models.Vaccine, error) {
	vaccine, err := findVaccine(s.db, vaccineID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" && name != vaccine.Name {
		taken, err := nameTaken(s.db, &models.Vaccine{}, name, vaccine.ID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if taken {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "vaccine "+name+" already exists")
		}
		vaccine.Name = name
	}
	if description != nil {
		vaccine.Description = *description
	}
	if durationDays != nil {
		if *durationDays < 1 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duration must be at least one day")
		}
		vaccine.DurationDays = *durationDays
	}

	if err := s.db.Model(vaccine).Select("name", "description", "duration_days").Updates(vaccine).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vaccine, nil
}

func (s *vaccineService) DeleteVaccine(vaccineID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		vaccine, err := findVaccine(tx, vaccineID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.VaccinationRecord{}).Where("vaccine_id = ?", vaccineID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrVaccineInUse
		}

		if err := tx.Delete(vaccine).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func findVaccine(db *gorm.DB, vaccineID string) (*models.Vaccine, error) {
	var vaccine models.Vaccine
	if err := db.Where("id = ?", vaccineID).First(&vaccine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVaccineNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &vaccine, nil
}
