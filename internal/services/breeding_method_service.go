package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// breedingMethodService handles the insemination method catalog.
type breedingMethodService struct {
	db *gorm.DB
}

// NewBreedingMethodService creates a new BreedingMethodServicer.
func NewBreedingMethodService(db *gorm.DB) BreedingMethodServicer {
	return &breedingMethodService{db: db}
}

func (s *breedingMethodService) CreateBreedingMethod(name, description string) (*models.BreedingMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "breeding method name is required")
	}

	taken, err := nameTaken(s.db, &models.BreedingMethod{}, name, "")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "breeding method "+name+" already exists")
	}

	method := &models.BreedingMethod{Name: name, Description: description}
	if err := s.db.Create(method).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return method, nil
}

func (s *breedingMethodService) GetBreedingMethods(page pagination.PageRequest) (*pagination.PageResponse[models.BreedingMethod], error) {
	result, err := pagination.Fetch[models.BreedingMethod](s.db.Model(&models.BreedingMethod{}), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *breedingMethodService) GetBreedingMethodByID(methodID string) (*models.BreedingMethod, error) {
	return findBreedingMethod(s.db, methodID)
}

func (s *breedingMethodService) UpdateBreedingMethod(methodID string, name string, description *string) (*models.BreedingMethod, error) {
	method, err := findBreedingMethod(s.db, methodID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" && name != method.Name {
		taken, err := nameTaken(s.db, &models.BreedingMethod{}, name, method.ID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if taken {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "breeding method "+name+" already exists")
		}
		method.Name = name
	}
	if description != nil {
		method.Description = *description
	}

	if err := s.db.Model(method).Select("name", "description").Updates(method).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return method, nil
}

// DeleteBreedingMethod deletes a method no animal or breeding record refers to.
func (s *breedingMethodService) DeleteBreedingMethod(methodID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		method, err := findBreedingMethod(tx, methodID)
		if err != nil {
			return err
		}

		for _, model := range []interface{}{&models.BreedingRecord{}, &models.BreedingStock{}, &models.Offspring{}} {
			var count int64
			if err := tx.Model(model).Where("breeding_method_id = ?", methodID).Count(&count).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				return apperrors.ErrBreedingMethodInUse
			}
		}

		if err := tx.Delete(method).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// findBreedingMethod loads a method or returns ErrBreedingMethodNotFound.
func findBreedingMethod(db *gorm.DB, methodID string) (*models.BreedingMethod, error) {
	var method models.BreedingMethod
	if err := db.Where("id = ?", methodID).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingMethodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &method, nil
}
