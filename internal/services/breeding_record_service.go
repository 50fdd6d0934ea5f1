package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// breedingRecordService handles breeding cycles of breeding stock.
type breedingRecordService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBreedingRecordService creates a new BreedingRecordServicer.
func NewBreedingRecordService(db *gorm.DB) BreedingRecordServicer {
	return &breedingRecordService{db: db, now: time.Now}
}

func (s *breedingRecordService) CreateBreedingRecord(input BreedingRecordInput) (*models.BreedingRecord, error) {
	if err := validateBreedingInput(&input); err != nil {
		return nil, err
	}

	record := &models.BreedingRecord{BreedingStockID: input.BreedingStockID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAnimal(tx, models.AnimalKindBreedingStock, input.BreedingStockID)
		if err != nil {
			return err
		}
		if a.Status != models.AnimalStatusActive {
			return apperrors.WithMessage(apperrors.ErrAnimalInactive, a.Name+" is not active")
		}
		if input.BreedingMethodID != nil {
			if _, err := findBreedingMethod(tx, *input.BreedingMethodID); err != nil {
				return err
			}
		}

		applyBreedingInput(record, input)
		record.ApplyStatusRules(s.now())

		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBreedingRecordByID(record.ID)
}

func (s *breedingRecordService) GetBreedingRecords(page pagination.PageRequest, breedingStockID *string, status *models.BreedingStatus) (*pagination.PageResponse[models.BreedingRecord], error) {
	query := s.db.Model(&models.BreedingRecord{})
	if breedingStockID != nil {
		query = query.Where("breeding_stock_id = ?", *breedingStockID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	result, err := pagination.Fetch[models.BreedingRecord](query.Preload("BreedingMethod"), page, "created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *breedingRecordService) GetBreedingRecordByID(recordID string) (*models.BreedingRecord, error) {
	var record models.BreedingRecord
	err := s.db.Preload("BreedingStock").Preload("BreedingMethod").Where("id = ?", recordID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// UpdateBreedingRecord replaces the editable fields. The breeding animal of
// a record cannot change.
func (s *breedingRecordService) UpdateBreedingRecord(recordID string, input BreedingRecordInput) (*models.BreedingRecord, error) {
	var record models.BreedingRecord
	if err := s.db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	input.BreedingStockID = record.BreedingStockID
	if err := validateBreedingInput(&input); err != nil {
		return nil, err
	}
	if input.BreedingMethodID != nil {
		if _, err := findBreedingMethod(s.db, *input.BreedingMethodID); err != nil {
			return nil, err
		}
	}

	applyBreedingInput(&record, input)
	record.ApplyStatusRules(s.now())

	if err := s.db.Model(&record).Select(
		"heat_detection_date", "insemination_1_date", "insemination_2_date", "insemination_3_date",
		"breeding_method_id", "cost", "expected_farrow_date", "actual_farrow_date", "status", "note",
	).Updates(&record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBreedingRecordByID(recordID)
}

func (s *breedingRecordService) DeleteBreedingRecord(recordID string) error {
	result := s.db.Where("id = ?", recordID).Delete(&models.BreedingRecord{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBreedingRecordNotFound
	}
	return nil
}

func validateBreedingInput(input *BreedingRecordInput) error {
	if input.BreedingStockID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "breeding stock is required")
	}
	if input.Cost.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "cost cannot be negative")
	}
	if input.Status == "" {
		input.Status = models.BreedingStatusPending
	}
	if input.Status == models.BreedingStatusConfirmedPregnant &&
		input.Insemination1Date == nil && input.Insemination2Date == nil && input.Insemination3Date == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "a confirmed pregnancy needs at least one insemination date")
	}
	return nil
}

func applyBreedingInput(record *models.BreedingRecord, input BreedingRecordInput) {
	record.HeatDetectionDate = models.DatePtr(input.HeatDetectionDate)
	record.Insemination1Date = models.DatePtr(input.Insemination1Date)
	record.Insemination2Date = models.DatePtr(input.Insemination2Date)
	record.Insemination3Date = models.DatePtr(input.Insemination3Date)
	record.BreedingMethodID = input.BreedingMethodID
	record.Cost = input.Cost
	record.ExpectedFarrowDate = models.DatePtr(input.ExpectedFarrowDate)
	record.ActualFarrowDate = models.DatePtr(input.ActualFarrowDate)
	record.Status = input.Status
	record.Note = input.Note
}
