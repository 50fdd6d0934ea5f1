package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// healthService handles health records.
type healthService struct {
	db *gorm.DB
}

// NewHealthService creates a new HealthServicer.
func NewHealthService(db *gorm.DB) HealthServicer {
	return &healthService{db: db}
}

func (s *healthService) CreateHealthRecord(input HealthRecordInput) (*models.HealthRecord, error) {
	if err := validateHealthInput(&input); err != nil {
		return nil, err
	}

	a, err := findActiveTarget(s.db, input.Target)
	if err != nil {
		return nil, err
	}

	record := &models.HealthRecord{AnimalRef: models.NewAnimalRef(a.Kind, a.ID)}
	applyHealthInput(record, input)

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *healthService) GetHealthRecords(page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.HealthRecord], error) {
	query := applyRecordFilter(s.db.Model(&models.HealthRecord{}), filter, "treatment_date")

	result, err := pagination.Fetch[models.HealthRecord](query, page, "treatment_date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *healthService) GetHealthRecordByID(recordID string) (*models.HealthRecord, error) {
	var record models.HealthRecord
	if err := s.db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHealthRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// UpdateHealthRecord replaces the editable fields. The target animal is fixed.
func (s *healthService) UpdateHealthRecord(recordID string, input HealthRecordInput) (*models.HealthRecord, error) {
	if err := validateHealthInput(&input); err != nil {
		return nil, err
	}

	record, err := s.GetHealthRecordByID(recordID)
	if err != nil {
		return nil, err
	}
	applyHealthInput(record, input)

	if err := s.db.Model(record).
		Select("health_issue", "treatment_given", "dosage", "treatment_date", "next_treatment_date", "status", "cost", "note").
		Updates(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *healthService) DeleteHealthRecord(recordID string) error {
	result := s.db.Where("id = ?", recordID).Delete(&models.HealthRecord{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHealthRecordNotFound
	}
	return nil
}

func validateHealthInput(input *HealthRecordInput) error {
	input.HealthIssue = strings.TrimSpace(input.HealthIssue)
	if input.HealthIssue == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "health issue is required")
	}
	if input.TreatmentDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "treatment date is required")
	}
	if input.Cost.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "cost cannot be negative")
	}
	if input.NextTreatmentDate != nil && input.NextTreatmentDate.Before(input.TreatmentDate) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "next treatment date cannot precede the treatment date")
	}
	if input.Status == "" {
		input.Status = models.HealthStatusOngoing
	}
	return nil
}

func applyHealthInput(record *models.HealthRecord, input HealthRecordInput) {
	record.HealthIssue = input.HealthIssue
	record.TreatmentGiven = input.TreatmentGiven
	record.Dosage = input.Dosage
	record.TreatmentDate = models.DateOf(input.TreatmentDate)
	record.NextTreatmentDate = models.DatePtr(input.NextTreatmentDate)
	record.Status = input.Status
	record.Cost = input.Cost
	record.Note = input.Note
}
