package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// weightService handles weight records and the series derived from them.
type weightService struct {
	db *gorm.DB
}

// NewWeightService creates a new WeightServicer.
func NewWeightService(db *gorm.DB) WeightServicer {
	return &weightService{db: db}
}

func (s *weightService) CreateWeightRecord(target models.AnimalRef, recordedDate time.Time, weight decimal.Decimal) (*models.WeightRecord, error) {
	if !weight.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "weight must be positive")
	}
	if recordedDate.IsZero() {
		recordedDate = time.Now()
	}

	var record *models.WeightRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findActiveTarget(tx, target)
		if err != nil {
			return err
		}

		record = &models.WeightRecord{
			AnimalRef:    models.NewAnimalRef(a.Kind, a.ID),
			RecordedDate: models.DateOf(recordedDate),
			Weight:       weight,
			Trend:        models.WeightTrendNoChange,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return resequenceWeights(tx, record.AnimalRef)
	})
	if err != nil {
		return nil, err
	}

	return s.GetWeightRecordByID(record.ID)
}

func (s *weightService) GetWeightRecords(page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.WeightRecord], error) {
	query := applyRecordFilter(s.db.Model(&models.WeightRecord{}), filter, "recorded_date")

	result, err := pagination.Fetch[models.WeightRecord](query, page, "recorded_date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *weightService) GetWeightRecordByID(recordID string) (*models.WeightRecord, error) {
	return findWeightRecord(s.db, recordID)
}

// UpdateWeightRecord edits the date or weight. The target stays fixed.
func (s *weightService) UpdateWeightRecord(recordID string, recordedDate *time.Time, weight *decimal.Decimal) (*models.WeightRecord, error) {
	if weight != nil && !weight.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "weight must be positive")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		record, err := findWeightRecord(tx, recordID)
		if err != nil {
			return err
		}

		if recordedDate != nil && !recordedDate.IsZero() {
			record.RecordedDate = models.DateOf(*recordedDate)
		}
		if weight != nil {
			record.Weight = *weight
		}
		if err := tx.Model(record).Select("recorded_date", "weight").Updates(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return resequenceWeights(tx, record.AnimalRef)
	})
	if err != nil {
		return nil, err
	}

	return s.GetWeightRecordByID(recordID)
}

func (s *weightService) DeleteWeightRecord(recordID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		record, err := findWeightRecord(tx, recordID)
		if err != nil {
			return err
		}
		if err := tx.Delete(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return resequenceWeights(tx, record.AnimalRef)
	})
}

func findWeightRecord(db *gorm.DB, recordID string) (*models.WeightRecord, error) {
	var record models.WeightRecord
	if err := db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeightRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// resequenceWeights recomputes difference and trend across the whole series
// of one animal, then pushes the latest weight onto the animal itself.
func resequenceWeights(tx *gorm.DB, ref models.AnimalRef) error {
	var series []models.WeightRecord
	if err := tx.Where(ref.Column()+" = ?", ref.TargetID()).
		Order("recorded_date ASC, created_at ASC").
		Find(&series).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range series {
		difference := decimal.Zero
		trend := models.WeightTrendNoChange
		if i > 0 {
			difference = series[i].Weight.Sub(series[i-1].Weight)
			trend = models.TrendBetween(series[i-1].Weight, series[i].Weight)
		}
		if series[i].Difference.Equal(difference) && series[i].Trend == trend {
			continue
		}
		if err := tx.Model(&series[i]).
			UpdateColumns(map[string]interface{}{"difference": difference, "trend": trend}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var latest *decimal.Decimal
	if len(series) > 0 {
		latest = &series[len(series)-1].Weight
	}

	switch ref.TargetKind {
	case models.AnimalKindOffspring:
		var offspring models.Offspring
		if err := tx.Select("id", "initial_weight").Where("id = ?", ref.TargetID()).First(&offspring).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		current := offspring.InitialWeight
		if latest != nil {
			current = *latest
		}
		if err := tx.Model(&offspring).Update("current_weight", current).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case models.AnimalKindBreedingStock:
		if latest == nil {
			return nil
		}
		if err := tx.Model(&models.BreedingStock{}).Where("id = ?", ref.TargetID()).
			Update("category", models.CategoryForWeight(*latest)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
