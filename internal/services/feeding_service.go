package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/metrics"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// feedingService records feed given to animals against the feed ledger.
type feedingService struct {
	db         *gorm.DB
	feedStocks FeedStockServicer
}

// NewFeedingService creates a new FeedingServicer.
func NewFeedingService(db *gorm.DB, feedStocks FeedStockServicer) FeedingServicer {
	return &feedingService{db: db, feedStocks: feedStocks}
}

// CreateFeedingRecord deducts the quantity from the feed stock and records
// the feeding at the stock's current unit cost. Both happen or neither does.
func (s *feedingService) CreateFeedingRecord(target models.AnimalRef, feedStockID string, quantity decimal.Decimal, recordedAt time.Time) (*models.FeedingRecord, error) {
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be positive")
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	var record *models.FeedingRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findActiveTarget(tx, target)
		if err != nil {
			return err
		}

		feed, err := s.feedStocks.Consume(tx, feedStockID, quantity)
		if err != nil {
			return err
		}

		record = &models.FeedingRecord{
			AnimalRef:    models.NewAnimalRef(a.Kind, a.ID),
			FeedStockID:  feed.ID,
			QuantityUsed: quantity,
			UnitCost:     feed.UnitCost,
			TotalCost:    quantity.Mul(feed.UnitCost).Round(2),
			RecordedAt:   recordedAt,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		record.FeedStock = feed
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			metrics.FeedRejected.Inc()
		}
		return nil, err
	}

	consumed, _ := quantity.Float64()
	metrics.FeedConsumed.WithLabelValues(string(record.FeedStock.FeedType), string(record.FeedStock.Unit)).Add(consumed)
	return record, nil
}

// GetFeedingRecords retrieves a paginated list of feeding records, newest first.
func (s *feedingService) GetFeedingRecords(page pagination.PageRequest, filter RecordFilter, feedStockID *string) (*pagination.PageResponse[models.FeedingRecord], error) {
	query := applyRecordFilter(s.db.Model(&models.FeedingRecord{}), filter, "recorded_at")
	if feedStockID != nil {
		query = query.Where("feed_stock_id = ?", *feedStockID)
	}

	result, err := pagination.Fetch[models.FeedingRecord](query.Preload("FeedStock"), page, "recorded_at DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *feedingService) GetFeedingRecordByID(recordID string) (*models.FeedingRecord, error) {
	var record models.FeedingRecord
	if err := s.db.Preload("FeedStock").Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedingRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// DeleteFeedingRecord removes the record and returns its quantity to the stock.
func (s *feedingService) DeleteFeedingRecord(recordID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record models.FeedingRecord
		if err := forUpdate(tx).Where("id = ?", recordID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFeedingRecordNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err := s.feedStocks.Release(tx, record.FeedStockID, record.QuantityUsed)
		return err
	})
}
