package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/metrics"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// feedStockService keeps the feed inventory ledger. Every quantity change
// is a compare-and-swap on the version column.
type feedStockService struct {
	db *gorm.DB
}

// NewFeedStockService creates a new FeedStockServicer.
func NewFeedStockService(db *gorm.DB) FeedStockServicer {
	return &feedStockService{db: db}
}

// CreateFeedStock adds an inventory line. The starting quantity is kept as
// the immutable initial quantity and as the first sufficiency baseline.
func (s *feedStockService) CreateFeedStock(name string, feedType models.FeedType, unit models.FeedUnit, quantity, unitCost decimal.Decimal) (*models.FeedStock, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "feed name is required")
	}
	if quantity.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity cannot be negative")
	}
	if unitCost.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unit cost cannot be negative")
	}
	if unit == "" {
		unit = models.FeedUnitKg
	}

	taken, err := nameTaken(s.db, &models.FeedStock{}, name, "")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "feed "+name+" already exists")
	}

	feed := &models.FeedStock{
		Name:             name,
		FeedType:         feedType,
		Unit:             unit,
		InitialQuantity:  quantity,
		BaselineQuantity: quantity,
		StockQuantity:    quantity,
		UnitCost:         unitCost,
		Version:          1,
	}
	feed.Revalue()

	if err := s.db.Create(feed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	feed.Classify()
	return feed, nil
}

// GetFeedStocks retrieves a paginated list of feed stocks ordered by name.
func (s *feedStockService) GetFeedStocks(page pagination.PageRequest) (*pagination.PageResponse[models.FeedStock], error) {
	result, err := pagination.Fetch[models.FeedStock](s.db.Model(&models.FeedStock{}), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *feedStockService) GetFeedStockByID(feedStockID string) (*models.FeedStock, error) {
	return findFeedStock(s.db, feedStockID)
}

// UpdateFeedStock edits the descriptive fields and unit cost. Quantities only
// move through Restock, Consume and Release.
func (s *feedStockService) UpdateFeedStock(feedStockID string, name string, feedType *models.FeedType, unit *models.FeedUnit, unitCost *decimal.Decimal) (*models.FeedStock, error) {
	var feed *models.FeedStock
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if feed, err = lockFeedStock(tx, feedStockID); err != nil {
			return err
		}

		if name = strings.TrimSpace(name); name != "" && name != feed.Name {
			taken, err := nameTaken(tx, &models.FeedStock{}, name, feed.ID)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if taken {
				return apperrors.WithMessage(apperrors.ErrDuplicateName, "feed "+name+" already exists")
			}
			feed.Name = name
		}
		if feedType != nil {
			feed.FeedType = *feedType
		}
		if unit != nil {
			feed.Unit = *unit
		}
		if unitCost != nil {
			if unitCost.IsNegative() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unit cost cannot be negative")
			}
			feed.UnitCost = *unitCost
		}

		return saveFeedStock(tx, feed, "name", "feed_type", "unit", "unit_cost")
	})
	if err != nil {
		return nil, err
	}

	return feed, nil
}

// Restock adds quantity, optionally reprices, and resets the sufficiency
// baseline to the new quantity.
func (s *feedStockService) Restock(feedStockID string, quantity decimal.Decimal, unitCost *decimal.Decimal) (*models.FeedStock, error) {
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "restock quantity must be positive")
	}

	var feed *models.FeedStock
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if feed, err = lockFeedStock(tx, feedStockID); err != nil {
			return err
		}

		feed.StockQuantity = feed.StockQuantity.Add(quantity)
		feed.BaselineQuantity = feed.StockQuantity
		if unitCost != nil {
			if unitCost.IsNegative() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unit cost cannot be negative")
			}
			feed.UnitCost = *unitCost
		}

		return saveFeedStock(tx, feed, "stock_quantity", "baseline_quantity", "unit_cost")
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("feed restocked", "feed_stock_id", feedStockID, "quantity", quantity.String(), "stock", feed.StockQuantity.String())
	return feed, nil
}

// DeleteFeedStock deletes a feed no feeding record refers to.
func (s *feedStockService) DeleteFeedStock(feedStockID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		feed, err := lockFeedStock(tx, feedStockID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.FeedingRecord{}).Where("feed_stock_id = ?", feedStockID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrFeedStockInUse
		}

		if err := tx.Delete(feed).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetLowStock returns every feed below the sufficiency threshold and
// publishes the count as a gauge.
func (s *feedStockService) GetLowStock() ([]models.FeedStock, error) {
	var feeds []models.FeedStock
	if err := s.db.Order("name ASC").Find(&feeds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	low := make([]models.FeedStock, 0)
	for i := range feeds {
		if feeds[i].IsLow() {
			low = append(low, feeds[i])
		}
	}

	metrics.LowStockFeeds.Set(float64(len(low)))
	return low, nil
}

// Consume deducts quantity inside the caller's transaction. A request larger
// than the current stock is rejected and leaves the stock untouched. Metrics
// are left to the caller, which knows whether the transaction committed.
func (s *feedStockService) Consume(tx *gorm.DB, feedStockID string, quantity decimal.Decimal) (*models.FeedStock, error) {
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be positive")
	}

	feed, err := lockFeedStock(tx, feedStockID)
	if err != nil {
		return nil, err
	}

	if quantity.GreaterThan(feed.StockQuantity) {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientStock,
			"only "+feed.StockQuantity.String()+" "+string(feed.Unit)+" of "+feed.Name+" left")
	}

	feed.StockQuantity = feed.StockQuantity.Sub(quantity)
	if err := saveFeedStock(tx, feed, "stock_quantity"); err != nil {
		return nil, err
	}

	return feed, nil
}

// Release returns quantity to the stock inside the caller's transaction.
func (s *feedStockService) Release(tx *gorm.DB, feedStockID string, quantity decimal.Decimal) (*models.FeedStock, error) {
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be positive")
	}

	feed, err := lockFeedStock(tx, feedStockID)
	if err != nil {
		return nil, err
	}

	feed.StockQuantity = feed.StockQuantity.Add(quantity)
	if err := saveFeedStock(tx, feed, "stock_quantity"); err != nil {
		return nil, err
	}
	return feed, nil
}

func findFeedStock(db *gorm.DB, feedStockID string) (*models.FeedStock, error) {
	var feed models.FeedStock
	if err := db.Where("id = ?", feedStockID).First(&feed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &feed, nil
}

func lockFeedStock(tx *gorm.DB, feedStockID string) (*models.FeedStock, error) {
	return findFeedStock(forUpdate(tx), feedStockID)
}

// saveFeedStock writes the given columns plus total value and version,
// provided nobody bumped the version since the row was read.
func saveFeedStock(tx *gorm.DB, feed *models.FeedStock, columns ...string) error {
	previous := feed.Version
	feed.Version++
	feed.Revalue()

	columns = append(columns, "total_value", "version")
	result := tx.Model(feed).Where("version = ?", previous).Select(columns).Updates(feed)
	if result.Error != nil {
		feed.Version = previous
		if errors.Is(result.Error, models.ErrNegativeQuantity) {
			return apperrors.ErrNegativeStock
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		feed.Version = previous
		return apperrors.ErrConcurrentUpdate
	}

	feed.Classify()
	return nil
}
