package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// saleService handles animal sales.
type saleService struct {
	db    *gorm.DB
	costs CostCalculator
}

// NewSaleService creates a new SaleServicer.
func NewSaleService(db *gorm.DB, costs CostCalculator) SaleServicer {
	return &saleService{db: db, costs: costs}
}

// SellAnimal snapshots the animal's name and lifetime cost into a sale
// record and retires the animal, all in one transaction.
func (s *saleService) SellAnimal(kind models.AnimalKind, animalID string, soldPrice decimal.Decimal, dateSold time.Time) (*models.SoldAnimal, error) {
	if !soldPrice.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "sold price must be positive")
	}
	if dateSold.IsZero() {
		dateSold = time.Now()
	}

	var sale *models.SoldAnimal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ref := models.NewAnimalRef(kind, animalID)
		a, err := findActiveTarget(tx, ref)
		if err != nil {
			return err
		}

		cost, err := s.costs.AnimalCost(tx, kind, animalID)
		if err != nil {
			return err
		}

		sale = &models.SoldAnimal{
			AnimalKind:      kind,
			BreedingStockID: ref.BreedingStockID,
			OffspringID:     ref.OffspringID,
			AnimalName:      a.Name,
			SoldPrice:       soldPrice,
			TotalCost:       cost.Total,
			Profit:          soldPrice.Sub(cost.Total),
			DateSold:        models.DateOf(dateSold),
		}
		if err := tx.Create(sale).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return setAnimalStatus(tx, kind, animalID, models.AnimalStatusInactive)
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("animal sold",
		"kind", kind,
		"animal_id", animalID,
		"price", sale.SoldPrice.String(),
		"cost", sale.TotalCost.String(),
	)
	return sale, nil
}

// GetSales retrieves a paginated list of sales, most recent first.
func (s *saleService) GetSales(page pagination.PageRequest, filter SaleFilter) (*pagination.PageResponse[models.SoldAnimal], error) {
	query := s.db.Model(&models.SoldAnimal{})
	if filter.Kind != nil {
		query = query.Where("animal_kind = ?", *filter.Kind)
	}
	query = applyDateRange(query, "date_sold", filter.FromDate, filter.ToDate)

	result, err := pagination.Fetch[models.SoldAnimal](query, page, "date_sold DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *saleService) GetSaleByID(saleID string) (*models.SoldAnimal, error) {
	var sale models.SoldAnimal
	if err := s.db.Where("id = ?", saleID).First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &sale, nil
}
