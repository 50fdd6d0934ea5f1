package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
)

// costService sums lifetime costs of animals from their records.
type costService struct{}

// NewCostCalculator creates a new CostCalculator.
func NewCostCalculator() CostCalculator {
	return &costService{}
}

// BreedingStockCost returns purchase + feeding + health + vaccination +
// breeding cost of a breeding animal.
func (s *costService) BreedingStockCost(db *gorm.DB, breedingStockID string) (*CostBreakdown, error) {
	var stock models.BreedingStock
	if err := db.Select("id", "purchase_cost").Where("id = ?", breedingStockID).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cost, err := s.recordCosts(db, models.AnimalKindBreedingStock, breedingStockID)
	if err != nil {
		return nil, err
	}

	breeding, err := sumDecimal(db.Model(&models.BreedingRecord{}).Where("breeding_stock_id = ?", breedingStockID), "cost")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cost.Purchase = stock.PurchaseCost
	cost.Breeding = breeding
	cost.Total = cost.Purchase.Add(cost.Feeding).Add(cost.Health).Add(cost.Vaccination).Add(cost.Breeding)
	return cost, nil
}

// OffspringCost returns feeding + health + vaccination cost of an offspring.
func (s *costService) OffspringCost(db *gorm.DB, offspringID string) (*CostBreakdown, error) {
	var count int64
	if err := db.Model(&models.Offspring{}).Where("id = ?", offspringID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrOffspringNotFound
	}

	cost, err := s.recordCosts(db, models.AnimalKindOffspring, offspringID)
	if err != nil {
		return nil, err
	}
	cost.Total = cost.Feeding.Add(cost.Health).Add(cost.Vaccination)
	return cost, nil
}

// AnimalCost dispatches on the animal kind.
func (s *costService) AnimalCost(db *gorm.DB, kind models.AnimalKind, id string) (*CostBreakdown, error) {
	switch kind {
	case models.AnimalKindBreedingStock:
		return s.BreedingStockCost(db, id)
	case models.AnimalKindOffspring:
		return s.OffspringCost(db, id)
	}
	return nil, apperrors.ErrInvalidTarget
}

// recordCosts sums the per-animal record tables. Missing records count as zero.
func (s *costService) recordCosts(db *gorm.DB, kind models.AnimalKind, id string) (*CostBreakdown, error) {
	column := models.TargetColumn(kind) + " = ?"

	feeding, err := sumDecimal(db.Model(&models.FeedingRecord{}).Where(column, id), "total_cost")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	health, err := sumDecimal(db.Model(&models.HealthRecord{}).Where(column, id), "cost")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	vaccination, err := sumDecimal(db.Model(&models.VaccinationRecord{}).Where(column, id), "cost")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &CostBreakdown{
		Purchase:    decimal.Zero,
		Feeding:     feeding,
		Health:      health,
		Vaccination: vaccination,
		Breeding:    decimal.Zero,
	}, nil
}
