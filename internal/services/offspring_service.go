package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// offspringService handles offspring business logic.
type offspringService struct {
	db         *gorm.DB
	aggregates AggregateRecalculator
	costs      CostCalculator
}

// NewOffspringService creates a new OffspringServicer.
func NewOffspringService(db *gorm.DB, aggregates AggregateRecalculator, costs CostCalculator) OffspringServicer {
	return &offspringService{db: db, aggregates: aggregates, costs: costs}
}

// CreateOffspring records a birth. The parent's offspring counts are
// recounted in the same transaction.
func (s *offspringService) CreateOffspring(breedingStockID string, birthDate time.Time, initialWeight decimal.Decimal, breedingMethodID *string) (*models.Offspring, error) {
	if !initialWeight.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "initial weight must be positive")
	}
	if birthDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "birth date is required")
	}

	offspring := &models.Offspring{
		BreedingStockID: breedingStockID,
		BirthDate:       models.DateOf(birthDate),
		InitialWeight:   initialWeight,
		CurrentWeight:   initialWeight,
		Status:          models.AnimalStatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var parent models.BreedingStock
		if err := forUpdate(tx).Where("id = ?", breedingStockID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBreedingStockNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !parent.IsActive() {
			return apperrors.WithMessage(apperrors.ErrAnimalInactive, parent.Name+" is not active")
		}

		offspring.BreedingMethodID = parent.BreedingMethodID
		if breedingMethodID != nil {
			if _, err := findBreedingMethod(tx, *breedingMethodID); err != nil {
				return err
			}
			offspring.BreedingMethodID = breedingMethodID
		}

		var room models.Room
		if err := tx.Select("id", "name").Where("id = ?", parent.RoomID).First(&room).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		name, err := nextOffspringName(tx, &parent, room.Name, birthDate)
		if err != nil {
			return err
		}
		offspring.Name = name

		if err := tx.Create(offspring).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err = s.aggregates.RecountOffspring(tx, breedingStockID)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishRecounts(recountOffspring, 1)
	return offspring, nil
}

// GetOffspring retrieves a paginated list of offspring, newest births first.
func (s *offspringService) GetOffspring(page pagination.PageRequest, filter AnimalFilter) (*pagination.PageResponse[models.Offspring], error) {
	query := s.db.Model(&models.Offspring{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.BreedingStockID != nil {
		query = query.Where("breeding_stock_id = ?", *filter.BreedingStockID)
	}

	result, err := pagination.Fetch[models.Offspring](query, page, "birth_date DESC, name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetOffspringByID retrieves an offspring with its cost rollup.
func (s *offspringService) GetOffspringByID(offspringID string) (*OffspringDetail, error) {
	var offspring models.Offspring
	if err := s.db.Preload("BreedingStock").Preload("BreedingMethod").Where("id = ?", offspringID).First(&offspring).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOffspringNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cost, err := s.costs.OffspringCost(s.db, offspringID)
	if err != nil {
		return nil, err
	}
	return &OffspringDetail{Offspring: offspring, Cost: cost}, nil
}

// UpdateOffspring updates birth date, initial weight and breeding method.
// The current weight only follows the initial weight while no weighings exist.
func (s *offspringService) UpdateOffspring(offspringID string, birthDate *time.Time, initialWeight *decimal.Decimal, breedingMethodID *string) (*models.Offspring, error) {
	var offspring models.Offspring
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", offspringID).First(&offspring).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOffspringNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if birthDate != nil && !birthDate.IsZero() {
			offspring.BirthDate = models.DateOf(*birthDate)
		}

		if initialWeight != nil {
			if !initialWeight.IsPositive() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "initial weight must be positive")
			}
			offspring.InitialWeight = *initialWeight

			var weighings int64
			if err := tx.Model(&models.WeightRecord{}).Where("offspring_id = ?", offspringID).Count(&weighings).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if weighings == 0 {
				offspring.CurrentWeight = *initialWeight
			}
		}

		if breedingMethodID != nil {
			if _, err := findBreedingMethod(tx, *breedingMethodID); err != nil {
				return err
			}
			offspring.BreedingMethodID = breedingMethodID
		}

		if err := tx.Model(&offspring).
			Select("birth_date", "initial_weight", "current_weight", "breeding_method_id").
			Updates(&offspring).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err := s.aggregates.RecountOffspring(tx, offspring.BreedingStockID)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishRecounts(recountOffspring, 1)
	return &offspring, nil
}

// DeleteOffspring deletes an offspring with its records and recounts the parent.
func (s *offspringService) DeleteOffspring(offspringID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var offspring models.Offspring
		if err := forUpdate(tx).Where("id = ?", offspringID).First(&offspring).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOffspringNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := purgeAnimalRecords(tx, models.AnimalKindOffspring, []string{offspringID}); err != nil {
			return err
		}
		if err := tx.Delete(&offspring).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err := s.aggregates.RecountOffspring(tx, offspring.BreedingStockID)
		return err
	})
	if err != nil {
		return err
	}

	publishRecounts(recountOffspring, 1)
	return nil
}

// nextOffspringName returns P<room><order>.<MM>.<YY> where order is one past
// the parent's current offspring count, bumped until the name is free.
func nextOffspringName(tx *gorm.DB, parent *models.BreedingStock, roomName string, birthDate time.Time) (string, error) {
	var count int64
	if err := tx.Model(&models.Offspring{}).Where("breeding_stock_id = ?", parent.ID).Count(&count).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for order := count + 1; ; order++ {
		name := fmt.Sprintf("P%s%d.%s", roomName, order, birthDate.Format("01.06"))
		taken, err := nameTaken(tx, &models.Offspring{}, name, "")
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !taken {
			return name, nil
		}
	}
}
