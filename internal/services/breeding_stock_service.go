package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// breedingStockService handles breeding stock business logic.
type breedingStockService struct {
	db         *gorm.DB
	aggregates AggregateRecalculator
	costs      CostCalculator
}

// NewBreedingStockService creates a new BreedingStockServicer.
func NewBreedingStockService(db *gorm.DB, aggregates AggregateRecalculator, costs CostCalculator) BreedingStockServicer {
	return &breedingStockService{db: db, aggregates: aggregates, costs: costs}
}

// CreateBreedingStock registers a breeding animal in a room. The name is
// generated from the room and the room's running order.
func (s *breedingStockService) CreateBreedingStock(
	roomID string,
	category models.StockCategory,
	origin models.StockOrigin,
	purchaseCost decimal.Decimal,
	registeredDate time.Time,
	breedingMethodID *string,
) (*models.BreedingStock, error) {
	if purchaseCost.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase cost cannot be negative")
	}
	if category == "" {
		category = models.StockCategoryYoung
	}
	if origin == "" {
		origin = models.StockOriginPurchased
	}
	if origin == models.StockOriginBornInFarm {
		purchaseCost = decimal.Zero
	}
	if registeredDate.IsZero() {
		registeredDate = time.Now()
	}

	stock := &models.BreedingStock{
		RoomID:           roomID,
		Category:         category,
		Origin:           origin,
		Status:           models.AnimalStatusActive,
		PurchaseCost:     purchaseCost,
		RegisteredDate:   models.DateOf(registeredDate),
		BreedingMethodID: breedingMethodID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		room, err := admitToRoom(tx, roomID)
		if err != nil {
			return err
		}
		if breedingMethodID != nil {
			if _, err := findBreedingMethod(tx, *breedingMethodID); err != nil {
				return err
			}
		}

		if stock.Name, err = nextStockName(tx, room.Name); err != nil {
			return err
		}
		if err := tx.Create(stock).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err = s.aggregates.RecountRoomOccupancy(tx, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishRecounts(recountRoomOccupancy, 1)
	return stock, nil
}

// GetBreedingStock retrieves a paginated list of breeding stock.
func (s *breedingStockService) GetBreedingStock(page pagination.PageRequest, filter AnimalFilter) (*pagination.PageResponse[models.BreedingStock], error) {
	query := s.db.Model(&models.BreedingStock{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}

	result, err := pagination.Fetch[models.BreedingStock](query.Preload("Room"), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetBreedingStockByID retrieves a breeding animal with its cost rollup and
// latest weighing.
func (s *breedingStockService) GetBreedingStockByID(stockID string) (*BreedingStockDetail, error) {
	var stock models.BreedingStock
	if err := s.db.Preload("Room").Preload("BreedingMethod").Where("id = ?", stockID).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cost, err := s.costs.BreedingStockCost(s.db, stockID)
	if err != nil {
		return nil, err
	}

	detail := &BreedingStockDetail{BreedingStock: stock, Cost: cost}

	var latest models.WeightRecord
	err = s.db.Where("breeding_stock_id = ?", stockID).
		Order("recorded_date DESC, created_at DESC").
		First(&latest).Error
	switch {
	case err == nil:
		detail.LatestWeight = &latest
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return detail, nil
}

// UpdateBreedingStock updates category, origin, purchase cost, breeding
// method and room. The room is recounted on every save, and a move
// recounts the previous room as well.
func (s *breedingStockService) UpdateBreedingStock(
	stockID string,
	roomID *string,
	category *models.StockCategory,
	origin *models.StockOrigin,
	purchaseCost *decimal.Decimal,
	breedingMethodID *string,
) (*models.BreedingStock, error) {
	var stock models.BreedingStock
	var previousRoom string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", stockID).First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBreedingStockNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if category != nil {
			stock.Category = *category
		}
		if origin != nil {
			stock.Origin = *origin
		}
		if purchaseCost != nil {
			if purchaseCost.IsNegative() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase cost cannot be negative")
			}
			stock.PurchaseCost = *purchaseCost
		}
		if stock.Origin == models.StockOriginBornInFarm {
			stock.PurchaseCost = decimal.Zero
		}
		if breedingMethodID != nil {
			if _, err := findBreedingMethod(tx, *breedingMethodID); err != nil {
				return err
			}
			stock.BreedingMethodID = breedingMethodID
		}

		previousRoom = stock.RoomID
		if roomID != nil && *roomID != previousRoom {
			if _, err := admitToRoom(tx, *roomID); err != nil {
				return err
			}
			stock.RoomID = *roomID
		}

		if err := tx.Model(&stock).
			Select("room_id", "category", "origin", "purchase_cost", "breeding_method_id").
			Updates(&stock).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if stock.RoomID != previousRoom {
			if _, err := s.aggregates.RecountRoomOccupancy(tx, previousRoom); err != nil {
				return err
			}
		}
		// Every save recounts, so a drifted count is repaired too.
		_, err := s.aggregates.RecountRoomOccupancy(tx, stock.RoomID)
		return err
	})
	if err != nil {
		return nil, err
	}

	recounts := 1
	if stock.RoomID != previousRoom {
		recounts++
	}
	publishRecounts(recountRoomOccupancy, recounts)
	return &stock, nil
}

// DeleteBreedingStock deletes a breeding animal, its offspring and every
// record attached to either, then recounts the room.
func (s *breedingStockService) DeleteBreedingStock(stockID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stock models.BreedingStock
		if err := forUpdate(tx).Where("id = ?", stockID).First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBreedingStockNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var offspringIDs []string
		if err := tx.Model(&models.Offspring{}).Where("breeding_stock_id = ?", stockID).Pluck("id", &offspringIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := purgeAnimalRecords(tx, models.AnimalKindOffspring, offspringIDs); err != nil {
			return err
		}
		if len(offspringIDs) > 0 {
			if err := tx.Where("id IN ?", offspringIDs).Delete(&models.Offspring{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := purgeAnimalRecords(tx, models.AnimalKindBreedingStock, []string{stockID}); err != nil {
			return err
		}
		if err := tx.Delete(&stock).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		_, err := s.aggregates.RecountRoomOccupancy(tx, stock.RoomID)
		return err
	})
	if err != nil {
		return err
	}

	publishRecounts(recountRoomOccupancy, 1)
	return nil
}

// PromoteOffspring turns an active offspring into breeding stock born in the
// farm. The offspring is retired and keeps its own records.
func (s *breedingStockService) PromoteOffspring(offspringID, roomID string, registeredDate time.Time) (*models.BreedingStock, error) {
	if registeredDate.IsZero() {
		registeredDate = time.Now()
	}

	var stock *models.BreedingStock
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var offspring models.Offspring
		if err := forUpdate(tx).Where("id = ?", offspringID).First(&offspring).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOffspringNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !offspring.IsActive() {
			return apperrors.WithMessage(apperrors.ErrAnimalInactive, offspring.Name+" is not active")
		}

		room, err := admitToRoom(tx, roomID)
		if err != nil {
			return err
		}

		name, err := nextStockName(tx, room.Name)
		if err != nil {
			return err
		}

		promotedFrom := offspring.ID
		stock = &models.BreedingStock{
			Name:                    name,
			RoomID:                  roomID,
			Category:                models.CategoryForWeight(offspring.CurrentWeight),
			Origin:                  models.StockOriginBornInFarm,
			Status:                  models.AnimalStatusActive,
			PurchaseCost:            decimal.Zero,
			RegisteredDate:          models.DateOf(registeredDate),
			PromotedFromOffspringID: &promotedFrom,
			BreedingMethodID:        offspring.BreedingMethodID,
		}
		if err := tx.Create(stock).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := setAnimalStatus(tx, models.AnimalKindOffspring, offspring.ID, models.AnimalStatusInactive); err != nil {
			return err
		}

		_, err = s.aggregates.RecountRoomOccupancy(tx, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishRecounts(recountRoomOccupancy, 1)
	return stock, nil
}

// admitToRoom locks the room and checks it can take one more animal.
func admitToRoom(tx *gorm.DB, roomID string) (*models.Room, error) {
	var room models.Room
	if err := forUpdate(tx).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if room.Status == models.RoomStatusMaintenance {
		return nil, apperrors.ErrRoomUnavailable
	}

	var count int64
	if err := tx.Model(&models.BreedingStock{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if int(count) >= room.Capacity {
		return nil, apperrors.WithMessage(apperrors.ErrRoomFull,
			fmt.Sprintf("room %s is full (%d/%d)", room.Name, count, room.Capacity))
	}
	return &room, nil
}

// nextStockName returns Sow-<room>-<n> where n is one past the highest
// number already used with that prefix.
func nextStockName(tx *gorm.DB, roomName string) (string, error) {
	prefix := "Sow-" + roomName + "-"

	var names []string
	if err := tx.Model(&models.BreedingStock{}).Where("name LIKE ?", prefix+"%").Pluck("name", &names).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	highest := 0
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(name, prefix)); err == nil && n > highest {
			highest = n
		}
	}
	return prefix + strconv.Itoa(highest+1), nil
}
