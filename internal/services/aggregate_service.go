package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/metrics"
	"farmledger/internal/models"
)

// Aggregate labels for the recount counter.
const (
	recountRoomOccupancy = "room_occupancy"
	recountOffspring     = "offspring"
)

// publishRecounts reports recounts made by a transaction. Call it only after
// the transaction committed.
func publishRecounts(aggregate string, n int) {
	metrics.Recounts.WithLabelValues(aggregate).Add(float64(n))
}

// aggregateService recounts derived parent fields from the child rows.
type aggregateService struct{}

// NewAggregateRecalculator creates a new AggregateRecalculator.
func NewAggregateRecalculator() AggregateRecalculator {
	return &aggregateService{}
}

// RecountRoomOccupancy sets the room's occupant count to the number of
// breeding stock assigned to it and re-derives its status.
func (s *aggregateService) RecountRoomOccupancy(tx *gorm.DB, roomID string) (*models.Room, error) {
	var room models.Room
	if err := forUpdate(tx).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	if err := tx.Model(&models.BreedingStock{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	room.OccupantCount = int(count)
	room.DeriveStatus()
	if err := tx.Model(&room).Select("occupant_count", "status").Updates(&room).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Debugw("room occupancy recounted", "room_id", roomID, "occupant_count", room.OccupantCount)
	return &room, nil
}

// RecountOffspring sets the total offspring and distinct birth-date counts
// of a breeding animal from its current offspring.
func (s *aggregateService) RecountOffspring(tx *gorm.DB, breedingStockID string) (*models.BreedingStock, error) {
	var stock models.BreedingStock
	if err := forUpdate(tx).Where("id = ?", breedingStockID).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var births []models.Offspring
	if err := tx.Select("birth_date").Where("breeding_stock_id = ?", breedingStockID).Find(&births).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	events := make(map[string]struct{}, len(births))
	for _, o := range births {
		events[models.DateKey(o.BirthDate)] = struct{}{}
	}

	stock.TotalOffspring = len(births)
	stock.BirthCount = len(events)
	if err := tx.Model(&stock).Select("total_offspring", "birth_count").Updates(&stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Debugw("offspring recounted",
		"breeding_stock_id", breedingStockID,
		"total_offspring", stock.TotalOffspring,
		"birth_count", stock.BirthCount,
	)
	return &stock, nil
}
