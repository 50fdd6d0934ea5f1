package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// roomService handles room-related business logic.
type roomService struct {
	db *gorm.DB
}

// NewRoomService creates a new RoomServicer.
func NewRoomService(db *gorm.DB) RoomServicer {
	return &roomService{db: db}
}

// CreateRoom creates an empty room
func (s *roomService) CreateRoom(name string, capacity int, status models.RoomStatus, note string) (*models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "room name is required")
	}
	if len(name) > 10 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "room name must be at most 10 characters")
	}
	if capacity < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "capacity must be at least 1")
	}
	if status == "" || status == models.RoomStatusFull {
		status = models.RoomStatusAvailable
	}

	taken, err := nameTaken(s.db, &models.Room{}, name, "")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateName, "room "+name+" already exists")
	}

	room := &models.Room{
		Name:          name,
		Capacity:      capacity,
		OccupantCount: 0,
		Status:        status,
		Note:          note,
	}
	if err := s.db.Create(room).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return room, nil
}

// GetRooms retrieves a paginated list of rooms ordered by name.
func (s *roomService) GetRooms(page pagination.PageRequest) (*pagination.PageResponse[models.Room], error) {
	result, err := pagination.Fetch[models.Room](s.db.Model(&models.Room{}), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetRoomByID retrieves a room together with the breeding stock it holds.
func (s *roomService) GetRoomByID(roomID string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("BreedingStock", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &room, nil
}

// UpdateRoom updates name, capacity, status and note. The occupant count is
// never taken from input; the status is re-derived unless set to maintenance.
func (s *roomService) UpdateRoom(roomID string, name string, capacity *int, status *models.RoomStatus, note *string) (*models.Room, error) {
	var room models.Room
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if name = strings.TrimSpace(name); name != "" && name != room.Name {
			if len(name) > 10 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "room name must be at most 10 characters")
			}
			taken, err := nameTaken(tx, &models.Room{}, name, room.ID)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if taken {
				return apperrors.WithMessage(apperrors.ErrDuplicateName, "room "+name+" already exists")
			}
			room.Name = name
		}

		if capacity != nil {
			if *capacity < 1 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "capacity must be at least 1")
			}
			if *capacity < room.OccupantCount {
				return apperrors.ErrCapacityTooLow
			}
			room.Capacity = *capacity
		}

		if status != nil {
			switch *status {
			case models.RoomStatusMaintenance:
				room.Status = models.RoomStatusMaintenance
			default:
				// Leaving maintenance; the occupancy decides between full and available.
				room.Status = models.RoomStatusAvailable
			}
		}
		room.DeriveStatus()

		if note != nil {
			room.Note = *note
		}

		if err := tx.Model(&room).Select("name", "capacity", "status", "note").Updates(&room).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// DeleteRoom deletes an empty room.
func (s *roomService) DeleteRoom(roomID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := forUpdate(tx).Where("id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var count int64
		if err := tx.Model(&models.BreedingStock{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrRoomNotEmpty
		}

		if err := tx.Delete(&room).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
