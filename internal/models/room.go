package models

// RoomStatus represents the availability of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusFull        RoomStatus = "full"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room is a pen holding breeding stock. OccupantCount is derived from the
// assigned stock and is never taken from client input.
type Room struct {
	Base
	Name          string     `gorm:"size:10;not null;uniqueIndex" json:"name"`
	Capacity      int        `gorm:"not null" json:"capacity"`
	OccupantCount int        `gorm:"not null;default:0" json:"occupant_count"`
	Status        RoomStatus `gorm:"size:15;not null;default:'available'" json:"status"`
	Note          string     `json:"note"`

	// Relationships
	BreedingStock []BreedingStock `gorm:"foreignKey:RoomID" json:"breeding_stock,omitempty"`
}

// IsFull reports whether the room has reached its capacity.
func (r *Room) IsFull() bool {
	return r.OccupantCount >= r.Capacity
}

// DeriveStatus sets the status from the occupant count. Maintenance is an
// operator decision and is left untouched.
func (r *Room) DeriveStatus() {
	if r.Status == RoomStatusMaintenance {
		return
	}
	if r.IsFull() {
		r.Status = RoomStatusFull
	} else {
		r.Status = RoomStatusAvailable
	}
}
