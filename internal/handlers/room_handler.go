package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// RoomHandler handles room-related requests.
type RoomHandler struct {
	roomService  services.RoomServicer
	auditService services.AuditServicer
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService services.RoomServicer, auditService services.AuditServicer) *RoomHandler {
	return &RoomHandler{roomService: roomService, auditService: auditService}
}

// CreateRoomRequest represents the request payload for creating a room
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=10"`
	Capacity int    `json:"capacity" binding:"required,gte=1"`
	Status   string `json:"status" binding:"omitempty,room_status"`
	Note     string `json:"note" binding:"max=500"`
}

// UpdateRoomRequest represents the request payload for updating a room
type UpdateRoomRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=10"`
	Capacity *int    `json:"capacity" binding:"omitempty,gte=1"`
	Status   *string `json:"status" binding:"omitempty,room_status"`
	Note     *string `json:"note" binding:"omitempty,max=500"`
}

// CreateRoom handles the creation of a new room
// @Summary     Create a room
// @Description Create an empty pen for breeding stock
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Param       request body CreateRoomRequest true "Room details"
// @Success     201 {object} models.Room "Room created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	room, err := h.roomService.CreateRoom(req.Name, req.Capacity, models.RoomStatus(req.Status), req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ROOM", "room", room.ID, c.ClientIP(),
		map[string]interface{}{"name": room.Name, "capacity": room.Capacity})

	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// GetRooms handles the retrieval of rooms
// @Summary     List rooms
// @Description Get a paginated list of rooms ordered by name
// @Tags        rooms
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Room] "Paginated rooms"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms [get]
func (h *RoomHandler) GetRooms(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.roomService.GetRooms(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRoomByID handles the retrieval of a specific room
// @Summary     Get room by ID
// @Description Get a room with the breeding stock it holds
// @Tags        rooms
// @Produce     json
// @Param       id path string true "Room ID"
// @Success     200 {object} models.Room "Room details"
// @Failure     400 {object} ErrorResponse "Invalid room ID"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [get]
func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	room, err := h.roomService.GetRoomByID(roomID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// UpdateRoom handles updating a room
// @Summary     Update room
// @Description Rename a room or change its capacity, status or note. Capacity cannot drop below the occupant count.
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Param       id path string true "Room ID"
// @Param       request body UpdateRoomRequest true "Updated room details"
// @Success     200 {object} models.Room "Updated room"
// @Failure     400 {object} ErrorResponse "Invalid input or room ID"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}
	var status *models.RoomStatus
	if req.Status != nil {
		s := models.RoomStatus(*req.Status)
		status = &s
	}

	room, err := h.roomService.UpdateRoom(roomID, name, req.Capacity, status, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ROOM", "room", roomID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// DeleteRoom handles deleting an empty room
// @Summary     Delete room
// @Description Delete a room. Rooms that still hold breeding stock cannot be deleted.
// @Tags        rooms
// @Produce     json
// @Param       id path string true "Room ID"
// @Success     200 {object} MessageResponse "Room deleted"
// @Failure     400 {object} ErrorResponse "Invalid room ID"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     409 {object} ErrorResponse "Room not empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.roomService.DeleteRoom(roomID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ROOM", "room", roomID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
