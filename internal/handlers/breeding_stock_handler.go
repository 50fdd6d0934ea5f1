package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// BreedingStockHandler handles breeding stock requests.
type BreedingStockHandler struct {
	stockService services.BreedingStockServicer
	auditService services.AuditServicer
}

// NewBreedingStockHandler creates a new BreedingStockHandler.
func NewBreedingStockHandler(stockService services.BreedingStockServicer, auditService services.AuditServicer) *BreedingStockHandler {
	return &BreedingStockHandler{stockService: stockService, auditService: auditService}
}

// CreateBreedingStockRequest represents the request payload for registering breeding stock.
// The name is generated from the room.
type CreateBreedingStockRequest struct {
	RoomID           string          `json:"room_id" binding:"required,uuid"`
	Category         string          `json:"category" binding:"required,stock_category"`
	Origin           string          `json:"origin" binding:"required,stock_origin"`
	PurchaseCost     decimal.Decimal `json:"purchase_cost" binding:"gte=0"`
	RegisteredDate   *string         `json:"registered_date"`
	BreedingMethodID *string         `json:"breeding_method_id" binding:"omitempty,uuid"`
}

// UpdateBreedingStockRequest represents the request payload for updating breeding stock
type UpdateBreedingStockRequest struct {
	RoomID           *string          `json:"room_id" binding:"omitempty,uuid"`
	Category         *string          `json:"category" binding:"omitempty,stock_category"`
	Origin           *string          `json:"origin" binding:"omitempty,stock_origin"`
	PurchaseCost     *decimal.Decimal `json:"purchase_cost" binding:"omitempty,gte=0"`
	BreedingMethodID *string          `json:"breeding_method_id" binding:"omitempty,uuid"`
}

// PromoteOffspringRequest represents the request payload for promoting an offspring
type PromoteOffspringRequest struct {
	RoomID         string  `json:"room_id" binding:"required,uuid"`
	RegisteredDate *string `json:"registered_date"`
}

// CreateBreedingStock handles registering a breeding animal
// @Summary     Register breeding stock
// @Description Register a breeding animal in a room. The room must have free capacity and not be under maintenance.
// @Tags        breeding-stock
// @Accept      json
// @Produce     json
// @Param       request body CreateBreedingStockRequest true "Breeding stock details"
// @Success     201 {object} models.BreedingStock "Breeding stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Room or method not found"
// @Failure     409 {object} ErrorResponse "Room full or unavailable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /breeding-stock [post]
func (h *BreedingStockHandler) CreateBreedingStock(c *gin.Context) {
	var req CreateBreedingStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	registered, err := parseDateOrNow("registered_date", req.RegisteredDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stockService.CreateBreedingStock(
		req.RoomID,
		models.StockCategory(req.Category),
		models.StockOrigin(req.Origin),
		req.PurchaseCost,
		registered,
		req.BreedingMethodID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_BREEDING_STOCK", "breeding_stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"name": stock.Name, "room_id": stock.RoomID})

	c.JSON(http.StatusCreated, gin.H{"breeding_stock": stock})
}

// GetBreedingStock handles listing breeding stock
// @Summary     List breeding stock
// @Tags        breeding-stock
// @Produce     json
// @Param       status    query string false "active or inactive"
// @Param       room_id   query string false "Filter by room"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BreedingStock] "Paginated breeding stock"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /breeding-stock [get]
func (h *BreedingStockHandler) GetBreedingStock(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseAnimalFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.stockService.GetBreedingStock(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBreedingStockByID handles the retrieval of one breeding animal
// @Summary     Get breeding stock by ID
// @Description Get a breeding animal with its lifetime cost breakdown and latest weighing
// @Tags        breeding-stock
// @Produce     json
// @Param       id path string true "Breeding stock ID"
// @Success     200 {object} services.BreedingStockDetail "Breeding stock details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Breeding stock not found"
// @Router      /breeding-stock/{id} [get]
func (h *BreedingStockHandler) GetBreedingStockByID(c *gin.Context) {
	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.stockService.GetBreedingStockByID(stockID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeding_stock": detail})
}

// UpdateBreedingStock handles updating a breeding animal
// @Summary     Update breeding stock
// @Description Update a breeding animal. Moving rooms recounts both rooms.
// @Tags        breeding-stock
// @Accept      json
// @Produce     json
// @Param       id path string true "Breeding stock ID"
// @Param       request body UpdateBreedingStockRequest true "Updated fields"
// @Success     200 {object} models.BreedingStock "Updated breeding stock"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Target room full or unavailable"
// @Router      /breeding-stock/{id} [put]
func (h *BreedingStockHandler) UpdateBreedingStock(c *gin.Context) {
	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBreedingStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var category *models.StockCategory
	if req.Category != nil {
		v := models.StockCategory(*req.Category)
		category = &v
	}
	var origin *models.StockOrigin
	if req.Origin != nil {
		v := models.StockOrigin(*req.Origin)
		origin = &v
	}

	stock, err := h.stockService.UpdateBreedingStock(stockID, req.RoomID, category, origin, req.PurchaseCost, req.BreedingMethodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_BREEDING_STOCK", "breeding_stock", stockID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"breeding_stock": stock})
}

// DeleteBreedingStock handles deleting a breeding animal and its records
// @Summary     Delete breeding stock
// @Description Delete a breeding animal together with its offspring and records. Sales are kept.
// @Tags        breeding-stock
// @Produce     json
// @Param       id path string true "Breeding stock ID"
// @Success     200 {object} MessageResponse "Breeding stock deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /breeding-stock/{id} [delete]
func (h *BreedingStockHandler) DeleteBreedingStock(c *gin.Context) {
	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stockService.DeleteBreedingStock(stockID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BREEDING_STOCK", "breeding_stock", stockID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Breeding stock deleted successfully"})
}

// PromoteOffspring handles promoting an offspring to breeding stock
// @Summary     Promote offspring
// @Description Turn an active offspring into breeding stock in the given room. The offspring becomes inactive.
// @Tags        breeding-stock
// @Accept      json
// @Produce     json
// @Param       id path string true "Offspring ID"
// @Param       request body PromoteOffspringRequest true "Target room"
// @Success     201 {object} models.BreedingStock "Promoted breeding stock"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Offspring or room not found"
// @Failure     409 {object} ErrorResponse "Offspring inactive or room full"
// @Router      /offspring/{id}/promote [post]
func (h *BreedingStockHandler) PromoteOffspring(c *gin.Context) {
	offspringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PromoteOffspringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	registered, err := parseDateOrNow("registered_date", req.RegisteredDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stockService.PromoteOffspring(offspringID, req.RoomID, registered)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("PROMOTE_OFFSPRING", "breeding_stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"offspring_id": offspringID, "room_id": req.RoomID})

	c.JSON(http.StatusCreated, gin.H{"breeding_stock": stock})
}

func parseAnimalFilter(c *gin.Context) (services.AnimalFilter, error) {
	var filter services.AnimalFilter

	if v := c.Query("status"); v != "" {
		status := models.AnimalStatus(v)
		switch status {
		case models.AnimalStatusActive, models.AnimalStatusInactive:
			filter.Status = &status
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status, must be active or inactive")
		}
	}

	var err error
	if filter.RoomID, err = optionalQueryID(c, "room_id"); err != nil {
		return filter, err
	}
	if filter.BreedingStockID, err = optionalQueryID(c, "breeding_stock_id"); err != nil {
		return filter, err
	}

	return filter, nil
}
