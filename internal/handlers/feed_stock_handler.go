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

// FeedStockHandler handles the feed inventory.
type FeedStockHandler struct {
	feedStockService services.FeedStockServicer
	auditService     services.AuditServicer
}

// NewFeedStockHandler creates a new FeedStockHandler.
func NewFeedStockHandler(feedStockService services.FeedStockServicer, auditService services.AuditServicer) *FeedStockHandler {
	return &FeedStockHandler{feedStockService: feedStockService, auditService: auditService}
}

// CreateFeedStockRequest represents the request payload for adding a feed stock
type CreateFeedStockRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	FeedType string          `json:"feed_type" binding:"required,feed_type"`
	Unit     string          `json:"unit" binding:"required,feed_unit"`
	Quantity decimal.Decimal `json:"quantity" binding:"gte=0"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"gte=0"`
}

// UpdateFeedStockRequest represents the request payload for updating a feed stock.
// Quantity only changes through restocks and feeding.
type UpdateFeedStockRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=100"`
	FeedType *string          `json:"feed_type" binding:"omitempty,feed_type"`
	Unit     *string          `json:"unit" binding:"omitempty,feed_unit"`
	UnitCost *decimal.Decimal `json:"unit_cost" binding:"omitempty,gte=0"`
}

// RestockRequest represents the request payload for restocking feed
type RestockRequest struct {
	Quantity decimal.Decimal  `json:"quantity" binding:"gt=0"`
	UnitCost *decimal.Decimal `json:"unit_cost" binding:"omitempty,gte=0"`
}

// CreateFeedStock handles adding a feed stock
// @Summary     Create feed stock
// @Description Add an inventory line. The initial and baseline quantities are set to the given quantity.
// @Tags        feed-stocks
// @Accept      json
// @Produce     json
// @Param       request body CreateFeedStockRequest true "Feed stock details"
// @Success     201 {object} models.FeedStock "Feed stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /feed-stocks [post]
func (h *FeedStockHandler) CreateFeedStock(c *gin.Context) {
	var req CreateFeedStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	feed, err := h.feedStockService.CreateFeedStock(req.Name, models.FeedType(req.FeedType), models.FeedUnit(req.Unit), req.Quantity, req.UnitCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_FEED_STOCK", "feed_stock", feed.ID, c.ClientIP(),
		map[string]interface{}{"name": feed.Name, "quantity": feed.StockQuantity.String()})

	c.JSON(http.StatusCreated, gin.H{"feed_stock": feed})
}

// GetFeedStocks handles listing feed stocks
// @Summary     List feed stocks
// @Tags        feed-stocks
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.FeedStock] "Paginated feed stocks"
// @Router      /feed-stocks [get]
func (h *FeedStockHandler) GetFeedStocks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.feedStockService.GetFeedStocks(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLowStock handles listing feed stocks below the sufficiency threshold
// @Summary     List low feed stocks
// @Tags        feed-stocks
// @Produce     json
// @Success     200 {array} models.FeedStock "Insufficient feed stocks"
// @Router      /feed-stocks/low [get]
func (h *FeedStockHandler) GetLowStock(c *gin.Context) {
	feeds, err := h.feedStockService.GetLowStock()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed_stocks": feeds})
}

// GetFeedStockByID handles the retrieval of one feed stock
// @Summary     Get feed stock by ID
// @Tags        feed-stocks
// @Produce     json
// @Param       id path string true "Feed stock ID"
// @Success     200 {object} models.FeedStock "Feed stock details"
// @Failure     404 {object} ErrorResponse "Feed stock not found"
// @Router      /feed-stocks/{id} [get]
func (h *FeedStockHandler) GetFeedStockByID(c *gin.Context) {
	feedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	feed, err := h.feedStockService.GetFeedStockByID(feedID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed_stock": feed})
}

// UpdateFeedStock handles updating a feed stock
// @Summary     Update feed stock
// @Description Rename, retype or reprice a feed stock. The total value is recomputed.
// @Tags        feed-stocks
// @Accept      json
// @Produce     json
// @Param       id path string true "Feed stock ID"
// @Param       request body UpdateFeedStockRequest true "Updated fields"
// @Success     200 {object} models.FeedStock "Updated feed stock"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Feed stock not found"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Router      /feed-stocks/{id} [put]
func (h *FeedStockHandler) UpdateFeedStock(c *gin.Context) {
	feedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFeedStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}
	var feedType *models.FeedType
	if req.FeedType != nil {
		v := models.FeedType(*req.FeedType)
		feedType = &v
	}
	var unit *models.FeedUnit
	if req.Unit != nil {
		v := models.FeedUnit(*req.Unit)
		unit = &v
	}

	feed, err := h.feedStockService.UpdateFeedStock(feedID, name, feedType, unit, req.UnitCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_FEED_STOCK", "feed_stock", feedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"feed_stock": feed})
}

// Restock handles adding quantity to a feed stock
// @Summary     Restock feed
// @Description Add quantity, optionally at a new unit cost. The sufficiency baseline is reset to the new quantity.
// @Tags        feed-stocks
// @Accept      json
// @Produce     json
// @Param       id path string true "Feed stock ID"
// @Param       request body RestockRequest true "Restock details"
// @Success     200 {object} models.FeedStock "Restocked feed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Feed stock not found"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Router      /feed-stocks/{id}/restock [post]
func (h *FeedStockHandler) Restock(c *gin.Context) {
	feedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	feed, err := h.feedStockService.Restock(feedID, req.Quantity, req.UnitCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RESTOCK_FEED", "feed_stock", feedID, c.ClientIP(),
		map[string]interface{}{"quantity": req.Quantity.String()})

	c.JSON(http.StatusOK, gin.H{"feed_stock": feed})
}

// DeleteFeedStock handles deleting an unused feed stock
// @Summary     Delete feed stock
// @Tags        feed-stocks
// @Produce     json
// @Param       id path string true "Feed stock ID"
// @Success     200 {object} MessageResponse "Feed stock deleted"
// @Failure     404 {object} ErrorResponse "Feed stock not found"
// @Failure     409 {object} ErrorResponse "Feed stock in use"
// @Router      /feed-stocks/{id} [delete]
func (h *FeedStockHandler) DeleteFeedStock(c *gin.Context) {
	feedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.feedStockService.DeleteFeedStock(feedID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_FEED_STOCK", "feed_stock", feedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Feed stock deleted successfully"})
}
