package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// FeedingHandler handles feeding records.
type FeedingHandler struct {
	feedingService services.FeedingServicer
	auditService   services.AuditServicer
}

// NewFeedingHandler creates a new FeedingHandler.
func NewFeedingHandler(feedingService services.FeedingServicer, auditService services.AuditServicer) *FeedingHandler {
	return &FeedingHandler{feedingService: feedingService, auditService: auditService}
}

// CreateFeedingRecordRequest represents the request payload for feeding an animal
type CreateFeedingRecordRequest struct {
	TargetRequest
	FeedStockID  string          `json:"feed_stock_id" binding:"required,uuid"`
	QuantityUsed decimal.Decimal `json:"quantity_used" binding:"gt=0"`
	RecordedAt   *string         `json:"recorded_at"`
}

// CreateFeedingRecord handles feeding an animal from a feed stock
// @Summary     Record feeding
// @Description Feed one animal. The quantity is deducted from the stock at its current unit cost; insufficient stock is rejected.
// @Tags        feeding
// @Accept      json
// @Produce     json
// @Param       request body CreateFeedingRecordRequest true "Feeding details"
// @Success     201 {object} models.FeedingRecord "Feeding recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient stock"
// @Failure     404 {object} ErrorResponse "Animal or feed stock not found"
// @Failure     409 {object} ErrorResponse "Animal inactive or concurrent modification"
// @Router      /feeding-records [post]
func (h *FeedingHandler) CreateFeedingRecord(c *gin.Context) {
	var req CreateFeedingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	target, err := req.Ref()
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordedAt, err := parseDateOrNow("recorded_at", req.RecordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.feedingService.CreateFeedingRecord(target, req.FeedStockID, req.QuantityUsed, recordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_FEEDING_RECORD", "feeding_record", record.ID, c.ClientIP(),
		map[string]interface{}{"feed_stock_id": req.FeedStockID, "quantity_used": record.QuantityUsed.String()})

	c.JSON(http.StatusCreated, gin.H{"feeding_record": record})
}

// GetFeedingRecords handles listing feeding records
// @Summary     List feeding records
// @Tags        feeding
// @Produce     json
// @Param       kind          query string false "breeding_stock or offspring"
// @Param       animal_id     query string false "Filter by animal"
// @Param       feed_stock_id query string false "Filter by feed stock"
// @Param       from_date     query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date       query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.FeedingRecord] "Paginated feeding records"
// @Router      /feeding-records [get]
func (h *FeedingHandler) GetFeedingRecords(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	feedStockID, err := optionalQueryID(c, "feed_stock_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.feedingService.GetFeedingRecords(page, filter, feedStockID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFeedingRecordByID handles the retrieval of one feeding record
// @Summary     Get feeding record by ID
// @Tags        feeding
// @Produce     json
// @Param       id path string true "Feeding record ID"
// @Success     200 {object} models.FeedingRecord "Feeding record"
// @Failure     404 {object} ErrorResponse "Feeding record not found"
// @Router      /feeding-records/{id} [get]
func (h *FeedingHandler) GetFeedingRecordByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.feedingService.GetFeedingRecordByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feeding_record": record})
}

// DeleteFeedingRecord handles deleting a feeding record
// @Summary     Delete feeding record
// @Description Delete a feeding record and return its quantity to the stock.
// @Tags        feeding
// @Produce     json
// @Param       id path string true "Feeding record ID"
// @Success     200 {object} MessageResponse "Feeding record deleted"
// @Failure     404 {object} ErrorResponse "Feeding record not found"
// @Router      /feeding-records/{id} [delete]
func (h *FeedingHandler) DeleteFeedingRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.feedingService.DeleteFeedingRecord(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_FEEDING_RECORD", "feeding_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Feeding record deleted successfully"})
}
