package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// WeightHandler handles weight records.
type WeightHandler struct {
	weightService services.WeightServicer
	auditService  services.AuditServicer
}

// NewWeightHandler creates a new WeightHandler.
func NewWeightHandler(weightService services.WeightServicer, auditService services.AuditServicer) *WeightHandler {
	return &WeightHandler{weightService: weightService, auditService: auditService}
}

// CreateWeightRecordRequest represents the request payload for weighing an animal
type CreateWeightRecordRequest struct {
	TargetRequest
	RecordedDate *string         `json:"recorded_date"`
	Weight       decimal.Decimal `json:"weight" binding:"gt=0"`
}

// UpdateWeightRecordRequest represents the request payload for correcting a weighing
type UpdateWeightRecordRequest struct {
	RecordedDate *string          `json:"recorded_date"`
	Weight       *decimal.Decimal `json:"weight" binding:"omitempty,gt=0"`
}

// CreateWeightRecord handles weighing an animal
// @Summary     Record weight
// @Description Record a weighing. Differences and trends of the animal's series are recomputed.
// @Tags        weights
// @Accept      json
// @Produce     json
// @Param       request body CreateWeightRecordRequest true "Weighing"
// @Success     201 {object} models.WeightRecord "Weight recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Animal not found"
// @Failure     409 {object} ErrorResponse "Animal inactive"
// @Router      /weight-records [post]
func (h *WeightHandler) CreateWeightRecord(c *gin.Context) {
	var req CreateWeightRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	target, err := req.Ref()
	if err != nil {
		respondWithError(c, err)
		return
	}

	recorded, err := parseDateOrNow("recorded_date", req.RecordedDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.weightService.CreateWeightRecord(target, recorded, req.Weight)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_WEIGHT_RECORD", "weight_record", record.ID, c.ClientIP(),
		map[string]interface{}{"weight": record.Weight.String()})

	c.JSON(http.StatusCreated, gin.H{"weight_record": record})
}

// GetWeightRecords handles listing weight records
// @Summary     List weight records
// @Tags        weights
// @Produce     json
// @Param       kind      query string false "breeding_stock or offspring"
// @Param       animal_id query string false "Filter by animal"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.WeightRecord] "Paginated weight records"
// @Router      /weight-records [get]
func (h *WeightHandler) GetWeightRecords(c *gin.Context) {
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

	result, err := h.weightService.GetWeightRecords(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWeightRecordByID handles the retrieval of one weight record
// @Summary     Get weight record by ID
// @Tags        weights
// @Produce     json
// @Param       id path string true "Weight record ID"
// @Success     200 {object} models.WeightRecord "Weight record"
// @Failure     404 {object} ErrorResponse "Weight record not found"
// @Router      /weight-records/{id} [get]
func (h *WeightHandler) GetWeightRecordByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.weightService.GetWeightRecordByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weight_record": record})
}

// UpdateWeightRecord handles correcting a weighing
// @Summary     Update weight record
// @Tags        weights
// @Accept      json
// @Produce     json
// @Param       id path string true "Weight record ID"
// @Param       request body UpdateWeightRecordRequest true "Updated fields"
// @Success     200 {object} models.WeightRecord "Updated weight record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Weight record not found"
// @Router      /weight-records/{id} [put]
func (h *WeightHandler) UpdateWeightRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWeightRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recorded, err := parseOptionalDate("recorded_date", req.RecordedDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.weightService.UpdateWeightRecord(recordID, recorded, req.Weight)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_WEIGHT_RECORD", "weight_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"weight_record": record})
}

// DeleteWeightRecord handles deleting a weighing
// @Summary     Delete weight record
// @Tags        weights
// @Produce     json
// @Param       id path string true "Weight record ID"
// @Success     200 {object} MessageResponse "Weight record deleted"
// @Failure     404 {object} ErrorResponse "Weight record not found"
// @Router      /weight-records/{id} [delete]
func (h *WeightHandler) DeleteWeightRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.weightService.DeleteWeightRecord(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_WEIGHT_RECORD", "weight_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Weight record deleted successfully"})
}
