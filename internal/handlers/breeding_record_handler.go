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

// BreedingRecordHandler handles breeding records.
type BreedingRecordHandler struct {
	recordService services.BreedingRecordServicer
	auditService  services.AuditServicer
}

// NewBreedingRecordHandler creates a new BreedingRecordHandler.
func NewBreedingRecordHandler(recordService services.BreedingRecordServicer, auditService services.AuditServicer) *BreedingRecordHandler {
	return &BreedingRecordHandler{recordService: recordService, auditService: auditService}
}

// BreedingRecordRequest represents the request payload for creating or replacing a breeding record.
// The breeding stock cannot be changed on update.
type BreedingRecordRequest struct {
	BreedingStockID    string          `json:"breeding_stock_id" binding:"omitempty,uuid"`
	HeatDetectionDate  *string         `json:"heat_detection_date"`
	Insemination1Date  *string         `json:"insemination_1_date"`
	Insemination2Date  *string         `json:"insemination_2_date"`
	Insemination3Date  *string         `json:"insemination_3_date"`
	BreedingMethodID   *string         `json:"breeding_method_id" binding:"omitempty,uuid"`
	Cost               decimal.Decimal `json:"cost" binding:"gte=0"`
	ExpectedFarrowDate *string         `json:"expected_farrow_date"`
	ActualFarrowDate   *string         `json:"actual_farrow_date"`
	Status             string          `json:"status" binding:"omitempty,breeding_status"`
	Note               string          `json:"note" binding:"max=1000"`
}

func (r BreedingRecordRequest) input() (services.BreedingRecordInput, error) {
	input := services.BreedingRecordInput{
		BreedingStockID:  r.BreedingStockID,
		BreedingMethodID: r.BreedingMethodID,
		Cost:             r.Cost,
		Status:           models.BreedingStatus(r.Status),
		Note:             r.Note,
	}

	var err error
	if input.HeatDetectionDate, err = parseOptionalDate("heat_detection_date", r.HeatDetectionDate); err != nil {
		return input, err
	}
	if input.Insemination1Date, err = parseOptionalDate("insemination_1_date", r.Insemination1Date); err != nil {
		return input, err
	}
	if input.Insemination2Date, err = parseOptionalDate("insemination_2_date", r.Insemination2Date); err != nil {
		return input, err
	}
	if input.Insemination3Date, err = parseOptionalDate("insemination_3_date", r.Insemination3Date); err != nil {
		return input, err
	}
	if input.ExpectedFarrowDate, err = parseOptionalDate("expected_farrow_date", r.ExpectedFarrowDate); err != nil {
		return input, err
	}
	if input.ActualFarrowDate, err = parseOptionalDate("actual_farrow_date", r.ActualFarrowDate); err != nil {
		return input, err
	}
	return input, nil
}

// CreateBreedingRecord handles recording a breeding attempt
// @Summary     Create breeding record
// @Description Record heat detection and inseminations for a breeding animal. The expected farrow date follows from the first insemination once pregnancy is confirmed.
// @Tags        breeding-records
// @Accept      json
// @Produce     json
// @Param       request body BreedingRecordRequest true "Breeding record"
// @Success     201 {object} models.BreedingRecord "Breeding record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Breeding stock or method not found"
// @Failure     409 {object} ErrorResponse "Breeding stock inactive"
// @Router      /breeding-records [post]
func (h *BreedingRecordHandler) CreateBreedingRecord(c *gin.Context) {
	var req BreedingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.CreateBreedingRecord(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_BREEDING_RECORD", "breeding_record", record.ID, c.ClientIP(),
		map[string]interface{}{"breeding_stock_id": record.BreedingStockID, "status": record.Status})

	c.JSON(http.StatusCreated, gin.H{"breeding_record": record})
}

// GetBreedingRecords handles listing breeding records
// @Summary     List breeding records
// @Tags        breeding-records
// @Produce     json
// @Param       breeding_stock_id query string false "Filter by breeding stock"
// @Param       status            query string false "pending, confirmed_pregnant, completed or failed"
// @Param       page              query int    false "Page number (default 1)"
// @Param       page_size         query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BreedingRecord] "Paginated breeding records"
// @Router      /breeding-records [get]
func (h *BreedingRecordHandler) GetBreedingRecords(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stockID, err := optionalQueryID(c, "breeding_stock_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var status *models.BreedingStatus
	if v := c.Query("status"); v != "" {
		s := models.BreedingStatus(v)
		switch s {
		case models.BreedingStatusPending, models.BreedingStatusConfirmedPregnant,
			models.BreedingStatusCompleted, models.BreedingStatusFailed:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status, must be pending, confirmed_pregnant, completed or failed"))
			return
		}
	}

	result, err := h.recordService.GetBreedingRecords(page, stockID, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBreedingRecordByID handles the retrieval of one breeding record
// @Summary     Get breeding record by ID
// @Tags        breeding-records
// @Produce     json
// @Param       id path string true "Breeding record ID"
// @Success     200 {object} models.BreedingRecord "Breeding record"
// @Failure     404 {object} ErrorResponse "Breeding record not found"
// @Router      /breeding-records/{id} [get]
func (h *BreedingRecordHandler) GetBreedingRecordByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.GetBreedingRecordByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeding_record": record})
}

// UpdateBreedingRecord handles replacing a breeding record
// @Summary     Update breeding record
// @Tags        breeding-records
// @Accept      json
// @Produce     json
// @Param       id path string true "Breeding record ID"
// @Param       request body BreedingRecordRequest true "Breeding record"
// @Success     200 {object} models.BreedingRecord "Updated breeding record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Breeding record not found"
// @Router      /breeding-records/{id} [put]
func (h *BreedingRecordHandler) UpdateBreedingRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BreedingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.UpdateBreedingRecord(recordID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_BREEDING_RECORD", "breeding_record", recordID, c.ClientIP(),
		map[string]interface{}{"status": record.Status})

	c.JSON(http.StatusOK, gin.H{"breeding_record": record})
}

// DeleteBreedingRecord handles deleting a breeding record
// @Summary     Delete breeding record
// @Tags        breeding-records
// @Produce     json
// @Param       id path string true "Breeding record ID"
// @Success     200 {object} MessageResponse "Breeding record deleted"
// @Failure     404 {object} ErrorResponse "Breeding record not found"
// @Router      /breeding-records/{id} [delete]
func (h *BreedingRecordHandler) DeleteBreedingRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recordService.DeleteBreedingRecord(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BREEDING_RECORD", "breeding_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Breeding record deleted successfully"})
}
