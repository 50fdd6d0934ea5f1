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

// HealthHandler handles health records.
type HealthHandler struct {
	healthService services.HealthServicer
	auditService  services.AuditServicer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService services.HealthServicer, auditService services.AuditServicer) *HealthHandler {
	return &HealthHandler{healthService: healthService, auditService: auditService}
}

// HealthRecordRequest represents the request payload for creating or replacing a health record.
// The target animal is ignored on update.
type HealthRecordRequest struct {
	TargetRequest
	HealthIssue       string          `json:"health_issue" binding:"required,min=1,max=200"`
	TreatmentGiven    string          `json:"treatment_given" binding:"max=200"`
	Dosage            string          `json:"dosage" binding:"max=100"`
	TreatmentDate     string          `json:"treatment_date" binding:"required"`
	NextTreatmentDate *string         `json:"next_treatment_date"`
	Status            string          `json:"status" binding:"omitempty,health_status"`
	Cost              decimal.Decimal `json:"cost" binding:"gte=0"`
	Note              string          `json:"note" binding:"max=1000"`
}

func (r HealthRecordRequest) input() (services.HealthRecordInput, error) {
	treatment, err := parseDate("treatment_date", r.TreatmentDate)
	if err != nil {
		return services.HealthRecordInput{}, err
	}
	next, err := parseOptionalDate("next_treatment_date", r.NextTreatmentDate)
	if err != nil {
		return services.HealthRecordInput{}, err
	}
	return services.HealthRecordInput{
		HealthIssue:       r.HealthIssue,
		TreatmentGiven:    r.TreatmentGiven,
		Dosage:            r.Dosage,
		TreatmentDate:     treatment,
		NextTreatmentDate: next,
		Status:            models.HealthStatus(r.Status),
		Cost:              r.Cost,
		Note:              r.Note,
	}, nil
}

// CreateHealthRecord handles recording a treatment
// @Summary     Record treatment
// @Tags        health
// @Accept      json
// @Produce     json
// @Param       request body HealthRecordRequest true "Health record"
// @Success     201 {object} models.HealthRecord "Health record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Animal not found"
// @Failure     409 {object} ErrorResponse "Animal inactive"
// @Router      /health-records [post]
func (h *HealthHandler) CreateHealthRecord(c *gin.Context) {
	var req HealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	target, err := req.Ref()
	if err != nil {
		respondWithError(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}
	input.Target = target

	record, err := h.healthService.CreateHealthRecord(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_HEALTH_RECORD", "health_record", record.ID, c.ClientIP(),
		map[string]interface{}{"health_issue": record.HealthIssue, "cost": record.Cost.String()})

	c.JSON(http.StatusCreated, gin.H{"health_record": record})
}

// GetHealthRecords handles listing health records
// @Summary     List health records
// @Tags        health
// @Produce     json
// @Param       kind      query string false "breeding_stock or offspring"
// @Param       animal_id query string false "Filter by animal"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.HealthRecord] "Paginated health records"
// @Router      /health-records [get]
func (h *HealthHandler) GetHealthRecords(c *gin.Context) {
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

	result, err := h.healthService.GetHealthRecords(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHealthRecordByID handles the retrieval of one health record
// @Summary     Get health record by ID
// @Tags        health
// @Produce     json
// @Param       id path string true "Health record ID"
// @Success     200 {object} models.HealthRecord "Health record"
// @Failure     404 {object} ErrorResponse "Health record not found"
// @Router      /health-records/{id} [get]
func (h *HealthHandler) GetHealthRecordByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.healthService.GetHealthRecordByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health_record": record})
}

// UpdateHealthRecord handles replacing a health record
// @Summary     Update health record
// @Tags        health
// @Accept      json
// @Produce     json
// @Param       id path string true "Health record ID"
// @Param       request body HealthRecordRequest true "Health record"
// @Success     200 {object} models.HealthRecord "Updated health record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Health record not found"
// @Router      /health-records/{id} [put]
func (h *HealthHandler) UpdateHealthRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.healthService.UpdateHealthRecord(recordID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_HEALTH_RECORD", "health_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"health_record": record})
}

// DeleteHealthRecord handles deleting a health record
// @Summary     Delete health record
// @Tags        health
// @Produce     json
// @Param       id path string true "Health record ID"
// @Success     200 {object} MessageResponse "Health record deleted"
// @Failure     404 {object} ErrorResponse "Health record not found"
// @Router      /health-records/{id} [delete]
func (h *HealthHandler) DeleteHealthRecord(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.healthService.DeleteHealthRecord(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_HEALTH_RECORD", "health_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Health record deleted successfully"})
}
