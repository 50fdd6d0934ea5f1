package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// VaccinationHandler handles vaccination records.
type VaccinationHandler struct {
	vaccinationService services.VaccinationServicer
	auditService       services.AuditServicer
}

// NewVaccinationHandler creates a new VaccinationHandler.
func NewVaccinationHandler(vaccinationService services.VaccinationServicer, auditService services.AuditServicer) *VaccinationHandler {
	return &VaccinationHandler{vaccinationService: vaccinationService, auditService: auditService}
}

// AssignVaccinationRequest represents the request payload for vaccinating an animal
type AssignVaccinationRequest struct {
	TargetRequest
	VaccineID       string          `json:"vaccine_id" binding:"required,uuid"`
	VaccinationDate *string         `json:"vaccination_date"`
	Cost            decimal.Decimal `json:"cost" binding:"gte=0"`
}

// UpdateVaccinationRequest represents the request payload for correcting a vaccination
type UpdateVaccinationRequest struct {
	VaccinationDate *string          `json:"vaccination_date"`
	Cost            *decimal.Decimal `json:"cost" binding:"omitempty,gte=0"`
}

// AssignVaccination handles vaccinating an animal
// @Summary     Vaccinate animal
// @Description Record a dose. Rejected while the previous dose of the same vaccine is still protecting the animal.
// @Tags        vaccinations
// @Accept      json
// @Produce     json
// @Param       request body AssignVaccinationRequest true "Vaccination details"
// @Success     201 {object} models.VaccinationRecord "Vaccination recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Animal or vaccine not found"
// @Failure     409 {object} ErrorResponse "Vaccination not due or animal inactive"
// @Router      /vaccinations [post]
func (h *VaccinationHandler) AssignVaccination(c *gin.Context) {
	var req AssignVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	target, err := req.Ref()
	if err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseOptionalDate("vaccination_date", req.VaccinationDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var vaccinationDate time.Time
	if date != nil {
		vaccinationDate = *date
	}

	record, err := h.vaccinationService.AssignVaccination(target, req.VaccineID, vaccinationDate, req.Cost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("ASSIGN_VACCINATION", "vaccination_record", record.ID, c.ClientIP(),
		map[string]interface{}{"vaccine_id": req.VaccineID, "animal_id": target.TargetID()})

	c.JSON(http.StatusCreated, gin.H{"vaccination": record})
}

// GetVaccinations handles listing vaccination records
// @Summary     List vaccinations
// @Tags        vaccinations
// @Produce     json
// @Param       kind      query string false "breeding_stock or offspring"
// @Param       animal_id query string false "Filter by animal"
// @Param       status    query string false "vaccinated, overdue or done"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.VaccinationRecord] "Paginated vaccinations"
// @Router      /vaccinations [get]
func (h *VaccinationHandler) GetVaccinations(c *gin.Context) {
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

	var status *models.VaccinationStatus
	if v := c.Query("status"); v != "" {
		s := models.VaccinationStatus(v)
		switch s {
		case models.VaccinationStatusVaccinated, models.VaccinationStatusOverdue, models.VaccinationStatusDone:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status, must be vaccinated, overdue or done"))
			return
		}
	}

	result, err := h.vaccinationService.GetVaccinations(page, filter, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVaccinationByID handles the retrieval of one vaccination record
// @Summary     Get vaccination by ID
// @Tags        vaccinations
// @Produce     json
// @Param       id path string true "Vaccination record ID"
// @Success     200 {object} models.VaccinationRecord "Vaccination record"
// @Failure     404 {object} ErrorResponse "Vaccination record not found"
// @Router      /vaccinations/{id} [get]
func (h *VaccinationHandler) GetVaccinationByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.vaccinationService.GetVaccinationByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vaccination": record})
}

// UpdateVaccination handles correcting a vaccination record
// @Summary     Update vaccination
// @Description Correct the date or cost of a dose. The next due date and status are recomputed.
// @Tags        vaccinations
// @Accept      json
// @Produce     json
// @Param       id path string true "Vaccination record ID"
// @Param       request body UpdateVaccinationRequest true "Updated fields"
// @Success     200 {object} models.VaccinationRecord "Updated vaccination"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vaccination record not found"
// @Router      /vaccinations/{id} [put]
func (h *VaccinationHandler) UpdateVaccination(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate("vaccination_date", req.VaccinationDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.vaccinationService.UpdateVaccination(recordID, date, req.Cost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_VACCINATION", "vaccination_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"vaccination": record})
}

// DeleteVaccination handles deleting a vaccination record
// @Summary     Delete vaccination
// @Tags        vaccinations
// @Produce     json
// @Param       id path string true "Vaccination record ID"
// @Success     200 {object} MessageResponse "Vaccination deleted"
// @Failure     404 {object} ErrorResponse "Vaccination record not found"
// @Router      /vaccinations/{id} [delete]
func (h *VaccinationHandler) DeleteVaccination(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.vaccinationService.DeleteVaccination(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_VACCINATION", "vaccination_record", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Vaccination deleted successfully"})
}

// MarkOverdue handles flagging doses whose protection has lapsed
// @Summary     Mark overdue vaccinations
// @Description Flip every vaccinated record whose next due date has passed to overdue. Also run daily by the scheduler.
// @Tags        vaccinations
// @Produce     json
// @Success     200 {object} map[string]int64 "Number of records marked"
// @Router      /vaccinations/mark-overdue [post]
func (h *VaccinationHandler) MarkOverdue(c *gin.Context) {
	marked, err := h.vaccinationService.MarkOverdue(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("MARK_OVERDUE", "vaccination_record", "", c.ClientIP(),
		map[string]interface{}{"marked": marked})

	c.JSON(http.StatusOK, gin.H{"marked": marked})
}
