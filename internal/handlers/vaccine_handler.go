package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// VaccineHandler handles the vaccine catalog.
type VaccineHandler struct {
	vaccineService services.VaccineServicer
	auditService   services.AuditServicer
}

// NewVaccineHandler creates a new VaccineHandler.
func NewVaccineHandler(vaccineService services.VaccineServicer, auditService services.AuditServicer) *VaccineHandler {
	return &VaccineHandler{vaccineService: vaccineService, auditService: auditService}
}

// CreateVaccineRequest represents the request payload for adding a vaccine
type CreateVaccineRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=500"`
	DurationDays int    `json:"duration_days" binding:"required,gte=1"`
}

// UpdateVaccineRequest represents the request payload for updating a vaccine
type UpdateVaccineRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	DurationDays *int    `json:"duration_days" binding:"omitempty,gte=1"`
}

// CreateVaccine handles adding a vaccine
// @Summary     Create vaccine
// @Description Add a vaccine with the number of days one dose protects for
// @Tags        vaccines
// @Accept      json
// @Produce     json
// @Param       request body CreateVaccineRequest true "Vaccine details"
// @Success     201 {object} models.Vaccine "Vaccine created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /vaccines [post]
func (h *VaccineHandler) CreateVaccine(c *gin.Context) {
	var req CreateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vaccine, err := h.vaccineService.CreateVaccine(req.Name, req.Description, req.DurationDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_VACCINE", "vaccine", vaccine.ID, c.ClientIP(),
		map[string]interface{}{"name": vaccine.Name, "duration_days": vaccine.DurationDays})

	c.JSON(http.StatusCreated, gin.H{"vaccine": vaccine})
}

// GetVaccines handles listing vaccines
// @Summary     List vaccines
// @Tags        vaccines
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Vaccine] "Paginated vaccines"
// @Router      /vaccines [get]
func (h *VaccineHandler) GetVaccines(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.vaccineService.GetVaccines(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVaccineByID handles the retrieval of one vaccine
// @Summary     Get vaccine by ID
// @Tags        vaccines
// @Produce     json
// @Param       id path string true "Vaccine ID"
// @Success     200 {object} models.Vaccine "Vaccine"
// @Failure     404 {object} ErrorResponse "Vaccine not found"
// @Router      /vaccines/{id} [get]
func (h *VaccineHandler) GetVaccineByID(c *gin.Context) {
	vaccineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	vaccine, err := h.vaccineService.GetVaccineByID(vaccineID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vaccine": vaccine})
}

// UpdateVaccine handles updating a vaccine
// @Summary     Update vaccine
// @Tags        vaccines
// @Accept      json
// @Produce     json
// @Param       id path string true "Vaccine ID"
// @Param       request body UpdateVaccineRequest true "Updated fields"
// @Success     200 {object} models.Vaccine "Updated vaccine"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vaccine not found"
// @Router      /vaccines/{id} [put]
func (h *VaccineHandler) UpdateVaccine(c *gin.Context) {
	vaccineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	vaccine, err := h.vaccineService.UpdateVaccine(vaccineID, name, req.Description, req.DurationDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_VACCINE", "vaccine", vaccineID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"vaccine": vaccine})
}

// DeleteVaccine handles deleting an unused vaccine
// @Summary     Delete vaccine
// @Tags        vaccines
// @Produce     json
// @Param       id path string true "Vaccine ID"
// @Success     200 {object} MessageResponse "Vaccine deleted"
// @Failure     404 {object} ErrorResponse "Vaccine not found"
// @Failure     409 {object} ErrorResponse "Vaccine in use"
// @Router      /vaccines/{id} [delete]
func (h *VaccineHandler) DeleteVaccine(c *gin.Context) {
	vaccineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.vaccineService.DeleteVaccine(vaccineID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_VACCINE", "vaccine", vaccineID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Vaccine deleted successfully"})
}
