package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// OffspringHandler handles offspring requests.
type OffspringHandler struct {
	offspringService services.OffspringServicer
	auditService     services.AuditServicer
}

// NewOffspringHandler creates a new OffspringHandler.
func NewOffspringHandler(offspringService services.OffspringServicer, auditService services.AuditServicer) *OffspringHandler {
	return &OffspringHandler{offspringService: offspringService, auditService: auditService}
}

// CreateOffspringRequest represents the request payload for recording a birth
type CreateOffspringRequest struct {
	BreedingStockID  string          `json:"breeding_stock_id" binding:"required,uuid"`
	BirthDate        string          `json:"birth_date" binding:"required"`
	InitialWeight    decimal.Decimal `json:"initial_weight" binding:"gt=0"`
	BreedingMethodID *string         `json:"breeding_method_id" binding:"omitempty,uuid"`
}

// UpdateOffspringRequest represents the request payload for updating an offspring
type UpdateOffspringRequest struct {
	BirthDate        *string          `json:"birth_date"`
	InitialWeight    *decimal.Decimal `json:"initial_weight" binding:"omitempty,gt=0"`
	BreedingMethodID *string          `json:"breeding_method_id" binding:"omitempty,uuid"`
}

// CreateOffspring handles recording a newborn
// @Summary     Record offspring
// @Description Record a piglet born to a breeding animal. The name is generated from the parent and birth date.
// @Tags        offspring
// @Accept      json
// @Produce     json
// @Param       request body CreateOffspringRequest true "Offspring details"
// @Success     201 {object} models.Offspring "Offspring created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Parent not found"
// @Failure     409 {object} ErrorResponse "Parent inactive"
// @Router      /offspring [post]
func (h *OffspringHandler) CreateOffspring(c *gin.Context) {
	var req CreateOffspringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	birthDate, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	offspring, err := h.offspringService.CreateOffspring(req.BreedingStockID, birthDate, req.InitialWeight, req.BreedingMethodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_OFFSPRING", "offspring", offspring.ID, c.ClientIP(),
		map[string]interface{}{"name": offspring.Name, "breeding_stock_id": req.BreedingStockID})

	c.JSON(http.StatusCreated, gin.H{"offspring": offspring})
}

// GetOffspring handles listing offspring
// @Summary     List offspring
// @Tags        offspring
// @Produce     json
// @Param       status            query string false "active or inactive"
// @Param       breeding_stock_id query string false "Filter by parent"
// @Param       page              query int    false "Page number (default 1)"
// @Param       page_size         query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Offspring] "Paginated offspring"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /offspring [get]
func (h *OffspringHandler) GetOffspring(c *gin.Context) {
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

	result, err := h.offspringService.GetOffspring(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOffspringByID handles the retrieval of one offspring
// @Summary     Get offspring by ID
// @Description Get an offspring with its lifetime cost breakdown
// @Tags        offspring
// @Produce     json
// @Param       id path string true "Offspring ID"
// @Success     200 {object} services.OffspringDetail "Offspring details"
// @Failure     404 {object} ErrorResponse "Offspring not found"
// @Router      /offspring/{id} [get]
func (h *OffspringHandler) GetOffspringByID(c *gin.Context) {
	offspringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.offspringService.GetOffspringByID(offspringID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offspring": detail})
}

// UpdateOffspring handles updating an offspring
// @Summary     Update offspring
// @Tags        offspring
// @Accept      json
// @Produce     json
// @Param       id path string true "Offspring ID"
// @Param       request body UpdateOffspringRequest true "Updated fields"
// @Success     200 {object} models.Offspring "Updated offspring"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Offspring not found"
// @Router      /offspring/{id} [put]
func (h *OffspringHandler) UpdateOffspring(c *gin.Context) {
	offspringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateOffspringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	birthDate, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	offspring, err := h.offspringService.UpdateOffspring(offspringID, birthDate, req.InitialWeight, req.BreedingMethodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_OFFSPRING", "offspring", offspringID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"offspring": offspring})
}

// DeleteOffspring handles deleting an offspring
// @Summary     Delete offspring
// @Description Delete an offspring and its records. The parent's offspring totals are recounted.
// @Tags        offspring
// @Produce     json
// @Param       id path string true "Offspring ID"
// @Success     200 {object} MessageResponse "Offspring deleted"
// @Failure     404 {object} ErrorResponse "Offspring not found"
// @Router      /offspring/{id} [delete]
func (h *OffspringHandler) DeleteOffspring(c *gin.Context) {
	offspringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.offspringService.DeleteOffspring(offspringID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_OFFSPRING", "offspring", offspringID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Offspring deleted successfully"})
}
