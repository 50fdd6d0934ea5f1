package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// BreedingMethodHandler handles the insemination method catalog.
type BreedingMethodHandler struct {
	methodService services.BreedingMethodServicer
	auditService  services.AuditServicer
}

// NewBreedingMethodHandler creates a new BreedingMethodHandler.
func NewBreedingMethodHandler(methodService services.BreedingMethodServicer, auditService services.AuditServicer) *BreedingMethodHandler {
	return &BreedingMethodHandler{methodService: methodService, auditService: auditService}
}

// CreateBreedingMethodRequest represents the request payload for creating a breeding method
type CreateBreedingMethodRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateBreedingMethodRequest represents the request payload for updating a breeding method
type UpdateBreedingMethodRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CreateBreedingMethod handles the creation of a breeding method
// @Summary     Create a breeding method
// @Tags        breeding-methods
// @Accept      json
// @Produce     json
// @Param       request body CreateBreedingMethodRequest true "Method details"
// @Success     201 {object} models.BreedingMethod "Method created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /breeding-methods [post]
func (h *BreedingMethodHandler) CreateBreedingMethod(c *gin.Context) {
	var req CreateBreedingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.methodService.CreateBreedingMethod(req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_BREEDING_METHOD", "breeding_method", method.ID, c.ClientIP(),
		map[string]interface{}{"name": method.Name})

	c.JSON(http.StatusCreated, gin.H{"breeding_method": method})
}

// GetBreedingMethods handles listing breeding methods
// @Summary     List breeding methods
// @Tags        breeding-methods
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BreedingMethod] "Paginated methods"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /breeding-methods [get]
func (h *BreedingMethodHandler) GetBreedingMethods(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.methodService.GetBreedingMethods(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBreedingMethodByID handles the retrieval of a breeding method
// @Summary     Get breeding method by ID
// @Tags        breeding-methods
// @Produce     json
// @Param       id path string true "Method ID"
// @Success     200 {object} models.BreedingMethod "Method details"
// @Failure     400 {object} ErrorResponse "Invalid method ID"
// @Failure     404 {object} ErrorResponse "Method not found"
// @Router      /breeding-methods/{id} [get]
func (h *BreedingMethodHandler) GetBreedingMethodByID(c *gin.Context) {
	methodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	method, err := h.methodService.GetBreedingMethodByID(methodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeding_method": method})
}

// UpdateBreedingMethod handles updating a breeding method
// @Summary     Update breeding method
// @Tags        breeding-methods
// @Accept      json
// @Produce     json
// @Param       id path string true "Method ID"
// @Param       request body UpdateBreedingMethodRequest true "Updated method"
// @Success     200 {object} models.BreedingMethod "Updated method"
// @Failure     400 {object} ErrorResponse "Invalid input or method ID"
// @Failure     404 {object} ErrorResponse "Method not found"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /breeding-methods/{id} [put]
func (h *BreedingMethodHandler) UpdateBreedingMethod(c *gin.Context) {
	methodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBreedingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	method, err := h.methodService.UpdateBreedingMethod(methodID, name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_BREEDING_METHOD", "breeding_method", methodID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"breeding_method": method})
}

// DeleteBreedingMethod handles deleting an unused breeding method
// @Summary     Delete breeding method
// @Tags        breeding-methods
// @Produce     json
// @Param       id path string true "Method ID"
// @Success     200 {object} MessageResponse "Method deleted"
// @Failure     404 {object} ErrorResponse "Method not found"
// @Failure     409 {object} ErrorResponse "Method in use"
// @Router      /breeding-methods/{id} [delete]
func (h *BreedingMethodHandler) DeleteBreedingMethod(c *gin.Context) {
	methodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.methodService.DeleteBreedingMethod(methodID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BREEDING_METHOD", "breeding_method", methodID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Breeding method deleted successfully"})
}
