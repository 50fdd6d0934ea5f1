package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// AnimalStatusHandler handles taking animals out of and back into the herd.
type AnimalStatusHandler struct {
	statusService services.AnimalStatusServicer
	auditService  services.AuditServicer
}

// NewAnimalStatusHandler creates a new AnimalStatusHandler.
func NewAnimalStatusHandler(statusService services.AnimalStatusServicer, auditService services.AuditServicer) *AnimalStatusHandler {
	return &AnimalStatusHandler{statusService: statusService, auditService: auditService}
}

// MarkInactiveRequest represents the request payload for retiring an animal
type MarkInactiveRequest struct {
	Reason string  `json:"reason" binding:"required,min=1,max=200"`
	Date   *string `json:"date"`
}

// MarkInactive handles retiring an animal
// @Summary     Mark animal inactive
// @Description Retire a breeding animal or offspring with a reason, for example culled or died
// @Tags        animals
// @Accept      json
// @Produce     json
// @Param       kind path string true "breeding_stock or offspring"
// @Param       id   path string true "Animal ID"
// @Param       request body MarkInactiveRequest true "Reason"
// @Success     200 {object} models.InactiveAnimal "Inactive log entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Animal not found"
// @Failure     409 {object} ErrorResponse "Animal already inactive"
// @Router      /animals/{kind}/{id}/inactive [post]
func (h *AnimalStatusHandler) MarkInactive(c *gin.Context) {
	kind, animalID, err := parseAnimalPath(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MarkInactiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDateOrNow("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.statusService.MarkInactive(kind, animalID, req.Reason, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("MARK_INACTIVE", string(kind), animalID, c.ClientIP(),
		map[string]interface{}{"reason": entry.Reason})

	c.JSON(http.StatusOK, gin.H{"inactive_animal": entry})
}

// Reactivate handles returning an animal to the active herd
// @Summary     Reactivate animal
// @Tags        animals
// @Produce     json
// @Param       kind path string true "breeding_stock or offspring"
// @Param       id   path string true "Animal ID"
// @Success     200 {object} MessageResponse "Animal reactivated"
// @Failure     404 {object} ErrorResponse "Animal not found"
// @Failure     409 {object} ErrorResponse "Animal already active"
// @Router      /animals/{kind}/{id}/reactivate [post]
func (h *AnimalStatusHandler) Reactivate(c *gin.Context) {
	kind, animalID, err := parseAnimalPath(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.statusService.Reactivate(kind, animalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("REACTIVATE", string(kind), animalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Animal reactivated successfully"})
}

// GetInactiveAnimals handles listing the inactive log
// @Summary     List inactive animals
// @Tags        animals
// @Produce     json
// @Param       kind      query string false "breeding_stock or offspring"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.InactiveAnimal] "Paginated inactive log"
// @Router      /inactive-animals [get]
func (h *AnimalStatusHandler) GetInactiveAnimals(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var kind *models.AnimalKind
	if v := c.Query("kind"); v != "" {
		k, err := parseAnimalKind(v)
		if err != nil {
			respondWithError(c, err)
			return
		}
		kind = &k
	}

	result, err := h.statusService.GetInactiveAnimals(page, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseAnimalPath(c *gin.Context) (models.AnimalKind, string, error) {
	kind, err := parseAnimalKind(c.Param("kind"))
	if err != nil {
		return "", "", err
	}
	animalID, err := parsePathID(c, "id")
	if err != nil {
		return "", "", err
	}
	return kind, animalID, nil
}
