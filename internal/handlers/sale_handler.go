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

// SaleHandler handles animal sales.
type SaleHandler struct {
	saleService  services.SaleServicer
	auditService services.AuditServicer
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService services.SaleServicer, auditService services.AuditServicer) *SaleHandler {
	return &SaleHandler{saleService: saleService, auditService: auditService}
}

// SellAnimalRequest represents the request payload for selling an animal
type SellAnimalRequest struct {
	AnimalKind string          `json:"animal_kind" binding:"required,animal_kind"`
	AnimalID   string          `json:"animal_id" binding:"required,uuid"`
	SoldPrice  decimal.Decimal `json:"sold_price" binding:"gt=0"`
	DateSold   *string         `json:"date_sold"`
}

// SellAnimal handles selling an active animal
// @Summary     Sell an animal
// @Description Record a sale. The lifetime cost and profit are snapshotted and the animal becomes inactive.
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       request body SellAnimalRequest true "Sale details"
// @Success     201 {object} models.SoldAnimal "Sale recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Animal not found"
// @Failure     409 {object} ErrorResponse "Animal inactive"
// @Router      /sales [post]
func (h *SaleHandler) SellAnimal(c *gin.Context) {
	var req SellAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dateSold, err := parseDateOrNow("date_sold", req.DateSold)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sale, err := h.saleService.SellAnimal(models.AnimalKind(req.AnimalKind), req.AnimalID, req.SoldPrice, dateSold)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SELL_ANIMAL", "sale", sale.ID, c.ClientIP(),
		map[string]interface{}{"animal_id": req.AnimalID, "sold_price": sale.SoldPrice.String(), "profit": sale.Profit.String()})

	c.JSON(http.StatusCreated, gin.H{"sale": sale})
}

// GetSales handles listing sales
// @Summary     List sales
// @Tags        sales
// @Produce     json
// @Param       kind      query string false "breeding_stock or offspring"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SoldAnimal] "Paginated sales"
// @Router      /sales [get]
func (h *SaleHandler) GetSales(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.SaleFilter
	if v := c.Query("kind"); v != "" {
		kind, err := parseAnimalKind(v)
		if err != nil {
			respondWithError(c, err)
			return
		}
		filter.Kind = &kind
	}
	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.FromDate, filter.ToDate = dates.From, dates.To

	result, err := h.saleService.GetSales(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSaleByID handles the retrieval of one sale
// @Summary     Get sale by ID
// @Tags        sales
// @Produce     json
// @Param       id path string true "Sale ID"
// @Success     200 {object} models.SoldAnimal "Sale details"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Router      /sales/{id} [get]
func (h *SaleHandler) GetSaleByID(c *gin.Context) {
	saleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sale, err := h.saleService.GetSaleByID(saleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": sale})
}
