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

// LedgerHandler handles manual income and expense entries.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, auditService: auditService}
}

// CreateIncomeRequest represents the request payload for recording income
type CreateIncomeRequest struct {
	Date        string          `json:"date" binding:"required"`
	Source      string          `json:"source" binding:"omitempty,income_source"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
}

// UpdateIncomeRequest represents the request payload for updating an income entry
type UpdateIncomeRequest struct {
	Date        *string          `json:"date"`
	Source      *string          `json:"source" binding:"omitempty,income_source"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
}

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"omitempty,expense_category"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
}

// UpdateExpenseRequest represents the request payload for updating an expense entry
type UpdateExpenseRequest struct {
	Date        *string          `json:"date"`
	Category    *string          `json:"category" binding:"omitempty,expense_category"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
}

// CreateIncome handles recording income
// @Summary     Record income
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body CreateIncomeRequest true "Income entry"
// @Success     201 {object} models.IncomeRecord "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /incomes [post]
func (h *LedgerHandler) CreateIncome(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.ledgerService.CreateIncome(date, models.IncomeSource(req.Source), req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_INCOME", "income", income.ID, c.ClientIP(),
		map[string]interface{}{"source": income.Source, "amount": income.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes handles listing income entries
// @Summary     List incomes
// @Tags        ledger
// @Produce     json
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeRecord] "Paginated incomes"
// @Router      /incomes [get]
func (h *LedgerHandler) GetIncomes(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.GetIncomes(page, dates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncomeByID handles the retrieval of one income entry
// @Summary     Get income by ID
// @Tags        ledger
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} models.IncomeRecord "Income entry"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /incomes/{id} [get]
func (h *LedgerHandler) GetIncomeByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.ledgerService.GetIncomeByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome handles updating an income entry
// @Summary     Update income
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id path string true "Income ID"
// @Param       request body UpdateIncomeRequest true "Updated fields"
// @Success     200 {object} models.IncomeRecord "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /incomes/{id} [put]
func (h *LedgerHandler) UpdateIncome(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var source *models.IncomeSource
	if req.Source != nil {
		s := models.IncomeSource(*req.Source)
		source = &s
	}

	income, err := h.ledgerService.UpdateIncome(recordID, date, source, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_INCOME", "income", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome handles deleting an income entry
// @Summary     Delete income
// @Tags        ledger
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /incomes/{id} [delete]
func (h *LedgerHandler) DeleteIncome(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteIncome(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_INCOME", "income", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}

// CreateExpense handles recording an expense
// @Summary     Record expense
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense entry"
// @Success     201 {object} models.ExpenseRecord "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [post]
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.ledgerService.CreateExpense(date, models.ExpenseCategory(req.Category), req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": expense.Category, "amount": expense.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing expense entries
// @Summary     List expenses
// @Tags        ledger
// @Produce     json
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ExpenseRecord] "Paginated expenses"
// @Router      /expenses [get]
func (h *LedgerHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.GetExpenses(page, dates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of one expense entry
// @Summary     Get expense by ID
// @Tags        ledger
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.ExpenseRecord "Expense entry"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *LedgerHandler) GetExpenseByID(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.ledgerService.GetExpenseByID(recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense entry
// @Summary     Update expense
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id path string true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Updated fields"
// @Success     200 {object} models.ExpenseRecord "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *LedgerHandler) UpdateExpense(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var category *models.ExpenseCategory
	if req.Category != nil {
		v := models.ExpenseCategory(*req.Category)
		category = &v
	}

	expense, err := h.ledgerService.UpdateExpense(recordID, date, category, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_EXPENSE", "expense", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense entry
// @Summary     Delete expense
// @Tags        ledger
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *LedgerHandler) DeleteExpense(c *gin.Context) {
	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteExpense(recordID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSE", "expense", recordID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
