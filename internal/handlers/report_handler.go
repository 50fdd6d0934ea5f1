package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"farmledger/internal/services"
)

// ReportHandler serves the read-only reports.
type ReportHandler struct {
	reportService services.ReportServicer
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, now: time.Now}
}

// GetDashboard handles the landing page summary
// @Summary     Dashboard
// @Description Herd counts, low feed stocks, overdue vaccinations and month-to-date income and expenses
// @Tags        reports
// @Produce     json
// @Success     200 {object} services.DashboardSummary "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	summary, err := h.reportService.GetDashboard(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": summary})
}

// GetFinanceReport handles the income and expense report
// @Summary     Finance report
// @Description Incomes, sales included, and expenses for a period. custom needs both from_date and to_date.
// @Tags        reports
// @Produce     json
// @Param       period    query string false "week (default), month, custom or all"
// @Param       from_date query string false "Start date for custom (YYYY-MM-DD)"
// @Param       to_date   query string false "End date for custom (YYYY-MM-DD)"
// @Success     200 {object} services.FinanceReport "Finance report"
// @Failure     400 {object} ErrorResponse "Invalid period or dates"
// @Router      /reports/finance [get]
func (h *ReportHandler) GetFinanceReport(c *gin.Context) {
	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetFinanceReport(services.ReportPeriod(c.Query("period")), dates, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetFeedingCostReport handles the feed cost per animal report
// @Summary     Feeding cost report
// @Tags        reports
// @Produce     json
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array} services.FeedingCostLine "Feeding cost per animal"
// @Failure     400 {object} ErrorResponse "Invalid dates"
// @Router      /reports/feeding-costs [get]
func (h *ReportHandler) GetFeedingCostReport(c *gin.Context) {
	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	lines, err := h.reportService.GetFeedingCostReport(dates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

// GetBirthsReport handles the births per breeding animal report
// @Summary     Births report
// @Tags        reports
// @Produce     json
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array} services.BirthsLine "Births per breeding animal"
// @Failure     400 {object} ErrorResponse "Invalid dates"
// @Router      /reports/births [get]
func (h *ReportHandler) GetBirthsReport(c *gin.Context) {
	dates, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	lines, err := h.reportService.GetBirthsReport(dates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lines": lines})
}
