package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	getDashboardFn         func(now time.Time) (*services.DashboardSummary, error)
	getFinanceReportFn     func(period services.ReportPeriod, dates services.DateRange, now time.Time) (*services.FinanceReport, error)
	getFeedingCostReportFn func(dates services.DateRange) ([]services.FeedingCostLine, error)
	getBirthsReportFn      func(dates services.DateRange) ([]services.BirthsLine, error)
}

func (m *mockReportService) GetDashboard(now time.Time) (*services.DashboardSummary, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(now)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockReportService) GetFinanceReport(period services.ReportPeriod, dates services.DateRange, now time.Time) (*services.FinanceReport, error) {
	if m.getFinanceReportFn != nil {
		return m.getFinanceReportFn(period, dates, now)
	}
	return &services.FinanceReport{}, nil
}

func (m *mockReportService) GetFeedingCostReport(dates services.DateRange) ([]services.FeedingCostLine, error) {
	if m.getFeedingCostReportFn != nil {
		return m.getFeedingCostReportFn(dates)
	}
	return []services.FeedingCostLine{}, nil
}

func (m *mockReportService) GetBirthsReport(dates services.DateRange) ([]services.BirthsLine, error) {
	if m.getBirthsReportFn != nil {
		return m.getBirthsReportFn(dates)
	}
	return []services.BirthsLine{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

var reportClock = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

func setupReportRouter(svc services.ReportServicer) *gin.Engine {
	handler := NewReportHandler(svc)
	handler.now = func() time.Time { return reportClock }

	r := gin.New()
	r.GET("/reports/dashboard", handler.GetDashboard)
	r.GET("/reports/finance", handler.GetFinanceReport)
	r.GET("/reports/feeding-costs", handler.GetFeedingCostReport)
	r.GET("/reports/births", handler.GetBirthsReport)
	return r
}

func TestReportHandler_GetDashboard(t *testing.T) {
	t.Run("returns the summary", func(t *testing.T) {
		svc := &mockReportService{
			getDashboardFn: func(now time.Time) (*services.DashboardSummary, error) {
				if !now.Equal(reportClock) {
					t.Errorf("expected injected clock, got %v", now)
				}
				return &services.DashboardSummary{
					Rooms:               2,
					ActiveBreedingStock: 5,
					LowStockFeeds:       []models.FeedStock{{Name: "Sow mash"}},
					MonthToDateNet:      decimal.NewFromInt(90),
				}, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		dashboard := parseJSON(t, rec)["dashboard"].(map[string]interface{})
		if dashboard["active_breeding_stock"].(float64) != 5 {
			t.Errorf("expected 5 active stock, got %v", dashboard["active_breeding_stock"])
		}
		if dashboard["month_to_date_net"] != "90" {
			t.Errorf("expected net 90, got %v", dashboard["month_to_date_net"])
		}
	})
}

func TestReportHandler_GetFinanceReport(t *testing.T) {
	t.Run("passes period and custom range", func(t *testing.T) {
		svc := &mockReportService{
			getFinanceReportFn: func(period services.ReportPeriod, dates services.DateRange, _ time.Time) (*services.FinanceReport, error) {
				if period != services.ReportPeriodCustom {
					t.Errorf("expected custom period, got %s", period)
				}
				if dates.From == nil || dates.To == nil {
					t.Fatalf("expected both dates, got %v %v", dates.From, dates.To)
				}
				return &services.FinanceReport{
					Period:      period,
					TotalIncome: decimal.NewFromInt(100),
					NetBalance:  decimal.NewFromInt(60),
				}, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/finance?period=custom&from_date=2024-05-01&to_date=2024-05-10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		report := parseJSON(t, rec)["report"].(map[string]interface{})
		if report["net_balance"] != "60" {
			t.Errorf("expected net 60, got %v", report["net_balance"])
		}
	})

	t.Run("surfaces invalid period from service", func(t *testing.T) {
		svc := &mockReportService{
			getFinanceReportFn: func(services.ReportPeriod, services.DateRange, time.Time) (*services.FinanceReport, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown period")
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/finance?period=decade", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on reversed range", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})

		rec := doRequest(r, "GET", "/reports/finance?period=custom&from_date=2024-05-10&to_date=2024-05-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetFeedingCostReport(t *testing.T) {
	t.Run("returns the lines", func(t *testing.T) {
		svc := &mockReportService{
			getFeedingCostReportFn: func(services.DateRange) ([]services.FeedingCostLine, error) {
				return []services.FeedingCostLine{
					{Kind: models.AnimalKindBreedingStock, AnimalID: testID, Name: "A1-1", Quantity: decimal.NewFromInt(7), Cost: decimal.NewFromInt(14)},
				}, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/feeding-costs", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		lines := parseJSON(t, rec)["lines"].([]interface{})
		if len(lines) != 1 || lines[0].(map[string]interface{})["cost"] != "14" {
			t.Errorf("unexpected lines %v", lines)
		}
	})
}

func TestReportHandler_GetBirthsReport(t *testing.T) {
	t.Run("returns the lines", func(t *testing.T) {
		svc := &mockReportService{
			getBirthsReportFn: func(dates services.DateRange) ([]services.BirthsLine, error) {
				if dates.From == nil {
					t.Error("expected from date")
				}
				return []services.BirthsLine{{BreedingStockID: testID, Name: "A1-1", Offspring: 3, BirthEvents: 2}}, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/births?from_date=2024-01-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		line := parseJSON(t, rec)["lines"].([]interface{})[0].(map[string]interface{})
		if line["offspring"].(float64) != 3 || line["birth_events"].(float64) != 2 {
			t.Errorf("unexpected line %v", line)
		}
	})
}
