package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// --- mock weight service ---

type mockWeightService struct {
	createWeightRecordFn  func(target models.AnimalRef, recordedDate time.Time, weight decimal.Decimal) (*models.WeightRecord, error)
	getWeightRecordsFn    func(page pagination.PageRequest, filter services.RecordFilter) (*pagination.PageResponse[models.WeightRecord], error)
	getWeightRecordByIDFn func(recordID string) (*models.WeightRecord, error)
	updateWeightRecordFn  func(recordID string, recordedDate *time.Time, weight *decimal.Decimal) (*models.WeightRecord, error)
	deleteWeightRecordFn  func(recordID string) error
}

func (m *mockWeightService) CreateWeightRecord(target models.AnimalRef, recordedDate time.Time, weight decimal.Decimal) (*models.WeightRecord, error) {
	if m.createWeightRecordFn != nil {
		return m.createWeightRecordFn(target, recordedDate, weight)
	}
	return &models.WeightRecord{}, nil
}

func (m *mockWeightService) GetWeightRecords(page pagination.PageRequest, filter services.RecordFilter) (*pagination.PageResponse[models.WeightRecord], error) {
	if m.getWeightRecordsFn != nil {
		return m.getWeightRecordsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.WeightRecord{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockWeightService) GetWeightRecordByID(recordID string) (*models.WeightRecord, error) {
	if m.getWeightRecordByIDFn != nil {
		return m.getWeightRecordByIDFn(recordID)
	}
	return &models.WeightRecord{}, nil
}

func (m *mockWeightService) UpdateWeightRecord(recordID string, recordedDate *time.Time, weight *decimal.Decimal) (*models.WeightRecord, error) {
	if m.updateWeightRecordFn != nil {
		return m.updateWeightRecordFn(recordID, recordedDate, weight)
	}
	return &models.WeightRecord{}, nil
}

func (m *mockWeightService) DeleteWeightRecord(recordID string) error {
	if m.deleteWeightRecordFn != nil {
		return m.deleteWeightRecordFn(recordID)
	}
	return nil
}

var _ services.WeightServicer = (*mockWeightService)(nil)

func setupWeightRouter(handler *WeightHandler) *gin.Engine {
	r := gin.New()
	r.POST("/weight-records", handler.CreateWeightRecord)
	r.GET("/weight-records", handler.GetWeightRecords)
	r.GET("/weight-records/:id", handler.GetWeightRecordByID)
	r.PUT("/weight-records/:id", handler.UpdateWeightRecord)
	r.DELETE("/weight-records/:id", handler.DeleteWeightRecord)
	return r
}

func TestWeightHandler_CreateWeightRecord(t *testing.T) {
	t.Run("returns 201 with the trend", func(t *testing.T) {
		svc := &mockWeightService{
			createWeightRecordFn: func(target models.AnimalRef, _ time.Time, weight decimal.Decimal) (*models.WeightRecord, error) {
				return &models.WeightRecord{
					Base:       models.Base{ID: testOtherID},
					AnimalRef:  target,
					Weight:     weight,
					Difference: weight.Sub(decimal.NewFromInt(10)),
					Trend:      models.WeightTrendIncreased,
				}, nil
			},
		}
		r := setupWeightRouter(NewWeightHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/weight-records",
			`{"offspring_id":"`+testID+`","recorded_date":"2024-05-20","weight":12.5}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		record := parseJSON(t, rec)["weight_record"].(map[string]interface{})
		if record["trend"] != "increased" {
			t.Errorf("expected increased, got %v", record["trend"])
		}
		if record["difference"] != "2.5" {
			t.Errorf("expected difference 2.5, got %v", record["difference"])
		}
	})

	t.Run("returns 400 on non-positive weight", func(t *testing.T) {
		r := setupWeightRouter(NewWeightHandler(&mockWeightService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/weight-records", `{"offspring_id":"`+testID+`","weight":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on inactive animal", func(t *testing.T) {
		svc := &mockWeightService{
			createWeightRecordFn: func(models.AnimalRef, time.Time, decimal.Decimal) (*models.WeightRecord, error) {
				return nil, apperrors.ErrAnimalInactive
			},
		}
		r := setupWeightRouter(NewWeightHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/weight-records", `{"breeding_stock_id":"`+testID+`","weight":180}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestWeightHandler_UpdateWeightRecord(t *testing.T) {
	t.Run("passes only the weight", func(t *testing.T) {
		svc := &mockWeightService{
			updateWeightRecordFn: func(_ string, date *time.Time, weight *decimal.Decimal) (*models.WeightRecord, error) {
				if date != nil {
					t.Errorf("expected nil date, got %v", date)
				}
				if weight == nil || !weight.Equal(decimal.NewFromInt(14)) {
					t.Errorf("expected weight 14, got %v", weight)
				}
				return &models.WeightRecord{Weight: *weight}, nil
			},
		}
		r := setupWeightRouter(NewWeightHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/weight-records/"+testID, `{"weight":14}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestWeightHandler_DeleteWeightRecord(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockWeightService{
			deleteWeightRecordFn: func(string) error { return apperrors.ErrWeightRecordNotFound },
		}
		r := setupWeightRouter(NewWeightHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/weight-records/"+testID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "WEIGHT_RECORD_NOT_FOUND")
	})
}
