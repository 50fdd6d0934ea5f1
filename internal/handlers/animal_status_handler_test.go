package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// --- mock animal status service ---

type mockAnimalStatusService struct {
	markInactiveFn       func(kind models.AnimalKind, animalID, reason string, date time.Time) (*models.InactiveAnimal, error)
	reactivateFn         func(kind models.AnimalKind, animalID string) error
	getInactiveAnimalsFn func(page pagination.PageRequest, kind *models.AnimalKind) (*pagination.PageResponse[models.InactiveAnimal], error)
}

func (m *mockAnimalStatusService) MarkInactive(kind models.AnimalKind, animalID, reason string, date time.Time) (*models.InactiveAnimal, error) {
	if m.markInactiveFn != nil {
		return m.markInactiveFn(kind, animalID, reason, date)
	}
	return &models.InactiveAnimal{}, nil
}

func (m *mockAnimalStatusService) Reactivate(kind models.AnimalKind, animalID string) error {
	if m.reactivateFn != nil {
		return m.reactivateFn(kind, animalID)
	}
	return nil
}

func (m *mockAnimalStatusService) GetInactiveAnimals(page pagination.PageRequest, kind *models.AnimalKind) (*pagination.PageResponse[models.InactiveAnimal], error) {
	if m.getInactiveAnimalsFn != nil {
		return m.getInactiveAnimalsFn(page, kind)
	}
	resp := pagination.NewPageResponse([]models.InactiveAnimal{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AnimalStatusServicer = (*mockAnimalStatusService)(nil)

func setupAnimalStatusRouter(handler *AnimalStatusHandler) *gin.Engine {
	r := gin.New()
	r.POST("/animals/:kind/:id/inactive", handler.MarkInactive)
	r.POST("/animals/:kind/:id/reactivate", handler.Reactivate)
	r.GET("/inactive-animals", handler.GetInactiveAnimals)
	return r
}

func TestAnimalStatusHandler_MarkInactive(t *testing.T) {
	t.Run("returns 200 with the log entry", func(t *testing.T) {
		svc := &mockAnimalStatusService{
			markInactiveFn: func(kind models.AnimalKind, animalID, reason string, date time.Time) (*models.InactiveAnimal, error) {
				if kind != models.AnimalKindOffspring {
					t.Errorf("expected offspring, got %s", kind)
				}
				if date.Format("2006-01-02") != "2024-06-01" {
					t.Errorf("expected date 2024-06-01, got %v", date)
				}
				return &models.InactiveAnimal{AnimalKind: kind, AnimalID: animalID, Reason: reason}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(svc, audit))

		rec := doRequest(r, "POST", "/animals/offspring/"+testID+"/inactive", `{"reason":"died","date":"2024-06-01"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		entry := parseJSON(t, rec)["inactive_animal"].(map[string]interface{})
		if entry["reason"] != "died" {
			t.Errorf("expected reason died, got %v", entry["reason"])
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceType != "offspring" {
			t.Errorf("expected offspring audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 without reason", func(t *testing.T) {
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(&mockAnimalStatusService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/animals/breeding_stock/"+testID+"/inactive", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(&mockAnimalStatusService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/animals/boar/"+testID+"/inactive", `{"reason":"culled"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 409 when already inactive", func(t *testing.T) {
		svc := &mockAnimalStatusService{
			markInactiveFn: func(models.AnimalKind, string, string, time.Time) (*models.InactiveAnimal, error) {
				return nil, apperrors.ErrAnimalInactive
			},
		}
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/animals/breeding_stock/"+testID+"/inactive", `{"reason":"culled"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestAnimalStatusHandler_Reactivate(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotKind models.AnimalKind
		svc := &mockAnimalStatusService{
			reactivateFn: func(kind models.AnimalKind, _ string) error {
				gotKind = kind
				return nil
			},
		}
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/animals/breeding_stock/"+testID+"/reactivate", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotKind != models.AnimalKindBreedingStock {
			t.Errorf("expected breeding_stock, got %s", gotKind)
		}
	})

	t.Run("returns 409 when already active", func(t *testing.T) {
		svc := &mockAnimalStatusService{
			reactivateFn: func(models.AnimalKind, string) error { return apperrors.ErrAnimalAlreadyActive },
		}
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/animals/offspring/"+testID+"/reactivate", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ANIMAL_ALREADY_ACTIVE")
	})
}

func TestAnimalStatusHandler_GetInactiveAnimals(t *testing.T) {
	t.Run("passes kind filter", func(t *testing.T) {
		svc := &mockAnimalStatusService{
			getInactiveAnimalsFn: func(_ pagination.PageRequest, kind *models.AnimalKind) (*pagination.PageResponse[models.InactiveAnimal], error) {
				if kind == nil || *kind != models.AnimalKindBreedingStock {
					t.Errorf("expected breeding_stock filter, got %v", kind)
				}
				resp := pagination.NewPageResponse([]models.InactiveAnimal{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/inactive-animals?kind=breeding_stock", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		r := setupAnimalStatusRouter(NewAnimalStatusHandler(&mockAnimalStatusService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/inactive-animals?kind=cow", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
