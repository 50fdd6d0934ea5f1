package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/services"
)

// --- mock room service ---

type mockRoomService struct {
	createRoomFn  func(name string, capacity int, status models.RoomStatus, note string) (*models.Room, error)
	getRoomsFn    func(page pagination.PageRequest) (*pagination.PageResponse[models.Room], error)
	getRoomByIDFn func(roomID string) (*models.Room, error)
	updateRoomFn  func(roomID string, name string, capacity *int, status *models.RoomStatus, note *string) (*models.Room, error)
	deleteRoomFn  func(roomID string) error
}

func (m *mockRoomService) CreateRoom(name string, capacity int, status models.RoomStatus, note string) (*models.Room, error) {
	if m.createRoomFn != nil {
		return m.createRoomFn(name, capacity, status, note)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) GetRooms(page pagination.PageRequest) (*pagination.PageResponse[models.Room], error) {
	if m.getRoomsFn != nil {
		return m.getRoomsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Room{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRoomService) GetRoomByID(roomID string) (*models.Room, error) {
	if m.getRoomByIDFn != nil {
		return m.getRoomByIDFn(roomID)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) UpdateRoom(roomID string, name string, capacity *int, status *models.RoomStatus, note *string) (*models.Room, error) {
	if m.updateRoomFn != nil {
		return m.updateRoomFn(roomID, name, capacity, status, note)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) DeleteRoom(roomID string) error {
	if m.deleteRoomFn != nil {
		return m.deleteRoomFn(roomID)
	}
	return nil
}

var _ services.RoomServicer = (*mockRoomService)(nil)

func setupRoomRouter(handler *RoomHandler) *gin.Engine {
	r := gin.New()
	r.POST("/rooms", handler.CreateRoom)
	r.GET("/rooms", handler.GetRooms)
	r.GET("/rooms/:id", handler.GetRoomByID)
	r.PUT("/rooms/:id", handler.UpdateRoom)
	r.DELETE("/rooms/:id", handler.DeleteRoom)
	return r
}

func TestRoomHandler_CreateRoom(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockRoomService{
			createRoomFn: func(name string, capacity int, status models.RoomStatus, _ string) (*models.Room, error) {
				return &models.Room{Base: models.Base{ID: testID}, Name: name, Capacity: capacity, Status: status}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupRoomRouter(NewRoomHandler(svc, audit))

		rec := doRequest(r, "POST", "/rooms", `{"name":"A1","capacity":4,"status":"available"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		room := parseJSON(t, rec)["room"].(map[string]interface{})
		if room["name"] != "A1" {
			t.Errorf("expected A1, got %v", room["name"])
		}
		if room["capacity"].(float64) != 4 {
			t.Errorf("expected capacity 4, got %v", room["capacity"])
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_ROOM" {
			t.Errorf("expected CREATE_ROOM audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/rooms", `{"capacity":4}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on name longer than 10", func(t *testing.T) {
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/rooms", `{"name":"ABCDEFGHIJK","capacity":4}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/rooms", `{"name":"A1","capacity":4,"status":"flooded"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		svc := &mockRoomService{
			createRoomFn: func(string, int, models.RoomStatus, string) (*models.Room, error) {
				return nil, apperrors.ErrDuplicateName
			},
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/rooms", `{"name":"A1","capacity":4}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_NAME")
	})
}

func TestRoomHandler_GetRooms(t *testing.T) {
	t.Run("returns 200 with paginated rooms", func(t *testing.T) {
		svc := &mockRoomService{
			getRoomsFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.Room], error) {
				if page.Page != 2 || page.PageSize != 5 {
					t.Errorf("expected page 2 size 5, got %+v", page)
				}
				resp := pagination.NewPageResponse([]models.Room{{Name: "A1"}}, 2, 5, 6)
				return &resp, nil
			},
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/rooms?page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 6 {
			t.Errorf("expected 6 total items, got %v", result["total_items"])
		}
		if len(result["data"].([]interface{})) != 1 {
			t.Errorf("expected 1 room, got %v", result["data"])
		}
	})

	t.Run("returns 400 on page size over limit", func(t *testing.T) {
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/rooms?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRoomHandler_GetRoomByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockRoomService{
			getRoomByIDFn: func(roomID string) (*models.Room, error) {
				return &models.Room{Base: models.Base{ID: roomID}, Name: "A1", OccupantCount: 2}, nil
			},
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/rooms/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		room := parseJSON(t, rec)["room"].(map[string]interface{})
		if room["id"] != testID {
			t.Errorf("expected id %s, got %v", testID, room["id"])
		}
		if room["occupant_count"].(float64) != 2 {
			t.Errorf("expected 2 occupants, got %v", room["occupant_count"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockRoomService{
			getRoomByIDFn: func(string) (*models.Room, error) { return nil, apperrors.ErrRoomNotFound },
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/rooms/"+testID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ROOM_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/rooms/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestRoomHandler_UpdateRoom(t *testing.T) {
	t.Run("passes only the provided fields", func(t *testing.T) {
		svc := &mockRoomService{
			updateRoomFn: func(_ string, name string, capacity *int, status *models.RoomStatus, note *string) (*models.Room, error) {
				if name != "" {
					t.Errorf("expected empty name, got %q", name)
				}
				if capacity == nil || *capacity != 8 {
					t.Errorf("expected capacity 8, got %v", capacity)
				}
				if status == nil || *status != models.RoomStatusMaintenance {
					t.Errorf("expected maintenance status, got %v", status)
				}
				if note != nil {
					t.Errorf("expected nil note, got %v", *note)
				}
				return &models.Room{Capacity: 8, Status: *status}, nil
			},
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/rooms/"+testID, `{"capacity":8,"status":"maintenance"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 when capacity drops below occupancy", func(t *testing.T) {
		svc := &mockRoomService{
			updateRoomFn: func(string, string, *int, *models.RoomStatus, *string) (*models.Room, error) {
				return nil, apperrors.ErrCapacityTooLow
			},
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/rooms/"+testID, `{"capacity":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CAPACITY_BELOW_OCCUPANCY")
	})
}

func TestRoomHandler_DeleteRoom(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupRoomRouter(NewRoomHandler(&mockRoomService{}, audit))

		rec := doRequest(r, "DELETE", "/rooms/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceID != testID {
			t.Errorf("expected DELETE_ROOM audit for %s, got %+v", testID, audit.entries)
		}
	})

	t.Run("returns 409 when room holds stock", func(t *testing.T) {
		svc := &mockRoomService{
			deleteRoomFn: func(string) error { return apperrors.ErrRoomNotEmpty },
		}
		r := setupRoomRouter(NewRoomHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/rooms/"+testID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ROOM_NOT_EMPTY")
	})
}
