package integration

import (
	"net/http"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"farmledger/internal/metrics"
	"farmledger/internal/models"
)

func TestRoomFlow_OccupancyFollowsBreedingStock(t *testing.T) {
	app := setupApp(t)
	roomID := app.createRoom(t, "B1", 2)

	getRoom := func() map[string]interface{} {
		t.Helper()
		return object(t, app.mustRequest(t, "GET", "/api/v1/rooms/"+roomID, "", http.StatusOK), "room")
	}

	// Step 1: fill the room.
	s1 := app.createBreedingStock(t, roomID, "150")
	if room := getRoom(); room["occupant_count"].(float64) != 1 {
		t.Fatalf("expected occupant_count 1, got %v", room["occupant_count"])
	}

	app.createBreedingStock(t, roomID, "150")
	room := getRoom()
	if room["occupant_count"].(float64) != 2 {
		t.Fatalf("expected occupant_count 2, got %v", room["occupant_count"])
	}
	if room["status"] != string(models.RoomStatusFull) {
		t.Errorf("expected status full, got %v", room["status"])
	}

	// Step 2: a full room takes no more breeding stock, and the rejection is counted.
	roomFull := metrics.APIErrors.WithLabelValues("ROOM_FULL")
	before := promtest.ToFloat64(roomFull)
	rec := app.request("POST", "/api/v1/breeding-stock",
		`{"room_id":"`+roomID+`","category":"young","origin":"purchased","purchase_cost":"90"}`)
	assertErrorCode(t, rec, http.StatusConflict, "ROOM_FULL")
	if got := promtest.ToFloat64(roomFull); got != before+1 {
		t.Errorf("expected ROOM_FULL counter %v, got %v", before+1, got)
	}

	// Step 3: capacity cannot drop below the occupants, and an occupied room cannot be deleted.
	rec = app.request("PUT", "/api/v1/rooms/"+roomID, `{"capacity":1}`)
	assertErrorCode(t, rec, http.StatusBadRequest, "CAPACITY_BELOW_OCCUPANCY")

	rec = app.request("DELETE", "/api/v1/rooms/"+roomID, "")
	assertErrorCode(t, rec, http.StatusConflict, "ROOM_NOT_EMPTY")

	// Step 4: removing one animal frees a place.
	app.mustRequest(t, "DELETE", "/api/v1/breeding-stock/"+s1, "", http.StatusOK)
	room = getRoom()
	if room["occupant_count"].(float64) != 1 {
		t.Fatalf("expected occupant_count 1 after delete, got %v", room["occupant_count"])
	}
	if room["status"] != string(models.RoomStatusAvailable) {
		t.Errorf("expected status available, got %v", room["status"])
	}
}

func TestRoomFlow_MoveBetweenRooms(t *testing.T) {
	app := setupApp(t)
	from := app.createRoom(t, "C1", 1)
	to := app.createRoom(t, "C2", 1)
	stockID := app.createBreedingStock(t, from, "120")

	app.mustRequest(t, "PUT", "/api/v1/breeding-stock/"+stockID, `{"room_id":"`+to+`"}`, http.StatusOK)

	for id, want := range map[string]float64{from: 0, to: 1} {
		room := object(t, app.mustRequest(t, "GET", "/api/v1/rooms/"+id, "", http.StatusOK), "room")
		if room["occupant_count"].(float64) != want {
			t.Errorf("room %s: expected occupant_count %v, got %v", room["name"], want, room["occupant_count"])
		}
	}

	// An empty room can be deleted.
	app.mustRequest(t, "DELETE", "/api/v1/rooms/"+from, "", http.StatusOK)
}
