package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"farmledger/internal/logger"
	"farmledger/internal/server"
	"farmledger/internal/testutil"
	"farmledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := server.NewRouter(server.NewServices(db), server.Options{})
	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest is request plus a status check that aborts the test on mismatch.
func (app *testApp) mustRequest(t *testing.T, method, path, body string, want int) map[string]interface{} {
	t.Helper()
	rec := app.request(method, path, body)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// object pulls a nested JSON object out of a response.
func object(t *testing.T, result map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	obj, ok := result[key].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no %q object: %v", key, result)
	}
	return obj
}

// assertDecimal compares a JSON decimal string numerically, so "45.5" equals "45.50".
func assertDecimal(t *testing.T, field string, got interface{}, want string) {
	t.Helper()
	s, ok := got.(string)
	if !ok {
		t.Errorf("%s: expected decimal string, got %T (%v)", field, got, got)
		return
	}
	if !decimal.RequireFromString(s).Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", field, want, s)
	}
}

// assertErrorCode checks the code in a JSON error response.
func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	errObj := object(t, parseJSON(t, rec), "error")
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

func (app *testApp) createRoom(t *testing.T, name string, capacity int) string {
	t.Helper()
	result := app.mustRequest(t, "POST", "/api/v1/rooms",
		fmt.Sprintf(`{"name":%q,"capacity":%d}`, name, capacity), http.StatusCreated)
	return object(t, result, "room")["id"].(string)
}

func (app *testApp) createBreedingStock(t *testing.T, roomID, purchaseCost string) string {
	t.Helper()
	result := app.mustRequest(t, "POST", "/api/v1/breeding-stock",
		fmt.Sprintf(`{"room_id":%q,"category":"prime","origin":"purchased","purchase_cost":%q,"registered_date":"2024-01-10"}`, roomID, purchaseCost),
		http.StatusCreated)
	return object(t, result, "breeding_stock")["id"].(string)
}

func (app *testApp) createOffspring(t *testing.T, stockID, birthDate string) string {
	t.Helper()
	result := app.mustRequest(t, "POST", "/api/v1/offspring",
		fmt.Sprintf(`{"breeding_stock_id":%q,"birth_date":%q,"initial_weight":"1.4"}`, stockID, birthDate),
		http.StatusCreated)
	return object(t, result, "offspring")["id"].(string)
}

func (app *testApp) createFeedStock(t *testing.T, name, quantity, unitCost string) string {
	t.Helper()
	result := app.mustRequest(t, "POST", "/api/v1/feed-stocks",
		fmt.Sprintf(`{"name":%q,"feed_type":"pellet","unit":"kg","quantity":%q,"unit_cost":%q}`, name, quantity, unitCost),
		http.StatusCreated)
	return object(t, result, "feed_stock")["id"].(string)
}
