package integration

import (
	"fmt"
	"net/http"
	"testing"

	"farmledger/internal/models"
)

func TestSaleFlow_OffspringCostCapturedAtSale(t *testing.T) {
	app := setupApp(t)
	roomID := app.createRoom(t, "D1", 2)
	sowID := app.createBreedingStock(t, roomID, "300")
	pigletID := app.createOffspring(t, sowID, "2024-03-01")
	feedID := app.createFeedStock(t, "Creep", "100", "2")

	// Step 1: 20 kg of feed at 2.00 plus a 10.00 treatment.
	app.mustRequest(t, "POST", "/api/v1/feeding-records",
		fmt.Sprintf(`{"offspring_id":%q,"feed_stock_id":%q,"quantity_used":"20","recorded_at":"2024-03-20"}`, pigletID, feedID),
		http.StatusCreated)
	app.mustRequest(t, "POST", "/api/v1/health-records",
		fmt.Sprintf(`{"offspring_id":%q,"health_issue":"Scours","treatment_given":"Electrolytes","treatment_date":"2024-03-22","cost":"10"}`, pigletID),
		http.StatusCreated)

	detail := object(t, app.mustRequest(t, "GET", "/api/v1/offspring/"+pigletID, "", http.StatusOK), "offspring")
	cost := detail["cost"].(map[string]interface{})
	assertDecimal(t, "feeding", cost["feeding"], "40")
	assertDecimal(t, "health", cost["health"], "10")
	assertDecimal(t, "total", cost["total"], "50")

	// Step 2: the sale freezes cost and profit and retires the animal.
	sale := object(t, app.mustRequest(t, "POST", "/api/v1/sales",
		fmt.Sprintf(`{"animal_kind":"offspring","animal_id":%q,"sold_price":"120","date_sold":"2024-05-01"}`, pigletID),
		http.StatusCreated), "sale")
	assertDecimal(t, "total_cost", sale["total_cost"], "50")
	assertDecimal(t, "profit", sale["profit"], "70")
	saleID := sale["id"].(string)

	detail = object(t, app.mustRequest(t, "GET", "/api/v1/offspring/"+pigletID, "", http.StatusOK), "offspring")
	if detail["status"] != string(models.AnimalStatusInactive) {
		t.Errorf("expected sold offspring to be inactive, got %v", detail["status"])
	}

	// Step 3: later costs do not touch the recorded sale.
	rec := app.request("POST", "/api/v1/feeding-records",
		fmt.Sprintf(`{"offspring_id":%q,"feed_stock_id":%q,"quantity_used":"5"}`, pigletID, feedID))
	assertErrorCode(t, rec, http.StatusConflict, "ANIMAL_INACTIVE")

	rec = app.request("POST", "/api/v1/sales",
		fmt.Sprintf(`{"animal_kind":"offspring","animal_id":%q,"sold_price":"130"}`, pigletID))
	assertErrorCode(t, rec, http.StatusConflict, "ANIMAL_INACTIVE")

	sale = object(t, app.mustRequest(t, "GET", "/api/v1/sales/"+saleID, "", http.StatusOK), "sale")
	assertDecimal(t, "total_cost on reload", sale["total_cost"], "50")

	list := app.mustRequest(t, "GET", "/api/v1/sales?kind=offspring", "", http.StatusOK)
	if list["total_items"].(float64) != 1 {
		t.Errorf("expected 1 sale, got %v", list["total_items"])
	}
}

func TestSaleFlow_BreedingStockIncludesPurchaseCost(t *testing.T) {
	app := setupApp(t)
	roomID := app.createRoom(t, "D2", 1)
	boarID := app.createBreedingStock(t, roomID, "250")

	sale := object(t, app.mustRequest(t, "POST", "/api/v1/sales",
		fmt.Sprintf(`{"animal_kind":"breeding_stock","animal_id":%q,"sold_price":"200"}`, boarID),
		http.StatusCreated), "sale")
	assertDecimal(t, "total_cost", sale["total_cost"], "250")
	assertDecimal(t, "profit", sale["profit"], "-50")
}

func TestInactiveFlow_MarkAndReactivate(t *testing.T) {
	app := setupApp(t)
	roomID := app.createRoom(t, "E1", 2)
	stockID := app.createBreedingStock(t, roomID, "100")
	feedID := app.createFeedStock(t, "Finisher", "40", "1.5")

	app.mustRequest(t, "POST", "/api/v1/animals/breeding_stock/"+stockID+"/inactive",
		`{"reason":"Lame","date":"2024-04-02"}`, http.StatusOK)

	rec := app.request("POST", "/api/v1/feeding-records",
		fmt.Sprintf(`{"breeding_stock_id":%q,"feed_stock_id":%q,"quantity_used":"2"}`, stockID, feedID))
	assertErrorCode(t, rec, http.StatusConflict, "ANIMAL_INACTIVE")

	list := app.mustRequest(t, "GET", "/api/v1/inactive-animals", "", http.StatusOK)
	if list["total_items"].(float64) != 1 {
		t.Fatalf("expected 1 inactive animal, got %v", list["total_items"])
	}
	entry := list["data"].([]interface{})[0].(map[string]interface{})
	if entry["reason"] != "Lame" {
		t.Errorf("expected reason Lame, got %v", entry["reason"])
	}

	app.mustRequest(t, "POST", "/api/v1/animals/breeding_stock/"+stockID+"/reactivate", "", http.StatusOK)
	rec = app.request("POST", "/api/v1/animals/breeding_stock/"+stockID+"/reactivate", "")
	assertErrorCode(t, rec, http.StatusConflict, "ANIMAL_ALREADY_ACTIVE")

	app.mustRequest(t, "POST", "/api/v1/feeding-records",
		fmt.Sprintf(`{"breeding_stock_id":%q,"feed_stock_id":%q,"quantity_used":"2"}`, stockID, feedID),
		http.StatusCreated)
}
