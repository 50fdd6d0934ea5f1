package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/testutil"
)

func TestCreateBreedingStock(t *testing.T) {
	t.Run("names_and_occupancy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		rooms := NewRoomService(db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())

		room, err := rooms.CreateRoom("A", 3, "", "")
		testutil.AssertNoError(t, err)

		first, err := svc.CreateBreedingStock(room.ID, models.StockCategoryPrime, models.StockOriginPurchased, dec("1200"), day(2024, 2, 1), nil)
		testutil.AssertNoError(t, err)
		second, err := svc.CreateBreedingStock(room.ID, "", "", dec("900"), day(2024, 2, 2), nil)
		testutil.AssertNoError(t, err)

		if first.Name != "Sow-A-1" || second.Name != "Sow-A-2" {
			t.Errorf("expected Sow-A-1 and Sow-A-2, got %s and %s", first.Name, second.Name)
		}
		if second.Category != models.StockCategoryYoung {
			t.Errorf("expected default category young, got %s", second.Category)
		}
		if got := reloadRoom(t, db, room.ID); got.OccupantCount != 2 {
			t.Errorf("expected 2 occupants, got %d", got.OccupantCount)
		}
	})

	t.Run("born_in_farm_has_no_purchase_cost", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 2)

		stock, err := svc.CreateBreedingStock(room.ID, "", models.StockOriginBornInFarm, dec("500"), day(2024, 2, 1), nil)
		testutil.AssertNoError(t, err)
		if !stock.PurchaseCost.IsZero() {
			t.Errorf("expected zero purchase cost, got %s", stock.PurchaseCost)
		}
	})

	t.Run("room_full", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 1)

		_, err := svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 2, 1), nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 2, 1), nil)
		testutil.AssertAppError(t, err, "ROOM_FULL")

		if got := reloadRoom(t, db, room.ID); got.OccupantCount != 1 || got.Status != models.RoomStatusFull {
			t.Errorf("expected 1 occupant and full, got %d and %s", got.OccupantCount, got.Status)
		}
	})

	t.Run("room_under_maintenance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 2)
		if err := db.Model(room).Update("status", models.RoomStatusMaintenance).Error; err != nil {
			t.Fatalf("set maintenance: %v", err)
		}

		_, err := svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 2, 1), nil)
		testutil.AssertAppError(t, err, "ROOM_UNAVAILABLE")
	})

	t.Run("unknown_room", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())

		_, err := svc.CreateBreedingStock("0190a0b0-0000-7000-8000-000000000000", "", "", decimal.Zero, day(2024, 2, 1), nil)
		testutil.AssertAppError(t, err, "ROOM_NOT_FOUND")
	})

	t.Run("negative_cost", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 2)

		_, err := svc.CreateBreedingStock(room.ID, "", "", dec("-1"), day(2024, 2, 1), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

// Adding two animals to a room of capacity two fills it; removing one frees a place.
func TestRoomOccupancyFollowsStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	rooms := NewRoomService(db)
	svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())

	room, err := rooms.CreateRoom("R", 2, "", "")
	testutil.AssertNoError(t, err)

	s1, err := svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
	testutil.AssertNoError(t, err)
	if got := reloadRoom(t, db, room.ID); got.OccupantCount != 1 {
		t.Fatalf("expected 1 occupant, got %d", got.OccupantCount)
	}

	_, err = svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
	testutil.AssertNoError(t, err)
	if got := reloadRoom(t, db, room.ID); got.OccupantCount != 2 || got.Status != models.RoomStatusFull {
		t.Fatalf("expected 2 occupants and full, got %d and %s", got.OccupantCount, got.Status)
	}

	testutil.AssertNoError(t, svc.DeleteBreedingStock(s1.ID))
	got := reloadRoom(t, db, room.ID)
	if got.OccupantCount != 1 {
		t.Errorf("expected 1 occupant, got %d", got.OccupantCount)
	}
	if got.Status != models.RoomStatusAvailable {
		t.Errorf("expected available, got %s", got.Status)
	}
}

func TestGetBreedingStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
	roomA := testutil.CreateTestRoom(t, db, 5)
	roomB := testutil.CreateTestRoom(t, db, 5)
	testutil.CreateTestBreedingStock(t, db, roomA.ID)
	testutil.CreateTestBreedingStock(t, db, roomA.ID)
	inactive := testutil.CreateTestBreedingStock(t, db, roomB.ID)
	if err := db.Model(inactive).Update("status", models.AnimalStatusInactive).Error; err != nil {
		t.Fatalf("set inactive: %v", err)
	}

	t.Run("by_room", func(t *testing.T) {
		result, err := svc.GetBreedingStock(pagination.PageRequest{}, AnimalFilter{RoomID: &roomA.ID})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2, got %d", result.TotalItems)
		}
		if result.Data[0].Room == nil {
			t.Error("expected room to be preloaded")
		}
	})

	t.Run("by_status", func(t *testing.T) {
		status := models.AnimalStatusInactive
		result, err := svc.GetBreedingStock(pagination.PageRequest{}, AnimalFilter{Status: &status})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].ID != inactive.ID {
			t.Errorf("expected only the inactive animal, got %+v", result.Data)
		}
	})
}

func TestGetBreedingStockByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
	weights := NewWeightService(db)
	room := testutil.CreateTestRoom(t, db, 2)
	stock := testutil.CreateTestBreedingStockWithCost(t, db, room.ID, dec("800"))

	_, err := weights.CreateWeightRecord(models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID), day(2024, 3, 1), dec("140"))
	testutil.AssertNoError(t, err)
	_, err = weights.CreateWeightRecord(models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID), day(2024, 4, 1), dec("160"))
	testutil.AssertNoError(t, err)

	detail, err := svc.GetBreedingStockByID(stock.ID)
	testutil.AssertNoError(t, err)

	assertDecimal(t, "total cost", detail.Cost.Total, "800")
	if detail.LatestWeight == nil {
		t.Fatal("expected latest weight")
	}
	assertDecimal(t, "latest weight", detail.LatestWeight.Weight, "160")
	if detail.Category != models.StockCategoryPrime {
		t.Errorf("expected prime from latest weight, got %s", detail.Category)
	}

	_, err = svc.GetBreedingStockByID("0190a0b0-0000-7000-8000-000000000000")
	testutil.AssertAppError(t, err, "BREEDING_STOCK_NOT_FOUND")
}

func TestUpdateBreedingStock(t *testing.T) {
	t.Run("move_rooms_recounts_both", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		from := testutil.CreateTestRoom(t, db, 2)
		to := testutil.CreateTestRoom(t, db, 2)

		stock, err := svc.CreateBreedingStock(from.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateBreedingStock(stock.ID, &to.ID, nil, nil, nil, nil)
		testutil.AssertNoError(t, err)

		if got := reloadRoom(t, db, from.ID); got.OccupantCount != 0 {
			t.Errorf("expected old room empty, got %d", got.OccupantCount)
		}
		if got := reloadRoom(t, db, to.ID); got.OccupantCount != 1 {
			t.Errorf("expected new room to hold 1, got %d", got.OccupantCount)
		}
	})

	t.Run("plain_save_repairs_drifted_occupancy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 2)

		stock, err := svc.CreateBreedingStock(room.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
		testutil.AssertNoError(t, err)
		if err := db.Model(&models.Room{}).Where("id = ?", room.ID).UpdateColumn("occupant_count", 7).Error; err != nil {
			t.Fatalf("skew count: %v", err)
		}

		category := models.StockCategoryOld
		_, err = svc.UpdateBreedingStock(stock.ID, nil, &category, nil, nil, nil)
		testutil.AssertNoError(t, err)
		if got := reloadRoom(t, db, room.ID); got.OccupantCount != 1 {
			t.Errorf("expected occupancy recounted to 1, got %d", got.OccupantCount)
		}
	})

	t.Run("move_into_full_room", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		from := testutil.CreateTestRoom(t, db, 2)
		to := testutil.CreateTestRoom(t, db, 1)

		stock, err := svc.CreateBreedingStock(from.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBreedingStock(to.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateBreedingStock(stock.ID, &to.ID, nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "ROOM_FULL")
		if got := reloadStock(t, db, stock.ID); got.RoomID != from.ID {
			t.Error("expected animal to stay in its room")
		}
	})

	t.Run("unknown_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 2)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		missing := "0190a0b0-0000-7000-8000-000000000000"
		_, err := svc.UpdateBreedingStock(stock.ID, nil, nil, nil, nil, &missing)
		testutil.AssertAppError(t, err, "BREEDING_METHOD_NOT_FOUND")
	})
}

func TestDeleteBreedingStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	aggregates := NewAggregateRecalculator()
	costs := NewCostCalculator()
	svc := NewBreedingStockService(db, aggregates, costs)
	offspringSvc := NewOffspringService(db, aggregates, costs)
	feedStocks := NewFeedStockService(db)
	feeding := NewFeedingService(db, feedStocks)
	sales := NewSaleService(db, costs)

	room := testutil.CreateTestRoom(t, db, 2)
	stock, err := svc.CreateBreedingStock(room.ID, "", "", dec("500"), day(2024, 1, 1), nil)
	testutil.AssertNoError(t, err)
	piglet, err := offspringSvc.CreateOffspring(stock.ID, day(2024, 5, 1), dec("1.4"), nil)
	testutil.AssertNoError(t, err)
	sold, err := offspringSvc.CreateOffspring(stock.ID, day(2024, 5, 1), dec("1.3"), nil)
	testutil.AssertNoError(t, err)

	feed := testutil.CreateTestFeedStock(t, db, "100", "1")
	_, err = feeding.CreateFeedingRecord(models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID), feed.ID, dec("10"), day(2024, 5, 2))
	testutil.AssertNoError(t, err)
	_, err = feeding.CreateFeedingRecord(models.NewAnimalRef(models.AnimalKindOffspring, piglet.ID), feed.ID, dec("5"), day(2024, 5, 2))
	testutil.AssertNoError(t, err)
	testutil.CreateTestHealthRecord(t, db, models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID), "20")
	sale, err := sales.SellAnimal(models.AnimalKindOffspring, sold.ID, dec("300"), day(2024, 6, 1))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteBreedingStock(stock.ID))

	if n := countRows(t, db, &models.Offspring{}, "breeding_stock_id = ?", stock.ID); n != 0 {
		t.Errorf("expected offspring removed, %d left", n)
	}
	if n := countRows(t, db, &models.FeedingRecord{}, ""); n != 0 {
		t.Errorf("expected feeding records removed, %d left", n)
	}
	if n := countRows(t, db, &models.HealthRecord{}, ""); n != 0 {
		t.Errorf("expected health records removed, %d left", n)
	}
	if got := reloadRoom(t, db, room.ID); got.OccupantCount != 0 {
		t.Errorf("expected empty room, got %d", got.OccupantCount)
	}

	// Eaten feed is not returned to stock.
	assertDecimal(t, "stock quantity", reloadFeed(t, db, feed.ID).StockQuantity, "85")

	var snapshot models.SoldAnimal
	if err := db.Where("id = ?", sale.ID).First(&snapshot).Error; err != nil {
		t.Fatalf("sale snapshot should survive: %v", err)
	}
	if snapshot.OffspringID != nil {
		t.Error("expected sale to be detached from the deleted offspring")
	}
	if snapshot.AnimalName != sold.Name {
		t.Errorf("expected snapshot name %s, got %s", sold.Name, snapshot.AnimalName)
	}
}

func TestPromoteOffspring(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		aggregates := NewAggregateRecalculator()
		svc := NewBreedingStockService(db, aggregates, NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 3)
		parent := testutil.CreateTestBreedingStock(t, db, room.ID)
		piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2023, 1, 10))
		if err := db.Model(piglet).Update("current_weight", dec("180")).Error; err != nil {
			t.Fatalf("set weight: %v", err)
		}

		promoted, err := svc.PromoteOffspring(piglet.ID, room.ID, day(2024, 1, 1))
		testutil.AssertNoError(t, err)

		if promoted.Origin != models.StockOriginBornInFarm {
			t.Errorf("expected born_in_farm, got %s", promoted.Origin)
		}
		if promoted.Category != models.StockCategoryPrime {
			t.Errorf("expected prime for 180kg, got %s", promoted.Category)
		}
		if !promoted.PurchaseCost.IsZero() {
			t.Errorf("expected zero purchase cost, got %s", promoted.PurchaseCost)
		}
		if promoted.PromotedFromOffspringID == nil || *promoted.PromotedFromOffspringID != piglet.ID {
			t.Error("expected link to the offspring")
		}
		if got := reloadOffspring(t, db, piglet.ID); got.Status != models.AnimalStatusInactive {
			t.Errorf("expected offspring inactive, got %s", got.Status)
		}
		if got := reloadRoom(t, db, room.ID); got.OccupantCount != 2 {
			t.Errorf("expected 2 occupants, got %d", got.OccupantCount)
		}
	})

	t.Run("inactive_offspring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		room := testutil.CreateTestRoom(t, db, 3)
		parent := testutil.CreateTestBreedingStock(t, db, room.ID)
		piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2023, 1, 10))
		if err := db.Model(piglet).Update("status", models.AnimalStatusInactive).Error; err != nil {
			t.Fatalf("set inactive: %v", err)
		}

		_, err := svc.PromoteOffspring(piglet.ID, room.ID, day(2024, 1, 1))
		testutil.AssertAppError(t, err, "ANIMAL_INACTIVE")
	})
}
