package services

import (
	"testing"
	"time"

	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/testutil"
)

func TestCreateBreedingRecord(t *testing.T) {
	t.Run("confirmed_pregnancy_sets_expected_farrow", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingRecordService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)
		method := testutil.CreateTestBreedingMethod(t, db)
		first, last := day(2024, 3, 1), day(2024, 3, 3)

		record, err := svc.CreateBreedingRecord(BreedingRecordInput{
			BreedingStockID:   stock.ID,
			Insemination1Date: &first,
			Insemination2Date: &last,
			BreedingMethodID:  &method.ID,
			Cost:              dec("45"),
			Status:            models.BreedingStatusConfirmedPregnant,
		})
		testutil.AssertNoError(t, err)

		if record.ExpectedFarrowDate == nil || models.DateKey(*record.ExpectedFarrowDate) != "2024-06-25" {
			t.Errorf("expected farrow on 2024-06-25, got %v", record.ExpectedFarrowDate)
		}
		if record.BreedingMethod == nil || record.BreedingMethod.ID != method.ID {
			t.Error("expected breeding method to be loaded")
		}
	})

	t.Run("defaults_to_pending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		record, err := NewBreedingRecordService(db).CreateBreedingRecord(BreedingRecordInput{BreedingStockID: stock.ID})
		testutil.AssertNoError(t, err)
		if record.Status != models.BreedingStatusPending {
			t.Errorf("expected pending, got %s", record.Status)
		}
	})

	t.Run("confirmed_without_insemination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		_, err := NewBreedingRecordService(db).CreateBreedingRecord(BreedingRecordInput{
			BreedingStockID: stock.ID,
			Status:          models.BreedingStatusConfirmedPregnant,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_cost", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		_, err := NewBreedingRecordService(db).CreateBreedingRecord(BreedingRecordInput{BreedingStockID: stock.ID, Cost: dec("-1")})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_stock", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewBreedingRecordService(db).CreateBreedingRecord(BreedingRecordInput{BreedingStockID: "0190a0b0-0000-7000-8000-000000000000"})
		testutil.AssertAppError(t, err, "BREEDING_STOCK_NOT_FOUND")
	})
}

func TestUpdateBreedingRecord(t *testing.T) {
	t.Run("completing_sets_actual_farrow_to_today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingRecordService(db)
		svc.(*breedingRecordService).now = func() time.Time { return day(2024, 6, 24) }
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)
		inseminated := day(2024, 3, 1)

		record, err := svc.CreateBreedingRecord(BreedingRecordInput{
			BreedingStockID:   stock.ID,
			Insemination1Date: &inseminated,
			Status:            models.BreedingStatusConfirmedPregnant,
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateBreedingRecord(record.ID, BreedingRecordInput{
			Insemination1Date: &inseminated,
			Status:            models.BreedingStatusCompleted,
		})
		testutil.AssertNoError(t, err)

		if updated.ActualFarrowDate == nil || models.DateKey(*updated.ActualFarrowDate) != "2024-06-24" {
			t.Errorf("expected actual farrow 2024-06-24, got %v", updated.ActualFarrowDate)
		}
		if updated.BreedingStockID != stock.ID {
			t.Error("breeding stock of a record must not change")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewBreedingRecordService(db).UpdateBreedingRecord("0190a0b0-0000-7000-8000-000000000000", BreedingRecordInput{})
		testutil.AssertAppError(t, err, "BREEDING_RECORD_NOT_FOUND")
	})
}

func TestGetAndDeleteBreedingRecords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBreedingRecordService(db)
	room := testutil.CreateTestRoom(t, db, 2)
	a := testutil.CreateTestBreedingStock(t, db, room.ID)
	b := testutil.CreateTestBreedingStock(t, db, room.ID)

	record, err := svc.CreateBreedingRecord(BreedingRecordInput{BreedingStockID: a.ID})
	testutil.AssertNoError(t, err)
	_, err = svc.CreateBreedingRecord(BreedingRecordInput{BreedingStockID: b.ID, Status: models.BreedingStatusFailed})
	testutil.AssertNoError(t, err)

	result, err := svc.GetBreedingRecords(pagination.PageRequest{}, &a.ID, nil)
	testutil.AssertNoError(t, err)
	if result.TotalItems != 1 {
		t.Errorf("expected 1 record for a, got %d", result.TotalItems)
	}

	failed := models.BreedingStatusFailed
	result, err = svc.GetBreedingRecords(pagination.PageRequest{}, nil, &failed)
	testutil.AssertNoError(t, err)
	if result.TotalItems != 1 || result.Data[0].BreedingStockID != b.ID {
		t.Errorf("expected b's failed record, got %+v", result.Data)
	}

	testutil.AssertNoError(t, svc.DeleteBreedingRecord(record.ID))
	err = svc.DeleteBreedingRecord(record.ID)
	testutil.AssertAppError(t, err, "BREEDING_RECORD_NOT_FOUND")
}

func TestBreedingMethodCatalog(t *testing.T) {
	t.Run("delete_in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingMethodService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		method, err := svc.CreateBreedingMethod("Natural", "boar service")
		testutil.AssertNoError(t, err)
		_, err = NewBreedingRecordService(db).CreateBreedingRecord(BreedingRecordInput{BreedingStockID: stock.ID, BreedingMethodID: &method.ID})
		testutil.AssertNoError(t, err)

		err = svc.DeleteBreedingMethod(method.ID)
		testutil.AssertAppError(t, err, "BREEDING_METHOD_IN_USE")
	})

	t.Run("delete_unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingMethodService(db)

		method, err := svc.CreateBreedingMethod("AI", "")
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.DeleteBreedingMethod(method.ID))

		_, err = svc.GetBreedingMethodByID(method.ID)
		testutil.AssertAppError(t, err, "BREEDING_METHOD_NOT_FOUND")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingMethodService(db)

		_, err := svc.CreateBreedingMethod("AI", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBreedingMethod("AI", "")
		testutil.AssertAppError(t, err, "DUPLICATE_NAME")
	})
}
