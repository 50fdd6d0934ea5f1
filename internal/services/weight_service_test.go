package services

import (
	"testing"

	"farmledger/internal/models"
	"farmledger/internal/pagination"
	"farmledger/internal/testutil"
)

func weightSeries(t *testing.T, svc WeightServicer, ref models.AnimalRef) []models.WeightRecord {
	t.Helper()
	kind := ref.TargetKind
	id := ref.TargetID()
	result, err := svc.GetWeightRecords(pagination.PageRequest{PageSize: 100}, RecordFilter{Kind: &kind, AnimalID: &id})
	testutil.AssertNoError(t, err)

	// Listing is newest first.
	series := make([]models.WeightRecord, 0, len(result.Data))
	for i := len(result.Data) - 1; i >= 0; i-- {
		series = append(series, result.Data[i])
	}
	return series
}

// Weighings of 20, 25 and 22 give deltas 0, +5, -3 and trends
// no_change, increased, decreased.
func TestWeightSeries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewWeightService(db)
	room := testutil.CreateTestRoom(t, db, 1)
	parent := testutil.CreateTestBreedingStock(t, db, room.ID)
	piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2024, 1, 1))
	ref := models.NewAnimalRef(models.AnimalKindOffspring, piglet.ID)

	for i, w := range []string{"20", "25", "22"} {
		_, err := svc.CreateWeightRecord(ref, day(2024, 2, 1+i*7), dec(w))
		testutil.AssertNoError(t, err)
	}

	series := weightSeries(t, svc, ref)
	if len(series) != 3 {
		t.Fatalf("expected 3 weighings, got %d", len(series))
	}
	wantDiff := []string{"0", "5", "-3"}
	wantTrend := []models.WeightTrend{models.WeightTrendNoChange, models.WeightTrendIncreased, models.WeightTrendDecreased}
	for i, w := range series {
		assertDecimal(t, "difference", w.Difference, wantDiff[i])
		if w.Trend != wantTrend[i] {
			t.Errorf("weighing %d: expected %s, got %s", i, wantTrend[i], w.Trend)
		}
	}
	if series[0].Class != models.WeightClassYellow {
		t.Errorf("expected yellow class for 20kg, got %s", series[0].Class)
	}
	assertDecimal(t, "current weight", reloadOffspring(t, db, piglet.ID).CurrentWeight, "22")
}

func TestWeightResequencing(t *testing.T) {
	t.Run("backdated_insert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeightService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		parent := testutil.CreateTestBreedingStock(t, db, room.ID)
		piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2024, 1, 1))
		ref := models.NewAnimalRef(models.AnimalKindOffspring, piglet.ID)

		_, err := svc.CreateWeightRecord(ref, day(2024, 3, 1), dec("30"))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateWeightRecord(ref, day(2024, 2, 1), dec("10"))
		testutil.AssertNoError(t, err)

		series := weightSeries(t, svc, ref)
		assertDecimal(t, "first difference", series[0].Difference, "0")
		assertDecimal(t, "second difference", series[1].Difference, "20")
		assertDecimal(t, "current weight", reloadOffspring(t, db, piglet.ID).CurrentWeight, "30")
	})

	t.Run("delete_restores_initial_weight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeightService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		parent := testutil.CreateTestBreedingStock(t, db, room.ID)
		piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2024, 1, 1))
		ref := models.NewAnimalRef(models.AnimalKindOffspring, piglet.ID)

		record, err := svc.CreateWeightRecord(ref, day(2024, 2, 1), dec("8"))
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.DeleteWeightRecord(record.ID))

		assertDecimal(t, "current weight", reloadOffspring(t, db, piglet.ID).CurrentWeight, "1.5")
	})

	t.Run("update_moves_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeightService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		parent := testutil.CreateTestBreedingStock(t, db, room.ID)
		piglet := testutil.CreateTestOffspring(t, db, parent.ID, day(2024, 1, 1))
		ref := models.NewAnimalRef(models.AnimalKindOffspring, piglet.ID)

		first, err := svc.CreateWeightRecord(ref, day(2024, 2, 1), dec("10"))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateWeightRecord(ref, day(2024, 3, 1), dec("15"))
		testutil.AssertNoError(t, err)

		moved := day(2024, 4, 1)
		updated, err := svc.UpdateWeightRecord(first.ID, &moved, nil)
		testutil.AssertNoError(t, err)

		assertDecimal(t, "moved difference", updated.Difference, "-5")
		if updated.Trend != models.WeightTrendDecreased {
			t.Errorf("expected decreased, got %s", updated.Trend)
		}
		assertDecimal(t, "current weight", reloadOffspring(t, db, piglet.ID).CurrentWeight, "10")
	})

	t.Run("breeding_stock_category_follows_weight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeightService(db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)
		ref := models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID)

		_, err := svc.CreateWeightRecord(ref, day(2024, 2, 1), dec("260"))
		testutil.AssertNoError(t, err)
		if got := reloadStock(t, db, stock.ID); got.Category != models.StockCategoryOld {
			t.Errorf("expected old, got %s", got.Category)
		}
	})
}

func TestCreateWeightRecord(t *testing.T) {
	t.Run("non_positive_weight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 1)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)

		_, err := NewWeightService(db).CreateWeightRecord(models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID), day(2024, 2, 1), dec("0"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewWeightService(db).CreateWeightRecord(models.AnimalRef{TargetKind: models.AnimalKindOffspring}, day(2024, 2, 1), dec("5"))
		testutil.AssertAppError(t, err, "INVALID_TARGET")
	})
}
