package services

import (
	"errors"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"farmledger/internal/metrics"
	"farmledger/internal/models"
	"farmledger/internal/testutil"
)

var errRollback = errors.New("rollback")

func TestFeedMetrics(t *testing.T) {
	consumed := metrics.FeedConsumed.WithLabelValues(string(models.FeedTypePellet), string(models.FeedUnitKg))

	t.Run("rolled_back_consumption_is_not_counted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		feed := testutil.CreateTestFeedStock(t, db, "50", "1")
		svc := NewFeedStockService(db)

		before := promtest.ToFloat64(consumed)
		err := db.Transaction(func(tx *gorm.DB) error {
			if _, err := svc.Consume(tx, feed.ID, dec("10")); err != nil {
				return err
			}
			return errRollback
		})
		if !errors.Is(err, errRollback) {
			t.Fatalf("expected rollback error, got %v", err)
		}
		if got := promtest.ToFloat64(consumed); got != before {
			t.Errorf("expected consumed counter unchanged at %v, got %v", before, got)
		}
		assertDecimal(t, "stock", reloadFeed(t, db, feed.ID).StockQuantity, "50")
	})

	t.Run("committed_feeding_is_counted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 2)
		stock := testutil.CreateTestBreedingStock(t, db, room.ID)
		feed := testutil.CreateTestFeedStock(t, db, "50", "1")
		svc := NewFeedingService(db, NewFeedStockService(db))
		target := models.NewAnimalRef(models.AnimalKindBreedingStock, stock.ID)

		before := promtest.ToFloat64(consumed)
		_, err := svc.CreateFeedingRecord(target, feed.ID, dec("12.5"), day(2024, 4, 1))
		testutil.AssertNoError(t, err)
		if got := promtest.ToFloat64(consumed); got != before+12.5 {
			t.Errorf("expected consumed counter %v, got %v", before+12.5, got)
		}

		rejected := promtest.ToFloat64(metrics.FeedRejected)
		_, err = svc.CreateFeedingRecord(target, feed.ID, dec("100"), day(2024, 4, 2))
		testutil.AssertAppError(t, err, "INSUFFICIENT_STOCK")
		if got := promtest.ToFloat64(metrics.FeedRejected); got != rejected+1 {
			t.Errorf("expected rejected counter %v, got %v", rejected+1, got)
		}
		if got := promtest.ToFloat64(consumed); got != before+12.5 {
			t.Errorf("expected consumed counter to stay %v, got %v", before+12.5, got)
		}
	})
}

func TestRecountMetrics(t *testing.T) {
	rooms := metrics.Recounts.WithLabelValues(recountRoomOccupancy)

	t.Run("rolled_back_recount_is_not_counted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		room := testutil.CreateTestRoom(t, db, 2)

		before := promtest.ToFloat64(rooms)
		err := db.Transaction(func(tx *gorm.DB) error {
			if _, err := NewAggregateRecalculator().RecountRoomOccupancy(tx, room.ID); err != nil {
				return err
			}
			return errRollback
		})
		if !errors.Is(err, errRollback) {
			t.Fatalf("expected rollback error, got %v", err)
		}
		if got := promtest.ToFloat64(rooms); got != before {
			t.Errorf("expected recount counter unchanged at %v, got %v", before, got)
		}
	})

	t.Run("move_counts_both_rooms", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBreedingStockService(db, NewAggregateRecalculator(), NewCostCalculator())
		from := testutil.CreateTestRoom(t, db, 2)
		to := testutil.CreateTestRoom(t, db, 2)
		stock, err := svc.CreateBreedingStock(from.ID, "", "", decimal.Zero, day(2024, 1, 1), nil)
		testutil.AssertNoError(t, err)

		before := promtest.ToFloat64(rooms)
		_, err = svc.UpdateBreedingStock(stock.ID, &to.ID, nil, nil, nil, nil)
		testutil.AssertNoError(t, err)
		if got := promtest.ToFloat64(rooms); got != before+2 {
			t.Errorf("expected %v recounts, got %v", before+2, got)
		}
	})
}
