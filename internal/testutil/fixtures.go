package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"farmledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Fixtures write rows directly and do not maintain derived aggregates such as
// room occupancy or offspring counts. Tests that check aggregates go through
// the services.

// CreateTestRoom creates an available room with the given capacity.
func CreateTestRoom(t *testing.T, db *gorm.DB, capacity int) *models.Room {
	t.Helper()

	room := &models.Room{
		Name:     fmt.Sprintf("R%d", nextID()),
		Capacity: capacity,
		Status:   models.RoomStatusAvailable,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to create test room: %v", err)
	}
	return room
}

// CreateTestBreedingMethod creates a breeding method catalog entry.
func CreateTestBreedingMethod(t *testing.T, db *gorm.DB) *models.BreedingMethod {
	t.Helper()

	method := &models.BreedingMethod{
		Name:        fmt.Sprintf("Method %d", nextID()),
		Description: "artificial insemination",
	}
	if err := db.Create(method).Error; err != nil {
		t.Fatalf("failed to create test breeding method: %v", err)
	}
	return method
}

// CreateTestBreedingStock creates an active purchased breeding animal.
func CreateTestBreedingStock(t *testing.T, db *gorm.DB, roomID string) *models.BreedingStock {
	t.Helper()
	return CreateTestBreedingStockWithCost(t, db, roomID, decimal.NewFromInt(1000))
}

// CreateTestBreedingStockWithCost creates an active breeding animal with the given purchase cost.
func CreateTestBreedingStockWithCost(t *testing.T, db *gorm.DB, roomID string, cost decimal.Decimal) *models.BreedingStock {
	t.Helper()

	stock := &models.BreedingStock{
		Name:           fmt.Sprintf("Sow-test-%d", nextID()),
		RoomID:         roomID,
		Category:       models.StockCategoryPrime,
		Origin:         models.StockOriginPurchased,
		Status:         models.AnimalStatusActive,
		PurchaseCost:   cost,
		RegisteredDate: models.DateOf(time.Now()),
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test breeding stock: %v", err)
	}
	return stock
}

// CreateTestOffspring creates an active offspring of the given parent.
func CreateTestOffspring(t *testing.T, db *gorm.DB, breedingStockID string, birthDate time.Time) *models.Offspring {
	t.Helper()

	offspring := &models.Offspring{
		Name:            fmt.Sprintf("P-test-%d", nextID()),
		BreedingStockID: breedingStockID,
		BirthDate:       models.DateOf(birthDate),
		InitialWeight:   decimal.RequireFromString("1.50"),
		CurrentWeight:   decimal.RequireFromString("1.50"),
		Status:          models.AnimalStatusActive,
	}
	if err := db.Create(offspring).Error; err != nil {
		t.Fatalf("failed to create test offspring: %v", err)
	}
	return offspring
}

// CreateTestFeedStock creates a kg feed stock with the given quantity and unit cost.
func CreateTestFeedStock(t *testing.T, db *gorm.DB, quantity, unitCost string) *models.FeedStock {
	t.Helper()

	qty := decimal.RequireFromString(quantity)
	feed := &models.FeedStock{
		Name:             fmt.Sprintf("Feed %d", nextID()),
		FeedType:         models.FeedTypePellet,
		Unit:             models.FeedUnitKg,
		InitialQuantity:  qty,
		BaselineQuantity: qty,
		StockQuantity:    qty,
		UnitCost:         decimal.RequireFromString(unitCost),
		Version:          1,
	}
	if err := db.Create(feed).Error; err != nil {
		t.Fatalf("failed to create test feed stock: %v", err)
	}
	return feed
}

// CreateTestVaccine creates a vaccine with the given protection window.
func CreateTestVaccine(t *testing.T, db *gorm.DB, durationDays int) *models.Vaccine {
	t.Helper()

	vaccine := &models.Vaccine{
		Name:         fmt.Sprintf("Vaccine %d", nextID()),
		DurationDays: durationDays,
	}
	if err := db.Create(vaccine).Error; err != nil {
		t.Fatalf("failed to create test vaccine: %v", err)
	}
	return vaccine
}

// CreateTestHealthRecord creates a health record with the given cost.
func CreateTestHealthRecord(t *testing.T, db *gorm.DB, target models.AnimalRef, cost string) *models.HealthRecord {
	t.Helper()

	record := &models.HealthRecord{
		AnimalRef:     target,
		HealthIssue:   "fever",
		TreatmentDate: models.DateOf(time.Now()),
		Status:        models.HealthStatusOngoing,
		Cost:          decimal.RequireFromString(cost),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test health record: %v", err)
	}
	return record
}

// CreateTestIncome creates a manual income entry.
func CreateTestIncome(t *testing.T, db *gorm.DB, date time.Time, amount string) *models.IncomeRecord {
	t.Helper()

	record := &models.IncomeRecord{
		Date:   models.DateOf(date),
		Source: models.IncomeSourceOther,
		Amount: decimal.RequireFromString(amount),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return record
}

// CreateTestExpense creates a manual expense entry.
func CreateTestExpense(t *testing.T, db *gorm.DB, date time.Time, amount string) *models.ExpenseRecord {
	t.Helper()

	record := &models.ExpenseRecord{
		Date:     models.DateOf(date),
		Category: models.ExpenseCategoryFeed,
		Amount:   decimal.RequireFromString(amount),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return record
}
