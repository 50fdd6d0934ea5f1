package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"farmledger/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s %s, got %s", label, want, got)
	}
}

func reloadRoom(t *testing.T, db *gorm.DB, id string) models.Room {
	t.Helper()
	var room models.Room
	if err := db.Where("id = ?", id).First(&room).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	return room
}

func reloadStock(t *testing.T, db *gorm.DB, id string) models.BreedingStock {
	t.Helper()
	var stock models.BreedingStock
	if err := db.Where("id = ?", id).First(&stock).Error; err != nil {
		t.Fatalf("reload breeding stock: %v", err)
	}
	return stock
}

func reloadOffspring(t *testing.T, db *gorm.DB, id string) models.Offspring {
	t.Helper()
	var offspring models.Offspring
	if err := db.Where("id = ?", id).First(&offspring).Error; err != nil {
		t.Fatalf("reload offspring: %v", err)
	}
	return offspring
}

func reloadFeed(t *testing.T, db *gorm.DB, id string) models.FeedStock {
	t.Helper()
	var feed models.FeedStock
	if err := db.Where("id = ?", id).First(&feed).Error; err != nil {
		t.Fatalf("reload feed stock: %v", err)
	}
	return feed
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
