package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// IncomeSource categorizes farm income.
type IncomeSource string

const (
	IncomeSourceOffspringSale IncomeSource = "offspring_sale"
	IncomeSourceStockSale     IncomeSource = "stock_sale"
	IncomeSourceManure        IncomeSource = "manure"
	IncomeSourceService       IncomeSource = "service"
	IncomeSourceOther         IncomeSource = "other"
)

// ExpenseCategory categorizes farm expenses.
type ExpenseCategory string

const (
	ExpenseCategoryFeed        ExpenseCategory = "feed"
	ExpenseCategoryMedication  ExpenseCategory = "medication"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategoryLabor       ExpenseCategory = "labor"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// IncomeRecord is a manual income entry.
type IncomeRecord struct {
	Base
	Date        datatypes.Date  `gorm:"not null;index" json:"date"`
	Source      IncomeSource    `gorm:"size:20;not null" json:"source"`
	Description string          `gorm:"size:255" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
}

// ExpenseRecord is a manual expense entry.
type ExpenseRecord struct {
	Base
	Date        datatypes.Date  `gorm:"not null;index" json:"date"`
	Category    ExpenseCategory `gorm:"size:20;not null" json:"category"`
	Description string          `gorm:"size:255" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
}
