package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// ledgerService handles manual income and expense entries.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

func (s *ledgerService) CreateIncome(date time.Time, source models.IncomeSource, description string, amount decimal.Decimal) (*models.IncomeRecord, error) {
	if err := validateEntry(date, amount); err != nil {
		return nil, err
	}
	if source == "" {
		source = models.IncomeSourceOther
	}

	record := &models.IncomeRecord{
		Date:        models.DateOf(date),
		Source:      source,
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *ledgerService) GetIncomes(page pagination.PageRequest, dates DateRange) (*pagination.PageResponse[models.IncomeRecord], error) {
	query := applyDateRange(s.db.Model(&models.IncomeRecord{}), "date", dates.From, dates.To)

	result, err := pagination.Fetch[models.IncomeRecord](query, page, "date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *ledgerService) GetIncomeByID(recordID string) (*models.IncomeRecord, error) {
	var record models.IncomeRecord
	if err := s.db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

func (s *ledgerService) UpdateIncome(recordID string, date *time.Time, source *models.IncomeSource, description *string, amount *decimal.Decimal) (*models.IncomeRecord, error) {
	record, err := s.GetIncomeByID(recordID)
	if err != nil {
		return nil, err
	}

	if date != nil && !date.IsZero() {
		record.Date = models.DateOf(*date)
	}
	if source != nil {
		record.Source = *source
	}
	if description != nil {
		record.Description = strings.TrimSpace(*description)
	}
	if amount != nil {
		if !amount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		record.Amount = *amount
	}

	if err := s.db.Model(record).Select("date", "source", "description", "amount").Updates(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *ledgerService) DeleteIncome(recordID string) error {
	result := s.db.Where("id = ?", recordID).Delete(&models.IncomeRecord{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrIncomeRecordNotFound
	}
	return nil
}

func (s *ledgerService) CreateExpense(date time.Time, category models.ExpenseCategory, description string, amount decimal.Decimal) (*models.ExpenseRecord, error) {
	if err := validateEntry(date, amount); err != nil {
		return nil, err
	}
	if category == "" {
		category = models.ExpenseCategoryOther
	}

	record := &models.ExpenseRecord{
		Date:        models.DateOf(date),
		Category:    category,
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *ledgerService) GetExpenses(page pagination.PageRequest, dates DateRange) (*pagination.PageResponse[models.ExpenseRecord], error) {
	query := applyDateRange(s.db.Model(&models.ExpenseRecord{}), "date", dates.From, dates.To)

	result, err := pagination.Fetch[models.ExpenseRecord](query, page, "date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *ledgerService) GetExpenseByID(recordID string) (*models.ExpenseRecord, error) {
	var record models.ExpenseRecord
	if err := s.db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

func (s *ledgerService) UpdateExpense(recordID string, date *time.Time, category *models.ExpenseCategory, description *string, amount *decimal.Decimal) (*models.ExpenseRecord, error) {
	record, err := s.GetExpenseByID(recordID)
	if err != nil {
		return nil, err
	}

	if date != nil && !date.IsZero() {
		record.Date = models.DateOf(*date)
	}
	if category != nil {
		record.Category = *category
	}
	if description != nil {
		record.Description = strings.TrimSpace(*description)
	}
	if amount != nil {
		if !amount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		record.Amount = *amount
	}

	if err := s.db.Model(record).Select("date", "category", "description", "amount").Updates(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *ledgerService) DeleteExpense(recordID string) error {
	result := s.db.Where("id = ?", recordID).Delete(&models.ExpenseRecord{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseRecordNotFound
	}
	return nil
}

func validateEntry(date time.Time, amount decimal.Decimal) error {
	if date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	return nil
}
