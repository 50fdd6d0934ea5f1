// Package errors provides custom error types for the farmledger API.
// All service-layer errors should use AppError so that every rejected write
// reaches the client with a stable code and a human-readable reason, and never
// leaks storage details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so that sentinels survive Wrap/WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput        = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrDuplicateName       = &AppError{Code: "DUPLICATE_NAME", Message: "A record with this name already exists", StatusCode: http.StatusConflict}
	ErrConcurrentUpdate    = &AppError{Code: "CONCURRENT_MODIFICATION", Message: "Record was modified by another request, retry", StatusCode: http.StatusConflict}
	ErrInvalidTarget       = &AppError{Code: "INVALID_TARGET", Message: "Exactly one of breeding stock or offspring must be referenced", StatusCode: http.StatusBadRequest}
	ErrInternalServer      = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrAnimalInactive      = &AppError{Code: "ANIMAL_INACTIVE", Message: "Animal is not active", StatusCode: http.StatusConflict}
	ErrAnimalAlreadyActive = &AppError{Code: "ANIMAL_ALREADY_ACTIVE", Message: "Animal is already active", StatusCode: http.StatusConflict}
)

// Room errors.
var (
	ErrRoomNotFound    = &AppError{Code: "ROOM_NOT_FOUND", Message: "Room not found", StatusCode: http.StatusNotFound}
	ErrRoomFull        = &AppError{Code: "ROOM_FULL", Message: "Room has reached its capacity", StatusCode: http.StatusConflict}
	ErrRoomUnavailable = &AppError{Code: "ROOM_UNAVAILABLE", Message: "Room is under maintenance", StatusCode: http.StatusConflict}
	ErrRoomNotEmpty    = &AppError{Code: "ROOM_NOT_EMPTY", Message: "Room still holds breeding stock", StatusCode: http.StatusConflict}
	ErrCapacityTooLow  = &AppError{Code: "CAPACITY_BELOW_OCCUPANCY", Message: "Capacity cannot be lower than the current occupant count", StatusCode: http.StatusBadRequest}
)

// Animal errors.
var (
	ErrBreedingStockNotFound = &AppError{Code: "BREEDING_STOCK_NOT_FOUND", Message: "Breeding stock not found", StatusCode: http.StatusNotFound}
	ErrOffspringNotFound     = &AppError{Code: "OFFSPRING_NOT_FOUND", Message: "Offspring not found", StatusCode: http.StatusNotFound}
	ErrSaleNotFound          = &AppError{Code: "SALE_NOT_FOUND", Message: "Sale record not found", StatusCode: http.StatusNotFound}
)

// Breeding errors.
var (
	ErrBreedingMethodNotFound = &AppError{Code: "BREEDING_METHOD_NOT_FOUND", Message: "Breeding method not found", StatusCode: http.StatusNotFound}
	ErrBreedingMethodInUse    = &AppError{Code: "BREEDING_METHOD_IN_USE", Message: "Breeding method is used by existing records", StatusCode: http.StatusConflict}
	ErrBreedingRecordNotFound = &AppError{Code: "BREEDING_RECORD_NOT_FOUND", Message: "Breeding record not found", StatusCode: http.StatusNotFound}
)

// Feed errors.
var (
	ErrFeedStockNotFound     = &AppError{Code: "FEED_STOCK_NOT_FOUND", Message: "Feed stock not found", StatusCode: http.StatusNotFound}
	ErrFeedStockInUse        = &AppError{Code: "FEED_STOCK_IN_USE", Message: "Feed stock is referenced by feeding records", StatusCode: http.StatusConflict}
	ErrInsufficientStock     = &AppError{Code: "INSUFFICIENT_STOCK", Message: "Not enough feed stock available", StatusCode: http.StatusBadRequest}
	ErrNegativeStock         = &AppError{Code: "NEGATIVE_STOCK", Message: "Stock quantity cannot be negative", StatusCode: http.StatusBadRequest}
	ErrFeedingRecordNotFound = &AppError{Code: "FEEDING_RECORD_NOT_FOUND", Message: "Feeding record not found", StatusCode: http.StatusNotFound}
)

// Health errors.
var (
	ErrHealthRecordNotFound      = &AppError{Code: "HEALTH_RECORD_NOT_FOUND", Message: "Health record not found", StatusCode: http.StatusNotFound}
	ErrVaccineNotFound           = &AppError{Code: "VACCINE_NOT_FOUND", Message: "Vaccine not found", StatusCode: http.StatusNotFound}
	ErrVaccineInUse              = &AppError{Code: "VACCINE_IN_USE", Message: "Vaccine is referenced by vaccination records", StatusCode: http.StatusConflict}
	ErrVaccinationRecordNotFound = &AppError{Code: "VACCINATION_RECORD_NOT_FOUND", Message: "Vaccination record not found", StatusCode: http.StatusNotFound}
	ErrVaccinationNotDue         = &AppError{Code: "VACCINATION_NOT_DUE", Message: "Animal is already vaccinated and the next dose is not yet due", StatusCode: http.StatusConflict}
	ErrWeightRecordNotFound      = &AppError{Code: "WEIGHT_RECORD_NOT_FOUND", Message: "Weight record not found", StatusCode: http.StatusNotFound}
)

// Ledger errors.
var (
	ErrIncomeRecordNotFound  = &AppError{Code: "INCOME_RECORD_NOT_FOUND", Message: "Income record not found", StatusCode: http.StatusNotFound}
	ErrExpenseRecordNotFound = &AppError{Code: "EXPENSE_RECORD_NOT_FOUND", Message: "Expense record not found", StatusCode: http.StatusNotFound}
)
