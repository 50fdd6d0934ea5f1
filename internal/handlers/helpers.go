package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/middleware"
	"farmledger/internal/models"
	"farmledger/internal/services"
	"farmledger/internal/uuid"
)

// parsePathID parses a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseFlexibleTime accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func parseFlexibleTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

// parseDate parses a required date field from a request body.
func parseDate(field, v string) (time.Time, error) {
	t, err := parseFlexibleTime(v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field+" format, use RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}

// parseOptionalDate is parseDate for nullable fields. nil and "" map to nil.
func parseOptionalDate(field string, v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := parseDate(field, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateOrNow parses an optional date field, defaulting to the current time.
func parseDateOrNow(field string, v *string) (time.Time, error) {
	t, err := parseOptionalDate(field, v)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Now(), nil
	}
	return *t, nil
}

// parseDateRange reads the from_date and to_date query parameters.
func parseDateRange(c *gin.Context) (services.DateRange, error) {
	var dates services.DateRange
	for _, q := range []struct {
		name string
		dest **time.Time
	}{
		{"from_date", &dates.From},
		{"to_date", &dates.To},
	} {
		v := c.Query(q.name)
		if v == "" {
			continue
		}
		t, err := parseDate(q.name, v)
		if err != nil {
			return dates, err
		}
		*q.dest = &t
	}
	if dates.From != nil && dates.To != nil && dates.To.Before(*dates.From) {
		return dates, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date cannot be before from_date")
	}
	return dates, nil
}

// parseAnimalKind validates an animal kind taken from a path or query value.
func parseAnimalKind(v string) (models.AnimalKind, error) {
	kind := models.AnimalKind(v)
	switch kind {
	case models.AnimalKindBreedingStock, models.AnimalKindOffspring:
		return kind, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid kind, must be breeding_stock or offspring")
}

// parseRecordFilter reads the per-animal record filters shared by the
// feeding, health, vaccination and weight listings.
func parseRecordFilter(c *gin.Context) (services.RecordFilter, error) {
	var filter services.RecordFilter

	if v := c.Query("kind"); v != "" {
		kind, err := parseAnimalKind(v)
		if err != nil {
			return filter, err
		}
		filter.Kind = &kind
	}

	if v := c.Query("animal_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid animal_id")
		}
		filter.AnimalID = &id
	}

	dates, err := parseDateRange(c)
	if err != nil {
		return filter, err
	}
	filter.FromDate, filter.ToDate = dates.From, dates.To

	return filter, nil
}

// optionalQueryID reads an optional UUID query parameter.
func optionalQueryID(c *gin.Context, name string) (*string, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+name)
	}
	return &id, nil
}

// TargetRequest names the animal a record belongs to. Exactly one of the
// two ids must be set.
type TargetRequest struct {
	BreedingStockID *string `json:"breeding_stock_id" binding:"omitempty,uuid"`
	OffspringID     *string `json:"offspring_id" binding:"omitempty,uuid"`
}

// Ref converts the request into an AnimalRef, rejecting zero or two targets.
func (r TargetRequest) Ref() (models.AnimalRef, error) {
	stock := r.BreedingStockID != nil && *r.BreedingStockID != ""
	offspring := r.OffspringID != nil && *r.OffspringID != ""
	switch {
	case stock && !offspring:
		return models.NewAnimalRef(models.AnimalKindBreedingStock, *r.BreedingStockID), nil
	case offspring && !stock:
		return models.NewAnimalRef(models.AnimalKindOffspring, *r.OffspringID), nil
	}
	return models.AnimalRef{}, apperrors.ErrInvalidTarget
}

// respondWithError records err on the context for middleware.ErrorHandler,
// which logs and counts it, and writes the JSON error response.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
