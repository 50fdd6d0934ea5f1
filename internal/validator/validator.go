// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn installs the custom types and tags on v.
func RegisterOn(v *validator.Validate) {
	// Validate decimals as numbers so gt/gte/lte tags work on them.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	_ = v.RegisterValidation("room_status", oneOf("available", "full", "maintenance"))
	_ = v.RegisterValidation("stock_category", oneOf("young", "prime", "old"))
	_ = v.RegisterValidation("stock_origin", oneOf("purchased", "birthed_elsewhere", "born_in_farm"))
	_ = v.RegisterValidation("animal_kind", oneOf("breeding_stock", "offspring"))
	_ = v.RegisterValidation("feed_type", oneOf("grain", "pellet", "mash", "supplement"))
	_ = v.RegisterValidation("feed_unit", oneOf("kg", "lb"))
	_ = v.RegisterValidation("health_status", oneOf("ongoing", "recovered", "critical"))
	_ = v.RegisterValidation("breeding_status", oneOf("pending", "confirmed_pregnant", "completed", "failed"))
	_ = v.RegisterValidation("income_source", oneOf("offspring_sale", "stock_sale", "manure", "service", "other"))
	_ = v.RegisterValidation("expense_category", oneOf("feed", "medication", "equipment", "labor", "utilities", "maintenance", "other"))
	_ = v.RegisterValidation("report_period", oneOf("week", "month", "custom", "all"))
}

func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return f
	}
	return nil
}

func oneOf(allowed ...string) validator.Func {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(fl validator.FieldLevel) bool {
		return set[fl.Field().String()]
	}
}
