package validation

import (
	"reflect"
	"regexp"
	"strings"

	"ledger-engine/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("bank_code", validateBankCode)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("category_id", validateCategoryID)
	_ = v.RegisterValidation("statement_date", validateStatementDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateBankCode validates that a bank identifier is one of the supported banks
func validateBankCode(fl validator.FieldLevel) bool {
	return models.IsSupportedBank(strings.ToUpper(fl.Field().String()))
}

// validateCurrencyCode validates that a currency is a 3-letter ISO-4217 code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(strings.ToUpper(fl.Field().String()))
}

// validateCategoryID validates that a category id is part of the fixed taxonomy
func validateCategoryID(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.IsValidCategoryID(int(fl.Field().Int()))
	default:
		return false
	}
}

var statementDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateStatementDate validates a YYYY-MM-DD date string
func validateStatementDate(fl validator.FieldLevel) bool {
	return statementDatePattern.MatchString(fl.Field().String())
}
