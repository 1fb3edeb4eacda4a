package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/services"
)

// RegisterValidators installs the pay_period and filing_status tags on gin's
// validator and reports JSON field names in validation errors.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("pay_period", func(fl validator.FieldLevel) bool {
		return services.IsValidPayPeriod(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register pay_period validator: %w", err)
	}
	if err := v.RegisterValidation("filing_status", func(fl validator.FieldLevel) bool {
		return services.IsValidFilingStatus(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register filing_status validator: %w", err)
	}
	return nil
}

// validationMessage turns a binding error into a caller-facing message
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return constants.InvalidRequestBody + ": " + err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "pay_period":
			messages = append(messages, fmt.Sprintf("%s must be one of weekly, biweekly, semimonthly, monthly, annual", fe.Field()))
		case "filing_status":
			messages = append(messages, fmt.Sprintf("%s must be one of single, married_joint, married_separate, head", fe.Field()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}
