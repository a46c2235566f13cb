package validator

import (
	"github.com/Behyna/sms-services/notifier/internal/metrics"
	"github.com/go-playground/validator/v10"
)

type Error struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       any    `json:"-"`
}

type IXValidator interface {
	Validate(data any) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	for key, function := range valid {
		_ = validator.RegisterValidation(key, function)
	}

	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

func (x XValidator) Validate(data any) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs == nil {
		return nil
	}

	fieldErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return []Error{{FailedField: "", Tag: "invalid", Value: data}}
	}

	for _, err := range fieldErrs {
		validationErrors = append(validationErrors, Error{
			FailedField: err.Field(),
			Tag:         err.Tag(),
			Value:       err.Value(),
		})

		if x.metrics != nil {
			x.metrics.RecordValidationError(err.Field(), err.Tag())
		}
	}

	return validationErrors
}
