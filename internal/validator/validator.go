package validator

import (
	"reflect"
	"strings"
	"sync"

	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	mu       sync.RWMutex
)

// NewValidator builds the shared validator. Field names in validation
// details use the json name so they match the interchange contract.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mu.Lock()
	validate = v
	mu.Unlock()
	return v
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *validator.Validate {
	mu.RLock()
	v := validate
	mu.RUnlock()
	if v == nil {
		return NewValidator()
	}
	return v
}

func ValidateRequest(req interface{}) error {
	v := GetValidator()
	if err := v.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fe := range validateErrs {
				details[fe.Namespace()] = fe.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
