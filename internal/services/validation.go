package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their form names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateInput runs the struct's validate tags. The result is never nil; use
// Err to collapse an empty result.
func validateInput(input interface{}) *ValidationError {
	verr := &ValidationError{}

	err := validate.Struct(input)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("__all__", err.Error())
		return verr
	}

	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "datetime":
		return MsgInvalidDate
	default:
		return MsgInvalidValue
	}
}

// checkChoice adds MsgInvalidChoice for field when id is set but the row is missing.
func checkChoice(verr *ValidationError, field string, id uint64, exists func(uint64) (bool, error)) error {
	if id == 0 || verr.Has(field) {
		return nil
	}
	ok, err := exists(id)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", field, err)
	}
	if !ok {
		verr.Add(field, MsgInvalidChoice)
	}
	return nil
}
