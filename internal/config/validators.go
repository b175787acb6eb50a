package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator with the custom tags used by Config registered.
func newValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerExclusive(validate); err != nil {
		return nil, err
	}

	return validate, nil
}

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive,
// and reports fields by their flag name.
func registerExclusive(validate *validator.Validate) error {
	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return labelOf(fld)
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields are set.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() || field.Kind() != otherField.Kind() {
		return true
	}

	switch field.Kind() { //nolint:exhaustive
	case reflect.String:
		return field.String() == "" || otherField.String() == ""
	case reflect.Bool:
		return !field.Bool() || !otherField.Bool()
	default:
		return true
	}
}

// label returns the flag name of the Config field called name.
func label(name string) string {
	fld, ok := reflect.TypeOf(Config{}).FieldByName(name)
	if !ok {
		return name
	}

	return labelOf(fld)
}

func labelOf(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}
