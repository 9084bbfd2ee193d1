package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	structValidator     *playground.Validate
	structValidatorOnce sync.Once
)

func structs() *playground.Validate {
	structValidatorOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		// Report the name callers see on the wire rather than the Go field name.
		v.RegisterTagNameFunc(fieldName)
		structValidator = v
	})
	return structValidator
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "yaml", "query", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Struct validates v against its `validate` struct tags and converts any
// failures into ValidationErrors with translation keys of the form
// "validation.<tag>".
//
//	type Limits struct {
//	    Digits *int `json:"digits" validate:"omitempty,gte=0,lte=20"`
//	}
//
//	err := validator.Struct(limits)
func Struct(v any) error {
	err := structs().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if errors.As(err, &invalid) {
		return errors.Join(ErrInvalidTarget, err)
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, translateFieldError(fe))
	}
	return errs
}

func translateFieldError(fe playground.FieldError) ValidationError {
	field := fe.Field()
	values := map[string]any{"field": field}
	if fe.Param() != "" {
		values["param"] = fe.Param()
	}

	var message string
	switch fe.Tag() {
	case "required":
		message = "field is required"
	case "gte", "min":
		message = fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		message = fmt.Sprintf("must be at most %s", fe.Param())
	case "ltefield":
		message = fmt.Sprintf("must not be greater than %s", fe.Param())
	case "gtefield":
		message = fmt.Sprintf("must not be less than %s", fe.Param())
	default:
		message = fmt.Sprintf("failed %q check", fe.Tag())
	}

	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    "validation." + fe.Tag(),
		TranslationValues: values,
	}
}
