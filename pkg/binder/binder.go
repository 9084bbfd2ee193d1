package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Func fills v from r.
type Func func(r *http.Request, v any) error

// Query binds URL query parameters to the fields of the struct v points to,
// using the `query` tag for parameter names. Fields without the tag, or
// tagged "-", are left alone. Pointer fields stay nil when their parameter
// is absent, so a handler can tell "not sent" from a zero value. An empty
// parameter counts as absent for every type but string.
//
//	type request struct {
//		Value  string   `query:"value"`
//		Min    *float64 `query:"min"`
//		Digits *int     `query:"digits"`
//	}
func Query() Func {
	return func(r *http.Request, v any) error {
		if err := bindValues(v, "query", r.URL.Query()); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		return nil
	}
}

// Signals decodes the datastar signals of r into v. GET requests carry
// them in the "datastar" query parameter, other methods in the JSON body.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseSignals, err)
		}
		return nil
	}
}

func bindValues(v any, tag string, values url.Values) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		if !values.Has(name) {
			continue
		}
		if err := setValue(rv.Field(i), values.Get(name)); err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
	}
	return nil
}

func setValue(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		if raw == "" && field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		ptr := reflect.New(field.Type().Elem())
		if err := setValue(ptr.Elem(), raw); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	if raw == "" && field.Kind() != reflect.String {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", raw)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", raw)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}
