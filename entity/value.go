package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value wraps a decoded json value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", raw)
	}
}

// Float returns the value as a float64, parsing strings.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case int64:
		return float64(raw), nil
	case int:
		return float64(raw), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		return f, errors.Wrapf(err, "value is not numeric: %q", raw)
	}
	return 0, errors.Errorf("value is not numeric: %T", v.Raw)
}

// Int returns the value as an int, parsing strings.
func (v Value) Int() (int, error) {
	switch raw := v.Raw.(type) {
	case float64:
		if raw != float64(int(raw)) {
			return 0, errors.Errorf("value is not an integer: %v", raw)
		}
		return int(raw), nil
	case int64:
		return int(raw), nil
	case int:
		return raw, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		return i, errors.Wrapf(err, "value is not an integer: %q", raw)
	}
	return 0, errors.Errorf("value is not an integer: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Line is a single listing record as values ordered by schema fields.
type Line []Value

// Listing is one page of records and the total matching the request.
type Listing struct {
	Total int
	Lines []Line
}

// Row is a single chart record keyed by field name.
type Row map[string]Value
