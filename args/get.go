package args

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Primitive is the set of types that [Get] and [GetOr] can convert a value to.
type Primitive interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

var (
	TrueValues  = []string{"1", "t", "true", "y", "yes", "on"}  // TrueValues are the values considered "true" when converting to a bool, and can be changed.
	FalseValues = []string{"0", "f", "false", "n", "no", "off"} // FalseValues are the values considered "false" when converting to a bool, and can be changed.
)

// Get resolves the value for name with [Arguments.Value], and converts it to T.
// A [MissingArgumentError] is returned if there is no value, or the value is empty.
// A [ConversionError] is returned if the value can't be converted.
func Get[T Primitive](a *Arguments, name string) (T, error) {
	raw, ok := a.Value(name)
	if !ok || len(raw) == 0 {
		var zero T
		return zero, &MissingArgumentError{Name: name}
	}
	return convert[T](name, raw)
}

// GetOr is like [Get], but returns def instead of a [MissingArgumentError].
func GetOr[T Primitive](a *Arguments, name string, def T) (T, error) {
	raw, ok := a.Value(name)
	if !ok || len(raw) == 0 {
		return def, nil
	}
	return convert[T](name, raw)
}

// Must is used with [Get] or [GetOr] to panic if the value is missing or can't be converted.
// The developer often knows whether a get call will fail, like when a required [Definition] has already been validated.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func convert[T Primitive](name, raw string) (T, error) {
	var (
		out     T
		err     error
		trimmed = strings.TrimSpace(raw)
	)
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = parseBool(trimmed)
	case *int:
		*p, err = parseSigned[int](trimmed, strconv.IntSize)
	case *int8:
		*p, err = parseSigned[int8](trimmed, 8)
	case *int16:
		*p, err = parseSigned[int16](trimmed, 16)
	case *int32:
		*p, err = parseSigned[int32](trimmed, 32)
	case *int64:
		*p, err = parseSigned[int64](trimmed, 64)
	case *uint:
		*p, err = parseUnsigned[uint](trimmed, strconv.IntSize)
	case *uint8:
		*p, err = parseUnsigned[uint8](trimmed, 8)
	case *uint16:
		*p, err = parseUnsigned[uint16](trimmed, 16)
	case *uint32:
		*p, err = parseUnsigned[uint32](trimmed, 32)
	case *uint64:
		*p, err = parseUnsigned[uint64](trimmed, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(trimmed, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(trimmed, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(trimmed)
	}
	if err != nil {
		var zero T
		return zero, &ConversionError{Name: name, Value: raw, Type: fmt.Sprintf("%T", zero), Err: err}
	}
	return out, nil
}

func parseBool(val string) (bool, error) {
	val = strings.ToLower(val)
	for _, t := range TrueValues {
		if val == strings.ToLower(t) {
			return true, nil
		}
	}
	for _, f := range FalseValues {
		if val == strings.ToLower(f) {
			return false, nil
		}
	}
	return false, fmt.Errorf("invalid boolean value '%s'", val)
}

func parseSigned[I int | int8 | int16 | int32 | int64](val string, bits int) (I, error) {
	i, err := strconv.ParseInt(val, 10, bits)
	if err != nil {
		return 0, err
	}
	return I(i), nil
}

func parseUnsigned[U uint | uint8 | uint16 | uint32 | uint64](val string, bits int) (U, error) {
	u, err := strconv.ParseUint(val, 10, bits)
	if err != nil {
		return 0, err
	}
	return U(u), nil
}
