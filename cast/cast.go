package cast

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrUnsupported indicates that a value has no integer interpretation.
//
// It is wrapped together with the offending type.
var ErrUnsupported = errors.New("unsupported integer conversion")

// To converts v to the integer type I.
func To[I Int](v any) (I, error) {
	var zero I

	switch t := v.(type) {
	case nil:
		return zero, fmt.Errorf("%w: to %T from nil", ErrUnsupported, zero)
	case bool:
		return zero, fmt.Errorf("%w: to %T from %T", ErrUnsupported, zero, t)
	case string:
		if t == "" {
			return zero, fmt.Errorf("%w: to %T from empty string", ErrUnsupported, zero)
		}
	case float32:
		if err := checkFloat(float64(t)); err != nil {
			return zero, fmt.Errorf("to %T: %w", zero, err)
		}
	case float64:
		if err := checkFloat(t); err != nil {
			return zero, fmt.Errorf("to %T: %w", zero, err)
		}
	}

	if isIntVal(v) {
		return safemath.ConvertAny[I](v)
	}

	wide, err := cast.ToE[int64](v)
	if err != nil {
		return zero, err
	}

	return safemath.Convert[I](wide)
}

// ToMust converts v to the integer type I and panics on error.
func ToMust[I Int](v any) I {
	to, err := To[I](v)
	if err != nil {
		panic(err)
	}

	return to
}

// checkFloat rejects floats that cannot be represented as an int64 without
// losing information.
func checkFloat(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f {
		return fmt.Errorf("%w: fractional or non-finite %v", ErrUnsupported, f)
	}
	if f >= 1<<63 || f < -(1<<63) {
		return fmt.Errorf("%w: %v out of int64 range", ErrUnsupported, f)
	}

	return nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
