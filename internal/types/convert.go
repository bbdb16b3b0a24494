package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	errNull        = errors.New("null value has no numeric form")
	errEmptyString = errors.New("empty string has no numeric form")
)

// ConversionError is returned when an element cannot be coerced to the target kind.
type ConversionError struct {
	Index  int         // Position in the merged input
	Value  interface{} // Offending element
	Target Kind
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert element %d (%#v) to %s: %v", e.Index, e.Value, e.Target.Key(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ToFloat64 converts v to float64.
// Strings are parsed after trimming, bools map to 0 and 1. Nil never converts.
func ToFloat64(v interface{}) (float64, error) {
	v, err := prepare(v)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// ToInt64 converts v to int64.
// Floats truncate toward zero; strings must hold a base-10 integer, so
// zero-padded text such as "0042" is 42. "3.0" is accepted, "3.5" is not.
func ToInt64(v interface{}) (int64, error) {
	v, err := prepare(v)
	if err != nil {
		return 0, err
	}
	if s, ok := v.(string); ok {
		return parseDecimalInt(s)
	}
	return cast.ToInt64E(v)
}

// parseDecimalInt never reads a leading zero as octal or accepts 0x/0b prefixes.
func parseDecimalInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%q overflows int64", s)
	}

	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || strings.ContainsAny(s, "xX") || f != math.Trunc(f) ||
		math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%q is not a base-10 integer", s)
	}
	return int64(f), nil
}

func prepare(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case nil:
		return nil, errNull
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, errEmptyString
		}
		return s, nil
	}
	return v, nil
}

// Coerce converts every element to target, which must be KindFloat or KindInteger.
// The first element that fails aborts the conversion with a *ConversionError.
func Coerce(values []interface{}, target Kind) ([]interface{}, error) {
	if target != KindFloat && target != KindInteger {
		return nil, fmt.Errorf("unsupported coercion target %q", target.Key())
	}

	out := make([]interface{}, len(values))
	for i, v := range values {
		var (
			c   interface{}
			err error
		)
		if target == KindInteger {
			c, err = ToInt64(v)
		} else {
			c, err = ToFloat64(v)
		}
		if err != nil {
			return nil, &ConversionError{Index: i, Value: v, Target: target, Err: err}
		}
		out[i] = c
	}
	return out, nil
}
