package types

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"
)

var (
	// ErrNoInput is returned when MinMax is called without any sequence.
	ErrNoInput = errors.New("no sequences given")

	// ErrUnorderable is returned when the elements share a type with no total order.
	ErrUnorderable = errors.New("elements have no total order")
)

// Range is the minimum and maximum over one or more sequences.
type Range struct {
	Minimum interface{}
	Maximum interface{}
}

// Map returns the range keyed "minimum" and "maximum".
func (r *Range) Map() map[string]interface{} {
	return map[string]interface{}{"minimum": r.Minimum, "maximum": r.Maximum}
}

// MinMax returns the range over lists, coercing to float64 when the
// elements do not all share one runtime type.
func MinMax(lists ...[]interface{}) (*Range, error) {
	return MinMaxAs(KindFloat, lists...)
}

// MinMaxAs is MinMax with an explicit coercion target (KindFloat or KindInteger).
func MinMaxAs(target Kind, lists ...[]interface{}) (*Range, error) {
	if target != KindFloat && target != KindInteger {
		return nil, fmt.Errorf("unsupported coercion target %q", target.Key())
	}
	if len(lists) == 0 {
		return nil, ErrNoInput
	}

	values := lists[0]
	if len(lists) > 1 {
		values = merge(lists)
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	if uniformType(values) {
		return extremesOf(values)
	}

	coerced, err := Coerce(values, target)
	if err != nil {
		return nil, err
	}
	return extremesOf(coerced)
}

func merge(lists [][]interface{}) []interface{} {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]interface{}, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func uniformType(values []interface{}) bool {
	first := reflect.TypeOf(values[0])
	for _, v := range values[1:] {
		if reflect.TypeOf(v) != first {
			return false
		}
	}
	return true
}

// extremesOf expects every element to share the type of values[0].
func extremesOf(values []interface{}) (*Range, error) {
	switch values[0].(type) {
	case int:
		return extremes[int](values), nil
	case int8:
		return extremes[int8](values), nil
	case int16:
		return extremes[int16](values), nil
	case int32:
		return extremes[int32](values), nil
	case int64:
		return extremes[int64](values), nil
	case uint:
		return extremes[uint](values), nil
	case uint8:
		return extremes[uint8](values), nil
	case uint16:
		return extremes[uint16](values), nil
	case uint32:
		return extremes[uint32](values), nil
	case uint64:
		return extremes[uint64](values), nil
	case float32:
		return extremes[float32](values), nil
	case float64:
		return extremes[float64](values), nil
	case string:
		return extremes[string](values), nil
	case bool:
		return boolExtremes(values), nil
	case time.Time:
		return timeExtremes(values), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnorderable, values[0])
	}
}

// extremes skips NaN; a sequence of only NaN yields NaN for both ends.
func extremes[T cmp.Ordered](values []interface{}) *Range {
	var lo, hi T
	found := false
	for _, v := range values {
		x := v.(T)
		if x != x {
			continue
		}
		if !found {
			lo, hi, found = x, x, true
			continue
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if !found {
		nan := nanOf[T]()
		return &Range{Minimum: nan, Maximum: nan}
	}
	return &Range{Minimum: lo, Maximum: hi}
}

// nanOf returns NaN in T's own float type. Only float types can reach it,
// since NaN is the one value for which x != x.
func nanOf[T cmp.Ordered]() T {
	var nan T
	switch p := any(&nan).(type) {
	case *float32:
		*p = float32(math.NaN())
	case *float64:
		*p = math.NaN()
	}
	return nan
}

func boolExtremes(values []interface{}) *Range {
	lo, hi := true, false
	for _, v := range values {
		b := v.(bool)
		lo = lo && b
		hi = hi || b
	}
	return &Range{Minimum: lo, Maximum: hi}
}

func timeExtremes(values []interface{}) *Range {
	lo := values[0].(time.Time)
	hi := lo
	for _, v := range values[1:] {
		t := v.(time.Time)
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	return &Range{Minimum: lo, Maximum: hi}
}
