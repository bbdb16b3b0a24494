// Package types classifies, coerces and orders the scalar values held in table columns.
package types

// Kind is the runtime-type category of a column element.
type Kind int

// Kinds in classification priority order.
const (
	KindInteger Kind = iota
	KindString
	KindFloat
	KindBoolean
	KindNull
	KindOther

	kindCount
)

// AllKinds lists every kind in classification priority order.
var AllKinds = []Kind{KindInteger, KindString, KindFloat, KindBoolean, KindNull, KindOther}

var kindKeys = [kindCount]string{"integers", "strings", "floats", "booleans", "nones", "others"}

var kindLabels = [kindCount]string{"Integers", "Strings", "Floats", "Booleans", "Nones", "Others"}

// Key returns the lower-case bucket key, e.g. "integers".
func (k Kind) Key() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindKeys[k]
}

// String returns the display label, e.g. "Integers".
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindLabels[k]
}

// ParseKind maps a coercion target name to a Kind.
// Only numeric kinds are accepted: "float", "int" and their aliases.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "float", "floats", "float64", "":
		return KindFloat, true
	case "int", "integer", "integers", "int64":
		return KindInteger, true
	default:
		return KindOther, false
	}
}

// KindOf reports the kind of v by exact runtime type.
// Checks run integer, string, float, boolean, null, other. Named types
// (type Code int) are not the predeclared type and fall through to other.
// Null is an identity test on the interface value; typed nil pointers are other.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case string:
		return KindString
	case float32, float64:
		return KindFloat
	case bool:
		return KindBoolean
	}
	if v == nil {
		return KindNull
	}
	return KindOther
}
