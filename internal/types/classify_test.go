package types

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type code int

func TestKindOf(t *testing.T) {
	var nilPtr *int

	tests := []struct {
		name     string
		input    interface{}
		expected Kind
	}{
		{"int", 1, KindInteger},
		{"int64", int64(1), KindInteger},
		{"uint8", uint8(1), KindInteger},
		{"string", "x", KindString},
		{"empty string", "", KindString},
		{"float64", 2.5, KindFloat},
		{"float32", float32(2.5), KindFloat},
		{"bool true", true, KindBoolean},
		{"bool false", false, KindBoolean},
		{"nil", nil, KindNull},
		{"typed nil pointer", nilPtr, KindOther},
		{"named int", code(3), KindOther},
		{"slice", []int{1}, KindOther},
		{"struct", struct{}{}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.input))
		})
	}
}

func TestKindKeysAndLabels(t *testing.T) {
	keys := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		keys = append(keys, k.Key())
	}
	assert.Equal(t, []string{"integers", "strings", "floats", "booleans", "nones", "others"}, keys)
	assert.Equal(t, "Booleans", KindBoolean.String())
	assert.Equal(t, "unknown", Kind(42).Key())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("int")
	assert.True(t, ok)
	assert.Equal(t, KindInteger, k)

	k, ok = ParseKind("")
	assert.True(t, ok)
	assert.Equal(t, KindFloat, k)

	_, ok = ParseKind("string")
	assert.False(t, ok)
}

func TestByType_MixedSequence(t *testing.T) {
	b := ByType([]interface{}{true, 1, "x", nil, 2.5}, Options{})

	assert.Equal(t, []interface{}{true}, b.Get(KindBoolean))
	assert.Equal(t, []interface{}{1}, b.Get(KindInteger))
	assert.Equal(t, []interface{}{"x"}, b.Get(KindString))
	assert.Equal(t, []interface{}{nil}, b.Get(KindNull))
	assert.Equal(t, []interface{}{2.5}, b.Get(KindFloat))
	assert.Empty(t, b.Get(KindOther))
}

func TestByType_Partition(t *testing.T) {
	input := []interface{}{3, "a", 1.5, false, nil, []byte("raw"), 7, "b", nil, 0.25, code(9)}
	b := ByType(input, Options{})

	assert.Equal(t, len(input), b.Len())

	total := 0
	for _, k := range AllKinds {
		for _, v := range b.Get(k) {
			assert.Equal(t, k, KindOf(v))
		}
		total += b.Count(k)
	}
	assert.Equal(t, len(input), total)
}

func TestByType_PreservesOrderWithinBucket(t *testing.T) {
	b := ByType([]interface{}{5, "z", 3, "a", 4}, Options{})

	assert.Equal(t, []interface{}{5, 3, 4}, b.Get(KindInteger))
	assert.Equal(t, []interface{}{"z", "a"}, b.Get(KindString))
}

func TestByType_Empty(t *testing.T) {
	b := ByType(nil, Options{})

	assert.Equal(t, 0, b.Len())
	for _, k := range AllKinds {
		assert.Empty(t, b.Get(k))
	}
}

func TestByType_Map(t *testing.T) {
	m := ByType([]interface{}{1, "x"}, Options{}).Map()

	assert.Len(t, m, 6)
	assert.Equal(t, []interface{}{1}, m["integers"])
	assert.Equal(t, []interface{}{"x"}, m["strings"])
	assert.Empty(t, m["others"])
}

func TestByType_VerboseSummary(t *testing.T) {
	var buf bytes.Buffer
	input := []interface{}{1, 2, "x", nil}

	verbose := ByType(input, Options{Verbose: true, Output: &buf})
	silent := ByType(input, Options{})

	assert.Equal(t, "Integers: 2\nStrings: 1\nFloats: 0\nBooleans: 0\nNones: 1\nOthers: 0\n", buf.String())
	assert.Equal(t, silent.Map(), verbose.Map(), "printing must not alter the partition")
}

func TestByType_QuietWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	ByType([]interface{}{1}, Options{Output: &buf})
	assert.Empty(t, buf.String())
}

func TestProportions(t *testing.T) {
	r, err := Proportions([]interface{}{1, 2, "x", 2.5}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, r.Total)
	assert.InDelta(t, 50.0, r.Get(KindInteger), 1e-9)
	assert.InDelta(t, 25.0, r.Get(KindString), 1e-9)
	assert.InDelta(t, 25.0, r.Get(KindFloat), 1e-9)
	assert.Zero(t, r.Get(KindNull))
	assert.InDelta(t, 100.0, r.Sum(), 1e-9)
}

func TestProportions_SumToHundred(t *testing.T) {
	inputs := [][]interface{}{
		{1},
		{1, "a", 2.0},
		{nil, nil, true, false, "s", 3, 4.5},
		{1, 2, 3, 4, 5, 6, "x"},
	}

	for _, in := range inputs {
		r, err := Proportions(in, Options{})
		require.NoError(t, err)
		assert.InDelta(t, 100.0, r.Sum(), 100*1e-9)
	}
}

func TestProportions_EmptyInput(t *testing.T) {
	r, err := Proportions([]interface{}{}, Options{})
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestProportions_VerboseOnlyPrintsPercentages(t *testing.T) {
	var buf bytes.Buffer
	_, err := Proportions([]interface{}{1, "x"}, Options{Verbose: true, Output: &buf})
	require.NoError(t, err)

	assert.Equal(t, "Integers: 50\nStrings: 50\nFloats: 0\nBooleans: 0\nNones: 0\nOthers: 0\n", buf.String())
}

func TestProportions_Map(t *testing.T) {
	r, err := Proportions([]interface{}{nil}, Options{})
	require.NoError(t, err)

	m := r.Map()
	assert.Len(t, m, 6)
	assert.Equal(t, 100.0, m["nones"])
}
