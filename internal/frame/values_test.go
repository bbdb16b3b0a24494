package frame

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_Missing(t *testing.T) {
	df := dataframe.New(series.New([]int{1, 2}, series.Int, "a"))

	_, err := Column(df, "b")
	assert.Error(t, err)
}

func TestValues_NativeTypes(t *testing.T) {
	df := dataframe.New(
		series.New([]int{1, 2}, series.Int, "ints"),
		series.New([]float64{0.5, 1.5}, series.Float, "floats"),
		series.New([]bool{true, false}, series.Bool, "bools"),
		series.New([]string{"x", "y"}, series.String, "strings"),
	)

	tests := []struct {
		column   string
		expected []interface{}
	}{
		{"ints", []interface{}{1, 2}},
		{"floats", []interface{}{0.5, 1.5}},
		{"bools", []interface{}{true, false}},
		{"strings", []interface{}{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			s, err := Column(df, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Values(s))
		})
	}
}

func TestInferValues_MixedColumn(t *testing.T) {
	s := series.New([]string{"1", "x", "2.5", "TRUE", "NaN", " 7 "}, series.String, "mixed")

	assert.Equal(t, []interface{}{1, "x", 2.5, true, nil, 7}, InferValues(s))
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"42", 42},
		{"-3", -3},
		{"3.25", 3.25},
		{"1e3", 1000.0},
		{"false", false},
		{"True", true},
		{"yes", "yes"},
		{"0042", 42},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferCell(tt.input))
		})
	}
}
