package frame

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectColumn(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(labCSV), DefaultCSVOptions())
	require.NoError(t, err)

	sum, err := InspectColumn(df, "sodium")
	require.NoError(t, err)

	assert.Equal(t, "sodium", sum.Name)
	assert.Equal(t, series.Int, sum.Type)
	assert.Equal(t, 3, sum.Rows)
	assert.Equal(t, 1, sum.Nulls)
	assert.Equal(t, 2, sum.Distinct)
}

func TestInspectColumn_Missing(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(labCSV), DefaultCSVOptions())
	require.NoError(t, err)

	_, err = InspectColumn(df, "potassium")
	assert.Error(t, err)
}

func TestInspectAll(t *testing.T) {
	df, err := ReadCSV(strings.NewReader("a,b\n1,x\n1,\n2,x\n"), DefaultCSVOptions())
	require.NoError(t, err)

	sums := InspectAll(df)
	require.Len(t, sums, 2)

	assert.Equal(t, "a", sums[0].Name)
	assert.Equal(t, 0, sums[0].Nulls)
	assert.Equal(t, 2, sums[0].Distinct)

	assert.Equal(t, "b", sums[1].Name)
	assert.Equal(t, 1, sums[1].Nulls)
	assert.Equal(t, 1, sums[1].Distinct)
}
