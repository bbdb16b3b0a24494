package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplesCSV = `id,sodium,result,sampled_at
1,12,détecté,2024-01-01
2,3.5,DETECTE,2024-01-01
3,,non détecté,2024-01-03
4,7,Détecté,2024-02-10
`

func TestTypesCommandStructure(t *testing.T) {
	assert.Equal(t, "types <file.csv>", typesCmd.Use)
	assert.NotEmpty(t, typesCmd.Short)
	assert.Contains(t, typesCmd.Long, "Example:")
	assert.NotNil(t, typesCmd.RunE)

	for _, name := range []string{"column", "infer", "proportions"} {
		assert.NotNil(t, typesCmd.Flags().Lookup(name), name)
	}
}

func TestRunTypes_Column(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	out, err := executeCommand(t, "types", csvPath, "--config", cfg, "--column", "sodium", "--proportions")
	require.NoError(t, err)

	assert.Contains(t, out, "sodium\n")
	assert.Contains(t, out, "Floats    3\n")
	assert.Contains(t, out, "Nones     1\n")
	assert.Contains(t, out, "Total     4\n")
	assert.Contains(t, out, "Floats    75.00%\n")
	assert.Contains(t, out, "Nones     25.00%\n")
}

func TestRunTypes_AllColumns(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	out, err := executeCommand(t, "types", csvPath, "--config", cfg)
	require.NoError(t, err)

	for _, name := range []string{"id\n", "sodium\n", "result\n", "sampled_at\n"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Integers  4\n")
	assert.Contains(t, out, "Strings   4\n")
}

func TestRunTypes_Infer(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "csv:\n  detect_types: false\n")
	csvPath := writeFile(t, dir, "mixed.csv", "v\n1\n2.5\ntrue\nabc\n")

	out, err := executeCommand(t, "types", csvPath, "--config", cfg, "--column", "v", "--infer")
	require.NoError(t, err)

	assert.Contains(t, out, "Integers  1\n")
	assert.Contains(t, out, "Strings   1\n")
	assert.Contains(t, out, "Floats    1\n")
	assert.Contains(t, out, "Booleans  1\n")
}

func TestRunTypes_UnknownColumn(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	_, err := executeCommand(t, "types", csvPath, "--config", cfg, "--column", "potassium")
	assert.Error(t, err)
}

func TestRunTypes_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")

	_, err := executeCommand(t, "types", dir+"/absent.csv", "--config", cfg)
	assert.Error(t, err)
}
