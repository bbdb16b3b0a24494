package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCommandStructure(t *testing.T) {
	assert.Equal(t, "match <file.csv>", matchCmd.Use)
	assert.NotEmpty(t, matchCmd.Short)
	assert.Contains(t, matchCmd.Long, "Example:")

	for _, name := range []string{"column", "value", "contains", "min-similarity", "output"} {
		assert.NotNil(t, matchCmd.Flags().Lookup(name), name)
	}
}

func TestRunMatch(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	out, err := executeCommand(t, "match", csvPath, "--config", cfg, "--column", "result", "--value", "détecté")
	require.NoError(t, err)
	assert.Equal(t, "détecté (3 variants)\n  \"détecté\"\n  \"DETECTE\"\n  \"Détecté\"\n", out)
}

func TestRunMatch_Contains(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	out, err := executeCommand(t, "match", csvPath, "--config", cfg, "--column", "result", "--value", "détecté", "--contains")
	require.NoError(t, err)
	assert.Contains(t, out, "(4 variants)")
	assert.Contains(t, out, "\"non détecté\"")
}

func TestRunMatch_OutputRows(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)
	target := filepath.Join(dir, "detected.csv")

	_, err := executeCommand(t, "match", csvPath, "--config", cfg, "--column", "result", "--value", "détecté", "--output", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,sodium,result,sampled_at", lines[0])
	assert.NotContains(t, string(data), "non détecté")
}

func TestRunMatch_NoVariantsNothingWritten(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)
	target := filepath.Join(dir, "none.csv")

	_, err := executeCommand(t, "match", csvPath, "--config", cfg, "--column", "result", "--value", "absent", "--output", target)
	require.Error(t, err)
	assert.NoFileExists(t, target)
}

func TestRunMatch_InvalidSimilarity(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	csvPath := writeFile(t, dir, "samples.csv", samplesCSV)

	_, err := executeCommand(t, "match", csvPath, "--config", cfg, "--column", "result", "--value", "x", "--min-similarity", "1.5")
	assert.Error(t, err)
}
