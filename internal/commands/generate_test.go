package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Time,Type,Service,Amount
2024-03-14 12:05:00,Expense,2F-5 Noodle Bar,-25.00
2024-03-15 12:30:00,Expense,2F-5 Noodle Bar,-30.00
2024-03-10 09:00:00,WeChat Top Up,Balance,100
`

func writeExport(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestGenerate_Text(t *testing.T) {
	path := writeExport(t, sampleCSV)

	var buf bytes.Buffer
	err := runGenerate(&buf, path, "", "campus", false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Visits:        2")
	assert.Contains(t, out, "¥55")
	assert.Contains(t, out, "2F-5 Noodle Bar")
	assert.Contains(t, out, "Personality:")
}

func TestGenerate_JSON(t *testing.T) {
	path := writeExport(t, sampleCSV)

	var buf bytes.Buffer
	err := runGenerate(&buf, path, "", "campus", true)
	require.NoError(t, err)

	var doc recapDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2, doc.Stats.Transactions)
	assert.Equal(t, "2F-5 Noodle Bar", doc.Stats.Favorite.Service)
	assert.Equal(t, 1, doc.Stats.Meta.CatCounts.Topup)
	assert.NotEmpty(t, doc.Personality.Label)
	assert.NotEmpty(t, doc.Quotes)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	path := writeExport(t, sampleCSV)

	var buf bytes.Buffer
	err := runGenerate(&buf, path, "", "nope", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGenerate_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runGenerate(&buf, filepath.Join(t.TempDir(), "missing.csv"), "", "campus", false)
	require.Error(t, err)
}

func TestGenerate_AllowListConfig(t *testing.T) {
	csv := "Time,Type,Service,Amount\n2024-03-14 12:05:00,Expense,Halal Canteen,-18.00\n"
	path := writeExport(t, csv)

	cfgPath := filepath.Join(t.TempDir(), "recap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("top_n: 8\ndining:\n  allow_list:\n    - Halal Canteen\n"), 0o644))

	var buf bytes.Buffer
	err := runGenerate(&buf, path, cfgPath, "campus", true)
	require.NoError(t, err)

	var doc recapDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Stats.Transactions, "allow-listed stall counts as dining")
}

func TestStats_JSON(t *testing.T) {
	path := writeExport(t, sampleCSV)

	var buf bytes.Buffer
	err := runStats(&buf, path, "", "campus")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 2, got["transactions"])
	assert.Contains(t, got, "hour_histogram")
	assert.Contains(t, got, "meta")
}
