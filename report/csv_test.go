package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradyjeong/ampbench/benchmark"
)

func TestSaveSummaryCSV(t *testing.T) {
	dir := t.TempDir()
	results := []benchmark.Result{
		cityResult(),
		{Scene: "warmup", File: "benchmark_warmup.json"}, // no frames, no row
	}

	var out bytes.Buffer
	path, err := SaveSummaryCSV(dir, results, &out)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, CSVFileName), path)
	assert.Equal(t, "CSV saved to: "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2, "header plus one analyzed row")

	assert.Equal(t, strings.TrimSuffix(csvHeader, "\n"), lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 18)
	assert.Equal(t, "city_drive", fields[0])
	assert.Equal(t, "benchmark_city_drive.json", fields[1])
	assert.Equal(t, "10", fields[2])
	assert.Equal(t, "19.00", fields[3], "average frame time")
	assert.Equal(t, "10.00", fields[4], "min frame time")
	assert.Equal(t, "28.00", fields[5], "max frame time")
	assert.Equal(t, "28.00", fields[6], "p95")
	assert.Equal(t, "28.00", fields[7], "p99")
	assert.Equal(t, "52.6", fields[8], "average FPS")
	assert.Equal(t, "35.7", fields[9], "minimum FPS")
	assert.Equal(t, "0.20", fields[10])
	assert.Equal(t, "2.10", fields[11])
	assert.Equal(t, "0.80", fields[12])
	assert.Equal(t, "1.20", fields[13])
	assert.Equal(t, "12500", fields[14])
	assert.Equal(t, "87500", fields[15])
	assert.Equal(t, "340", fields[16])
	assert.Equal(t, "512.5", fields[17])
}

func TestSaveSummaryCSVQuotesFreeTextFields(t *testing.T) {
	dir := t.TempDir()
	tricky := cityResult()
	tricky.Scene = `city, night "wet"`

	_, err := SaveSummaryCSV(dir, []benchmark.Result{tricky}, io.Discard)
	require.NoError(t, err)

	file, err := os.Open(filepath.Join(dir, CSVFileName))
	require.NoError(t, err)
	defer file.Close()

	// A scene name with commas and quotes must still yield a well-formed row.
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, records[1], 18)
	assert.Equal(t, `city, night "wet"`, records[1][0])
	assert.Equal(t, "benchmark_city_drive.json", records[1][1])
	assert.Equal(t, "19.00", records[1][3])
}

func TestCSVFieldPlainValuesUntouched(t *testing.T) {
	assert.Equal(t, "city_drive", csvField("city_drive"))
	assert.Equal(t, "benchmark_city.json", csvField("benchmark_city.json"))
	assert.Equal(t, `"a,b"`, csvField("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvField(`say "hi"`))
}

func TestSaveSummaryCSVHeaderArity(t *testing.T) {
	headerCols := strings.Split(strings.TrimSuffix(csvHeader, "\n"), ",")
	assert.Len(t, headerCols, 18, "header and row verbs must stay in lockstep")
}

func TestSaveSummaryCSVEmptyResults(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveSummaryCSV(dir, nil, io.Discard)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, csvHeader, string(data), "header only when nothing was analyzed")
}

func TestSaveSummaryCSVCreateFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := SaveSummaryCSV(missing, nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv create failed")
}
