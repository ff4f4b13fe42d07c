package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func sampleResults() []Result {
	return []Result{
		{Row: 2, WineName: "Chateau A", Vintage: "1999", Status: StatusSuccess, MockPrice: "$27.50", Timestamp: "2026-08-26 10:00:00"},
		{Row: 3, WineName: "Domaine B", Vintage: "2012", Status: StatusFailed, MockPrice: "$29.10", Timestamp: "2026-08-26 10:00:01"},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return rows
}

// TestOutputPath tests the suffix substitution
func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "csv suffix", input: "wines.csv", expected: "wines_results.csv"},
		{name: "path with directories", input: "/data/in/wines.csv", expected: "/data/in/wines_results.csv"},
		{name: "no csv suffix", input: "wines.txt", expected: "wines.txt_results.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input); got != tt.expected {
				t.Errorf("OutputPath(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestWriteWithPriceColumn tests the row shape when mock pricing is enabled
func TestWriteWithPriceColumn(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "wines.csv")
	w := NewWriter(true, nil)

	outPath, err := w.Write(sampleResults(), inputPath)
	if err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if outPath != OutputPath(inputPath) {
		t.Errorf("expected output at %s, got %s", OutputPath(inputPath), outPath)
	}

	rows := readCSV(t, outPath)
	expectedHeader := []string{"Row", "Wine Name", "Vintage", "Status", "Mock Price", "Timestamp"}
	if !reflect.DeepEqual(rows[0], expectedHeader) {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	expectedRow := []string{"2", "Chateau A", "1999", "Success", "$27.50", "2026-08-26 10:00:00"}
	if !reflect.DeepEqual(rows[1], expectedRow) {
		t.Errorf("unexpected first row: %v", rows[1])
	}
}

// TestWriteWithoutPriceColumn tests the row shape when mock pricing is disabled
func TestWriteWithoutPriceColumn(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "wines.csv")
	w := NewWriter(false, nil)

	outPath, err := w.Write(sampleResults(), inputPath)
	if err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	rows := readCSV(t, outPath)
	expectedHeader := []string{"Row", "Wine Name", "Vintage", "Status", "Timestamp"}
	if !reflect.DeepEqual(rows[0], expectedHeader) {
		t.Errorf("unexpected header: %v", rows[0])
	}
	for _, row := range rows[1:] {
		if len(row) != 5 {
			t.Errorf("expected 5 columns without price, got %d: %v", len(row), row)
		}
	}
}

// TestOverwriteDeclined tests that declining the prompt produces a distinct
// timestamp-qualified output file and leaves the original intact
func TestOverwriteDeclined(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "wines.csv")

	w := NewWriter(false, func(string) bool { return false })
	w.now = func() time.Time { return time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC) }

	firstPath, err := w.Write(sampleResults(), inputPath)
	if err != nil {
		t.Fatalf("first Write() returned error: %v", err)
	}

	secondPath, err := w.Write(sampleResults()[:1], inputPath)
	if err != nil {
		t.Fatalf("second Write() returned error: %v", err)
	}

	if secondPath == firstPath {
		t.Fatal("declined overwrite should produce a distinct output path")
	}
	expected := filepath.Join(dir, "wines_results_20260826_103000.csv")
	if secondPath != expected {
		t.Errorf("expected alternate path %s, got %s", expected, secondPath)
	}

	// Original results file untouched: still header + 2 rows
	if rows := readCSV(t, firstPath); len(rows) != 3 {
		t.Errorf("original results file modified, got %d rows", len(rows))
	}
	if rows := readCSV(t, secondPath); len(rows) != 2 {
		t.Errorf("alternate results file wrong, got %d rows", len(rows))
	}
}

// TestOverwriteAccepted tests that accepting the prompt replaces the original
func TestOverwriteAccepted(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "wines.csv")

	w := NewWriter(false, func(string) bool { return true })

	firstPath, err := w.Write(sampleResults(), inputPath)
	if err != nil {
		t.Fatalf("first Write() returned error: %v", err)
	}
	secondPath, err := w.Write(sampleResults()[:1], inputPath)
	if err != nil {
		t.Fatalf("second Write() returned error: %v", err)
	}

	if secondPath != firstPath {
		t.Fatalf("accepted overwrite should reuse the original path")
	}
	if rows := readCSV(t, firstPath); len(rows) != 2 {
		t.Errorf("expected replaced file with header + 1 row, got %d rows", len(rows))
	}
}

// TestStdinPrompter tests answer parsing for the interactive prompt
func TestStdinPrompter(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		expect bool
	}{
		{name: "yes", answer: "yes\n", expect: true},
		{name: "y", answer: "y\n", expect: true},
		{name: "uppercase Y", answer: "Y\n", expect: true},
		{name: "no", answer: "n\n", expect: false},
		{name: "empty", answer: "\n", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := StdinPrompter(strings.NewReader(tt.answer), &out)
			if got := p("wines_results.csv"); got != tt.expect {
				t.Errorf("answer %q: expected %v, got %v", tt.answer, tt.expect, got)
			}
			if !strings.Contains(out.String(), "already exists") {
				t.Error("prompt should warn about the existing file")
			}
		})
	}
}

// TestWriteFailure tests that an unwritable target reports an error without
// panicking
func TestWriteFailure(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "no-such-dir", "wines.csv")
	w := NewWriter(false, nil)

	if _, err := w.Write(sampleResults(), inputPath); err == nil {
		t.Error("expected error for unwritable output path, got nil")
	}
}
