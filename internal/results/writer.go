// Package results accumulates per-row outcomes and writes the sibling
// results table at the end of a batch run.
//
// The output path is derived from the input path by suffix substitution
// (wines.csv -> wines_results.csv). Overwrite protection is interactive: when
// the target already exists the operator is asked, and declining redirects
// the write to a timestamp-qualified alternate so no prior run is clobbered
// silently. The row shape depends on whether mock pricing was enabled for
// the run: the price column only exists when it carries generated values.
//
// Write failures are reported to the logger but never abort the run; the
// statistics computed by the processing loop stay valid regardless.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Status classifies one processed row.
type Status string

const (
	StatusSuccess Status = "Success" // outbound call returned the success indicator
	StatusFailed  Status = "Failed"  // non-success status or transport failure
	StatusError   Status = "Error"   // row could not be mapped or sent at all
)

// TimestampFormat is the layout used for per-row timestamps in the results
// table.
const TimestampFormat = "2006-01-02 15:04:05"

// Result is the outcome derived from one input row. Created during
// processing, appended to an ordered sequence, written out once at the end.
type Result struct {
	Row       int    // 1-based file position, header offset included
	WineName  string // extracted name field
	Vintage   string // extracted vintage field
	Status    Status
	MockPrice string // synthetic price, or the not-applicable marker
	Timestamp string // formatted with TimestampFormat
}

// Prompter answers whether an existing file at path may be overwritten.
// Injectable so the CLI can ask on the terminal while tests stay scripted.
type Prompter func(path string) bool

// StdinPrompter builds the interactive default: warns about the existing
// file on out and reads a y/n answer from in.
func StdinPrompter(in io.Reader, out io.Writer) Prompter {
	return func(path string) bool {
		fmt.Fprintf(out, "\nWarning: results file '%s' already exists!\n", path)
		fmt.Fprint(out, "Do you want to overwrite it? (y/n): ")

		var answer string
		fmt.Fscanln(in, &answer)
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

// Writer writes the results table for one run.
type Writer struct {
	includePrice bool
	prompt       Prompter
	now          func() time.Time
}

// NewWriter creates a results writer. includePrice selects the row shape for
// the run; prompt may be nil, in which case existing files are never
// overwritten and the alternate path is always used.
func NewWriter(includePrice bool, prompt Prompter) *Writer {
	if prompt == nil {
		prompt = func(string) bool { return false }
	}
	return &Writer{includePrice: includePrice, prompt: prompt, now: time.Now}
}

// OutputPath derives the results path from the input path by suffix
// substitution.
func OutputPath(inputPath string) string {
	if strings.HasSuffix(inputPath, ".csv") {
		return strings.TrimSuffix(inputPath, ".csv") + "_results.csv"
	}
	return inputPath + "_results.csv"
}

// alternatePath derives the timestamp-qualified fallback used when the
// operator declines to overwrite an existing results file.
func (w *Writer) alternatePath(inputPath string) string {
	stamp := w.now().Format("20060102_150405")
	if strings.HasSuffix(inputPath, ".csv") {
		return strings.TrimSuffix(inputPath, ".csv") + fmt.Sprintf("_results_%s.csv", stamp)
	}
	return inputPath + fmt.Sprintf("_results_%s.csv", stamp)
}

// Write writes the full ordered result sequence next to the original input.
// Returns the path actually written and any write failure; callers log the
// failure and continue, since run statistics remain valid either way.
func (w *Writer) Write(results []Result, inputPath string) (string, error) {
	outputPath := OutputPath(inputPath)

	if _, err := os.Stat(outputPath); err == nil {
		if !w.prompt(outputPath) {
			outputPath = w.alternatePath(inputPath)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return outputPath, fmt.Errorf("failed to create results file %s: %w", outputPath, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)

	header := []string{"Row", "Wine Name", "Vintage", "Status", "Timestamp"}
	if w.includePrice {
		header = []string{"Row", "Wine Name", "Vintage", "Status", "Mock Price", "Timestamp"}
	}
	if err := cw.Write(header); err != nil {
		return outputPath, fmt.Errorf("failed to write results header: %w", err)
	}

	for _, r := range results {
		row := []string{fmt.Sprintf("%d", r.Row), r.WineName, r.Vintage, string(r.Status), r.Timestamp}
		if w.includePrice {
			row = []string{fmt.Sprintf("%d", r.Row), r.WineName, r.Vintage, string(r.Status), r.MockPrice, r.Timestamp}
		}
		if err := cw.Write(row); err != nil {
			return outputPath, fmt.Errorf("failed to write result row %d: %w", r.Row, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return outputPath, fmt.Errorf("failed to flush results file %s: %w", outputPath, err)
	}

	return outputPath, nil
}
