// Package submit implements the batch record submitter: the single workflow
// this tool exists for.
//
// The processor reads the input table once, issues one outbound call per row
// in file order, classifies each outcome, accumulates an ordered result
// sequence, and hands it to the results writer exactly once at the end.
// Everything is sequential and single-threaded; the only suspension point is
// the fixed inter-row delay that paces calls against the remote service.
//
// ERROR TAXONOMY:
//   - missing input file or read failure: fatal, propagated to the caller
//   - request-construction failure: row recorded as Error, run continues
//   - transport failure or non-success status: row recorded as Failed,
//     run continues
//   - results-write failure: logged, never raised; statistics stay valid
//
// The processor takes a fully-specified Options value, so the interactive
// prompt flow and the flag-driven flow are just two adapters producing the
// same configuration.
package submit

import (
	"time"

	"github.com/google/uuid"

	"github.com/halex5000/pinot-noir-code/internal/catalog"
	"github.com/halex5000/pinot-noir-code/internal/logging"
	"github.com/halex5000/pinot-noir-code/internal/pricing"
	"github.com/halex5000/pinot-noir-code/internal/results"
)

// Stats aggregates counters describing one full pass over the input table.
// Skipped is declared for forward compatibility with row filtering but is
// never incremented by the current flow.
type Stats struct {
	RunID      string // identifies the run in the log
	Total      int    // rows seen
	Successful int    // rows whose call returned the success indicator
	Failed     int    // rows classified Failed or Error
	Skipped    int    // defined but currently unused
}

// Submitter performs the outbound call for one record. Satisfied by
// *market.Client; narrowed to an interface so tests can script outcomes.
type Submitter interface {
	Submit(rec catalog.Record, mockPrice string) (bool, error)
}

// Options carries the fully-constructed collaborators for one run.
type Options struct {
	Client    Submitter
	Pricer    *pricing.Generator
	Writer    *results.Writer
	Logger    *logging.Logger
	RateLimit time.Duration // inter-row delay, skipped after the last row
}

// Processor drives one batch run over an input table.
type Processor struct {
	client Submitter
	pricer *pricing.Generator
	writer *results.Writer
	log    *logging.Logger
	delay  time.Duration

	sleep func(time.Duration)
	now   func() time.Time
}

// New constructs a Processor from fully-specified options. A nil logger is
// replaced with a discarding one so collaborators can always log.
func New(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Processor{
		client: opts.Client,
		pricer: opts.Pricer,
		writer: opts.Writer,
		log:    logger,
		delay:  opts.RateLimit,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Run processes the input table and returns the run statistics. Only input
// read failures are returned as errors; row-level failures are recorded in
// the results and counters, and a results-write failure is logged without
// invalidating the returned statistics.
func (p *Processor) Run(inputPath string) (Stats, error) {
	stats := Stats{RunID: uuid.NewString()}

	records, err := catalog.ReadFile(inputPath)
	if err != nil {
		p.log.Error("Failed to read input table: %v", err)
		return stats, err
	}

	p.log.Info("Run %s: processing %d records from %s", stats.RunID, len(records), inputPath)

	resultRows := make([]results.Result, 0, len(records))

	for i, rec := range records {
		stats.Total++

		name := rec.WineName()
		vintage := rec.Vintage()
		rowPrice := p.pricer.Price(vintage)

		// The price travels as a request parameter only in mock-pricing
		// mode; the results row always carries the generated value.
		paramPrice := ""
		if p.pricer.Enabled() {
			paramPrice = rowPrice
		}

		var status results.Status
		ok, err := p.client.Submit(rec, paramPrice)
		switch {
		case err != nil:
			status = results.StatusError
			stats.Failed++
			p.log.Error("Row %d: Error processing row: %v", rec.Row, err)
		case ok:
			status = results.StatusSuccess
			stats.Successful++
			p.log.Info("Row %d: Successfully processed %s (%s)", rec.Row, name, vintage)
		default:
			status = results.StatusFailed
			stats.Failed++
			p.log.Error("Row %d: API call failed for %s (%s)", rec.Row, name, vintage)
		}

		resultRows = append(resultRows, results.Result{
			Row:       rec.Row,
			WineName:  name,
			Vintage:   vintage,
			Status:    status,
			MockPrice: rowPrice,
			Timestamp: p.now().Format(results.TimestampFormat),
		})

		// Rate limiting between rows; no delay after the last one
		if i < len(records)-1 && p.delay > 0 {
			p.sleep(p.delay)
		}
	}

	if outPath, err := p.writer.Write(resultRows, inputPath); err != nil {
		p.log.Error("Error writing results file: %v", err)
	} else {
		p.log.Success("Results written to %s", outPath)
	}

	p.log.Info("Run %s complete: %d total, %d successful, %d failed, %d skipped",
		stats.RunID, stats.Total, stats.Successful, stats.Failed, stats.Skipped)

	return stats, nil
}
