// Package market provides the outbound API client for the batch submitter.
//
// This package implements the HTTP layer for submitting one record at a time
// to the configured market endpoint. It wraps the Resty HTTP client with
// run-specific functionality:
//   - Connection Management: a persistent client reused across all rows with
//     a fixed per-call timeout, since calls are strictly sequential
//   - Request Construction: field-mapped query parameters combining record
//     fields, fixed locale constants, and the credential token
//   - Outcome Classification: an injectable success predicate (default:
//     exactly HTTP 200) separating Success from Failed responses
//   - Logging Integration: Resty's internal logs and per-request traces are
//     routed through the run's structured logger
//
// Transport-level errors (timeouts, refused connections) classify the row as
// Failed and never abort the batch. Only request-construction failures are
// returned as errors, which the processing loop records as Error rows.
package market

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/halex5000/pinot-noir-code/internal/catalog"
	"github.com/halex5000/pinot-noir-code/internal/logging"
	"github.com/halex5000/pinot-noir-code/internal/version"
)

// Fixed request parameters. The market API expects these regardless of input;
// they are not derived from record fields.
const (
	paramCurrencyCode = "USD"
	paramLocation     = "MA"
	paramState        = "MA"
	paramOfferType    = "sale"
	paramCountry      = "USA"
)

// SuccessPredicate decides whether a response status code counts as Success.
// Injectable because the target service's success semantics may differ from
// the default single-code convention.
type SuccessPredicate func(statusCode int) bool

// DefaultSuccess is the stock predicate: exactly HTTP 200 counts as Success,
// every other status classifies the row as Failed.
func DefaultSuccess(statusCode int) bool {
	return statusCode == http.StatusOK
}

// Config carries the fully-specified client configuration so the interactive
// and flag-driven shells construct identical clients.
type Config struct {
	Endpoint  string           // base URL of the market API
	APIKey    string           // credential token sent as a query parameter
	Timeout   time.Duration    // per-call bound; exceeding it marks the row Failed
	IsSuccess SuccessPredicate // nil selects DefaultSuccess
}

// Client wraps the Resty HTTP client with submitter-specific functionality.
// A single Client is shared across all rows of a run for connection reuse;
// this carries no concurrency concerns since calls are strictly sequential.
type Client struct {
	client    *resty.Client
	endpoint  string
	apiKey    string
	isSuccess SuccessPredicate
	log       *logging.Logger
}

// restyLogger implements resty.Logger and routes logs through the run logger
type restyLogger struct {
	log *logging.Logger
}

// Errorf routes error messages through structured logging.
func (s restyLogger) Errorf(format string, v ...interface{}) {
	s.log.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s restyLogger) Warnf(format string, v ...interface{}) {
	s.log.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s restyLogger) Debugf(format string, v ...interface{}) {
	s.log.Debug(format, v...)
}

// New creates a market API client with the configured timeout, headers, and
// logging integration. Retries are deliberately left off: every row gets
// exactly one call and one classification.
func New(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	isSuccess := cfg.IsSuccess
	if isSuccess == nil {
		isSuccess = DefaultSuccess
	}

	client := resty.New()

	// Route Resty's internal logging through the run's structured logger
	client.SetLogger(restyLogger{log: logger})

	client.
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("pinotctl/%s", version.PinotctlVersion))

	// Per-request tracing at debug level
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &Client{
		client:    client,
		endpoint:  cfg.Endpoint,
		apiKey:    cfg.APIKey,
		isSuccess: isSuccess,
		log:       logger,
	}
}

// MapParams translates a record's fields into the fixed outbound parameter
// set. Missing columns map to empty values; the price parameter is included
// only when a non-empty mock price is supplied. Mapping is pure: identical
// records always yield identical parameters.
func MapParams(apiKey string, rec catalog.Record, mockPrice string) url.Values {
	name, _ := rec.Lookup(catalog.FieldWineName)
	vintage, _ := rec.Lookup(catalog.FieldVintage)

	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("winename", name)
	params.Set("vintage", vintage)
	params.Set("currencycode", paramCurrencyCode)
	params.Set("location", paramLocation)
	params.Set("state", paramState)
	params.Set("offer_type", paramOfferType)
	params.Set("country", paramCountry)

	if mockPrice != "" {
		params.Set("price", mockPrice)
	}

	return params
}

// Submit performs the outbound call for one record and classifies the outcome.
// Returns (true, nil) for Success, (false, nil) for Failed (non-success status
// or transport error), and a non-nil error only when the request could not be
// constructed at all; the caller records those rows as Error.
func (c *Client) Submit(rec catalog.Record, mockPrice string) (bool, error) {
	if _, err := url.Parse(c.endpoint); err != nil {
		return false, fmt.Errorf("cannot build request for row %d: %w", rec.Row, err)
	}

	params := MapParams(c.apiKey, rec, mockPrice)
	c.log.Debug("Row %d mapped parameters: winename=%q vintage=%q",
		rec.Row, params.Get("winename"), params.Get("vintage"))

	resp, err := c.client.R().
		SetQueryParamsFromValues(params).
		Get(c.endpoint)
	if err != nil {
		// Transport failures classify the row as Failed, never abort the run
		c.log.Error("Request error: %v", err)
		return false, nil
	}

	if !c.isSuccess(resp.StatusCode()) {
		c.log.Error("API call failed with status %d: %s", resp.StatusCode(), resp.String())
		return false, nil
	}

	c.log.Debug("API call successful: %.200s", resp.String())
	return true, nil
}
