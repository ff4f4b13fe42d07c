// Package pricing generates synthetic price strings for testing and demo runs.
//
// Mock pricing never reflects real market data: the price is a fixed base
// value chosen by vintage-year bracket plus a bounded random perturbation,
// formatted as a two-decimal USD string. When mock pricing is disabled the
// generator always yields the literal not-applicable marker so the price
// column carries no fabricated data.
package pricing

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// NotApplicable is returned for every price when mock pricing is disabled.
	NotApplicable = "N/A"

	// fallbackPrice is returned for vintages that do not parse as a year.
	fallbackPrice = "$32.99"
)

// Vintage bracket base prices in USD. The perturbation added on top stays
// within [variationMin, variationMax).
const (
	basePre2000 = 25 // older wines, but still affordable
	base2000s   = 35
	base2010s   = 28
	baseRecent  = 22

	variationMin = -5.0
	variationMax = 8.0
)

// Generator produces mock price strings. The randomness source is injectable
// so tests can pin a seed and assert exact determinism.
type Generator struct {
	enabled bool
	rng     *rand.Rand
}

// New creates a mock price generator. Passing a nil rng seeds one from the
// current time, which is the normal run configuration.
func New(enabled bool, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{enabled: enabled, rng: rng}
}

// Enabled reports whether mock pricing is active for this run. Controls both
// the price query parameter and the results file column shape.
func (g *Generator) Enabled() bool {
	return g.enabled
}

// Price returns the synthetic price string for a vintage. Disabled mode
// always yields NotApplicable; unparsable vintages yield the fixed fallback.
func (g *Generator) Price(vintage string) string {
	if !g.enabled {
		return NotApplicable
	}

	year, err := strconv.Atoi(strings.TrimSpace(vintage))
	if err != nil {
		return fallbackPrice
	}

	var base float64
	switch {
	case year < 2000:
		base = basePre2000
	case year < 2010:
		base = base2000s
	case year < 2020:
		base = base2010s
	default:
		base = baseRecent
	}

	variation := variationMin + g.rng.Float64()*(variationMax-variationMin)
	return fmt.Sprintf("$%.2f", base+variation)
}
