package simulation

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/cashsight/simulator/internal/logger"
)

// Generator produces the synthetic dataset. It owns a single seeded PRNG and
// a fixed as-of date, so a run is reproducible for a given seed, as-of date,
// and call order. Tests construct their own Generator per case.
type Generator struct {
	rng  *rand.Rand
	fake *gofakeit.Faker
	asOf time.Time
	log  *logger.Logger
}

// New creates a Generator seeded once for the whole run. asOf is the
// simulation's "today"; every date comparison in the pipeline uses it
// instead of the wall clock.
func New(seed int64, asOf time.Time, log *logger.Logger) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		fake: gofakeit.New(uint64(seed)),
		asOf: asOf,
		log:  log,
	}
}

// AsOf returns the simulation reference date.
func (g *Generator) AsOf() time.Time {
	return g.asOf
}

// newID returns a 32-character hex identifier.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// intBetween draws uniformly from [low, high], both inclusive.
func (g *Generator) intBetween(low, high int) int {
	if high <= low {
		return low
	}
	return low + g.rng.Intn(high-low+1)
}

func (g *Generator) floatBetween(low, high float64) float64 {
	return low + g.rng.Float64()*(high-low)
}

// weightedIndex draws an index from a discrete weighted distribution.
func (g *Generator) weightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func (g *Generator) coinFlip() bool {
	return g.rng.Intn(2) == 0
}

// dateBetween draws a date uniformly from [start, end] at day granularity.
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.intBetween(0, days))
}

// monthStart truncates t to the first day of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysInMonth returns the calendar length of t's month.
func daysInMonth(t time.Time) int {
	first := monthStart(t)
	return first.AddDate(0, 1, -1).Day()
}

// monthsBetween counts calendar-month boundaries from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
