package ros

import (
	"fmt"
	"math"
	"runtime"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/internal/options"
)

type config struct {
	substitutionFraction float64
	minUncensored        int
	maxFractionCensored  float64

	// transformIn is applied to the observed values before the fit,
	// transformOut maps the fitted line back to concentrations.
	transformIn  func(float64) float64
	transformOut func(float64) float64

	workers int
}

type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{
		substitutionFraction: DefaultSubstitutionFraction,
		minUncensored:        DefaultMinUncensored,
		maxFractionCensored:  DefaultMaxFractionCensored,
		transformIn:          math.Log,
		transformOut:         math.Exp,
		workers:              runtime.NumCPU(),
	}
}

func newConfig(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func WithSubstitutionFraction(fraction float64) Option {
	return options.New(func(c *config) error {
		if math.IsNaN(fraction) || fraction < 0 {
			return fmt.Errorf("%w: substitution fraction %v", common.ErrorInvalidArgument, fraction)
		}
		c.substitutionFraction = fraction
		return nil
	})
}

// WithMinUncensored sets the fewest detected values needed to run the
// regression. Anything below 2 can not define a line.
func WithMinUncensored(n int) Option {
	return options.New(func(c *config) error {
		if n < 2 {
			return fmt.Errorf("%w: min uncensored %d", common.ErrorInvalidArgument, n)
		}
		c.minUncensored = n
		return nil
	})
}

func WithMaxFractionCensored(fraction float64) Option {
	return options.New(func(c *config) error {
		if !(fraction >= 0 && fraction <= 1) {
			return fmt.Errorf("%w: max fraction censored %v", common.ErrorInvalidArgument, fraction)
		}
		c.maxFractionCensored = fraction
		return nil
	})
}

// WithTransform replaces the default log/exp pair.
func WithTransform(in, out func(float64) float64) Option {
	return options.New(func(c *config) error {
		if in == nil || out == nil {
			return fmt.Errorf("%w: nil transform", common.ErrorInvalidArgument)
		}
		c.transformIn, c.transformOut = in, out
		return nil
	})
}

// WithEstimateWorkers limits how many groups EstimateGroups runs at once.
func WithEstimateWorkers(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: workers %d", common.ErrorInvalidArgument, n)
		}
		c.workers = n
		return nil
	})
}
