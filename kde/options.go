package kde

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/internal/options"
	"github.com/uyouii/wq-algorithms/model"
)

type config struct {
	bandWidth BandWidth

	// bwAdjust scales the selected bandwidth.
	bwAdjust float64

	// the grid spans min(x) - cut*bw to max(x) + cut*bw, never below zero
	cut float64

	// 0 means max(len(x), MinGridSize)
	gridSize int

	weights []float64

	clip       *model.Clip
	clipZScore float64
}

type Option = options.Option[*config]

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		bwAdjust: DefaultBandwidthAdjust,
		cut:      DefaultCut,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.bandWidth == nil {
		cfg.bandWidth = NewNormalReferenceBandWidth(nil)
	}
	return cfg, nil
}

func WithBandWidth(bw BandWidth) Option {
	return options.New(func(c *config) error {
		if bw == nil {
			return fmt.Errorf("%w: nil bandwidth", common.ErrorInvalidArgument)
		}
		c.bandWidth = bw
		return nil
	})
}

func WithBandWidthAdjust(adjust float64) Option {
	return options.New(func(c *config) error {
		if !(adjust > 0) || math.IsInf(adjust, 0) {
			return fmt.Errorf("%w: bandwidth adjust %v", common.ErrorInvalidArgument, adjust)
		}
		c.bwAdjust = adjust
		return nil
	})
}

func WithCut(cut float64) Option {
	return options.New(func(c *config) error {
		if !(cut >= 0) || math.IsInf(cut, 0) {
			return fmt.Errorf("%w: cut %v", common.ErrorInvalidArgument, cut)
		}
		c.cut = cut
		return nil
	})
}

func WithGridSize(n int) Option {
	return options.New(func(c *config) error {
		if n < 2 {
			return fmt.Errorf("%w: grid size %d", common.ErrorInvalidArgument, n)
		}
		c.gridSize = n
		return nil
	})
}

// WithWeights weights each value. The slice must match the values.
func WithWeights(weights []float64) Option {
	return options.New(func(c *config) error {
		for _, w := range weights {
			if !(w >= 0) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: weight %v", common.ErrorInvalidArgument, w)
			}
		}
		c.weights = append([]float64(nil), weights...)
		return nil
	})
}

// WithClip drops values outside [lower, upper] before estimating.
func WithClip(lower, upper float64) Option {
	return options.New(func(c *config) error {
		if !(lower <= upper) {
			return fmt.Errorf("%w: clip [%v, %v]", common.ErrorInvalidArgument, lower, upper)
		}
		c.clip = &model.Clip{Lower: lower, Upper: upper}
		return nil
	})
}

// WithZScoreClip drops values more than z standard deviations from the mean.
func WithZScoreClip(z float64) Option {
	return options.New(func(c *config) error {
		if !(z > 0) {
			return fmt.Errorf("%w: clip z-score %v", common.ErrorInvalidArgument, z)
		}
		c.clipZScore = z
		return nil
	})
}
