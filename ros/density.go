package ros

import (
	"context"

	"github.com/uyouii/wq-algorithms/kde"
	"github.com/uyouii/wq-algorithms/model"
)

// DensityQuantiles reads quantiles of the final concentrations off a
// kernel density estimate, smoothing over the imputed non-detects.
func (r *Result) DensityQuantiles(ctx context.Context, quantiles []float64,
	opts ...kde.Option) (*model.DensityQuantiles, error) {
	return kde.ConcentrationQuantiles(ctx, r.Finals(), quantiles, opts...)
}
