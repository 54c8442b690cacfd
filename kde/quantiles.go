package kde

import (
	"context"
	"fmt"

	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/utils"
	"go.uber.org/zap"
)

// ConcentrationQuantiles fits a kernel density to values and reads the
// requested quantiles off its cdf, rounded to 3 decimals. DefaultQuantiles
// are used when quantiles is empty.
func ConcentrationQuantiles(ctx context.Context, values []float64, quantiles []float64,
	opts ...Option) (res *model.DensityQuantiles, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("ConcentrationQuantiles recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("values", len(values)))
			res, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	if len(quantiles) == 0 {
		quantiles = DefaultQuantiles
	}

	k, err := NewKDEUnivariate(values, opts...)
	if err != nil {
		logger.Error("NewKDEUnivariate failed", zap.Error(err))
		return nil, err
	}

	res = &model.DensityQuantiles{
		Bandwidth:      k.BandWidth(),
		QuantileValues: make(map[string]*model.QuantileValue, len(quantiles)),
	}
	for _, q := range quantiles {
		quantile, err := k.Quantile(q)
		if err != nil {
			logger.Error("kde Quantile failed", zap.Error(err), zap.Float64("quantile", q))
			return nil, err
		}
		quantile.Value = utils.FormatFloat(quantile.Value, 3)
		res.QuantileValues[fmt.Sprintf("%v", q)] = quantile
	}

	logger.Debug("concentration quantiles", zap.Float64("bw", res.Bandwidth), zap.Int("cnt", len(res.QuantileValues)))
	return res, nil
}
