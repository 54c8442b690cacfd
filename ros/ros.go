package ros

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/utils"
	"go.uber.org/zap"
)

// Result is one estimation run. Observations are in sorted order.
type Result struct {
	Method       Method                       `json:"method"`
	Observations []model.EstimatedObservation `json:"observations"`
	Cohn         *model.CohnTable             `json:"cohn"`

	// Fit is the probability plot regression, nil when none was made.
	Fit *Fit `json:"fit,omitempty"`

	// Dropped is the censored maximum removed while sorting.
	Dropped  *model.Observation `json:"dropped,omitempty"`
	Warnings []error            `json:"-"`
}

func (r *Result) Finals() []float64 {
	res := make([]float64, len(r.Observations))
	for i, obs := range r.Observations {
		res[i] = obs.Final
	}
	return res
}

func (r *Result) DebugString() string {
	return fmt.Sprintf("method: %v, count: %v, cohnRows: %v, warnings: %v",
		r.Method, len(r.Observations), r.Cohn.Len(), len(r.Warnings))
}

// Estimate runs regression on order statistics over obs and returns the
// final concentration of every observation: the observed value for detects
// and an imputed value for non-detects.
//
// Without censored data the observed values are returned as is. When there
// are too few detects, too many non-detects, or the regression is singular,
// non-detects are substituted with a fraction of their detection limit.
func Estimate(ctx context.Context, obs []model.Observation, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return estimate(ctx, obs, cfg)
}

func estimate(ctx context.Context, obs []model.Observation, cfg *config) (*Result, error) {
	logger := utils.GetLogger(ctx)

	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no observations", common.ErrorInvalidValue)
	}

	sorted, dropped := SortObservations(ctx, obs)
	res := &Result{Dropped: dropped}
	if dropped != nil {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: censored maximum %v dropped",
			common.ErrorDataQuality, dropped.Value))
	}
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%w: no observations left after sorting", common.ErrorInvalidValue)
	}

	res.Cohn = CohnNumbers(sorted)

	nCensored := model.CountCensored(sorted)
	nUncensored := len(sorted) - nCensored
	fractionCensored := float64(nCensored) / float64(len(sorted))

	switch {
	case nCensored == 0:
		if err := res.fillNoCensored(sorted, cfg); err != nil {
			return nil, err
		}
	case nUncensored < cfg.minUncensored || fractionCensored > cfg.maxFractionCensored:
		logger.Info("not enough detected data for ros, substituting",
			zap.Int("uncensored", nUncensored), zap.Float64("fractionCensored", fractionCensored))
		res.fillSubstitution(sorted, cfg)
	default:
		err := res.fillROS(sorted, cfg)
		if errors.Is(err, common.ErrorSingularFit) {
			logger.Warn("ros regression infeasible, substituting", zap.Error(err))
			res.Warnings = append(res.Warnings, err)
			res.fillSubstitution(sorted, cfg)
		} else if err != nil {
			logger.Error("ros failed", zap.Error(err))
			return nil, err
		}
	}

	logger.Debug("estimate finished", zap.String("result", res.DebugString()))
	return res, nil
}

func (r *Result) fillROS(sorted []model.Observation, cfg *config) error {
	ranked, err := AssignRanks(sorted, r.Cohn)
	if err != nil {
		return err
	}
	positions, err := PlottingPositions(ranked, r.Cohn)
	if err != nil {
		return err
	}

	rows := make([]model.EstimatedObservation, len(ranked))
	x, y := []float64{}, []float64{}
	for i := range ranked {
		z, err := NormalQuantile(positions[i])
		if err != nil {
			return fmt.Errorf("row %d (%v): %w", i, ranked[i].Observation, err)
		}
		rows[i] = model.EstimatedObservation{
			RankedObservation: ranked[i],
			PlotPos:           positions[i],
			ZPrelim:           z,
			Estimated:         math.NaN(),
		}
		if !ranked[i].Censored {
			x = append(x, z)
			y = append(y, cfg.transformIn(ranked[i].Value))
		}
	}

	fit, err := FitOLS(x, y)
	if err != nil {
		return err
	}

	for i := range rows {
		if rows[i].Censored {
			rows[i].Estimated = cfg.transformOut(fit.Predict(rows[i].ZPrelim))
		}
		rows[i].Final = selectFinal(rows[i])
	}

	r.Method = MethodROS
	r.Observations = rows
	r.Fit = &fit
	return nil
}

// fillSubstitution replaces each non-detect with a fraction of its limit.
func (r *Result) fillSubstitution(sorted []model.Observation, cfg *config) {
	rows := make([]model.EstimatedObservation, len(sorted))
	for i, obs := range sorted {
		rows[i] = model.EstimatedObservation{
			RankedObservation: model.RankedObservation{Observation: obs},
			PlotPos:           math.NaN(),
			ZPrelim:           math.NaN(),
			Estimated:         substitute(obs, cfg.substitutionFraction),
		}
		rows[i].Final = rows[i].Estimated
	}

	r.Method = MethodSubstitution
	r.Observations = rows
	r.Fit = nil
}

// fillNoCensored keeps every observed value. Plotting positions and a fit
// are still reported for inspection.
func (r *Result) fillNoCensored(sorted []model.Observation, cfg *config) error {
	positions := NormPlotPos(len(sorted))
	rows := make([]model.EstimatedObservation, len(sorted))
	x, y := make([]float64, len(sorted)), make([]float64, len(sorted))
	for i, obs := range sorted {
		z, err := NormalQuantile(positions[i])
		if err != nil {
			return err
		}
		rows[i] = model.EstimatedObservation{
			RankedObservation: model.RankedObservation{Observation: obs, Rank: i + 1},
			PlotPos:           positions[i],
			ZPrelim:           z,
			Estimated:         math.NaN(),
			Final:             obs.Value,
		}
		x[i], y[i] = z, cfg.transformIn(obs.Value)
	}

	r.Method = MethodNoCensored
	r.Observations = rows
	if fit, err := FitOLS(x, y); err == nil {
		r.Fit = &fit
	}
	return nil
}

func substitute(obs model.Observation, fraction float64) float64 {
	switch obs.Kind() {
	case model.NonDetected:
		return fraction * obs.Value
	default:
		return obs.Value
	}
}

func selectFinal(row model.EstimatedObservation) float64 {
	switch row.Kind() {
	case model.NonDetected:
		return row.Estimated
	default:
		return row.Value
	}
}
