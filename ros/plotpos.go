package ros

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/model"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat/distuv"
)

// PlotPosition is the plotting position of one ranked observation.
//
// Non-detects can come out above 1 for unusual tables, the value is returned
// as is and NormalQuantile rejects it downstream.
func PlotPosition(row model.RankedObservation, cohn *model.CohnTable) (float64, error) {
	cur, err := cohn.Row(row.DetLimitIndex)
	if err != nil {
		return math.NaN(), err
	}
	next, err := cohn.Row(row.DetLimitIndex + 1)
	if err != nil {
		return math.NaN(), err
	}

	pe, peNext := cur.ProbExceedance, next.ProbExceedance
	rank := float64(row.Rank)

	switch row.Kind() {
	case model.NonDetected:
		return (1 - pe) * rank / float64(cur.NCenEqual+1), nil
	case model.Detected:
		return (1 - pe) + (pe-peNext)*rank/float64(cur.NUncenAbove+1), nil
	}
	return math.NaN(), fmt.Errorf("%w: unknown observation kind %v", common.ErrorInvalidValue, row.Kind())
}

// PlottingPositions computes the plotting position of every row, aligned
// with ranked. The non-detect positions are then put in ascending order
// across the non-detect rows so they follow the order of their limits.
func PlottingPositions(ranked []model.RankedObservation, cohn *model.CohnTable) ([]float64, error) {
	res := make([]float64, len(ranked))
	ndIdx, ndPos := []int{}, []float64{}
	for i, row := range ranked {
		pos, err := PlotPosition(row, cohn)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		res[i] = pos
		if row.Censored {
			ndIdx = append(ndIdx, i)
			ndPos = append(ndPos, pos)
		}
	}

	slices.Sort(ndPos)
	for j, i := range ndIdx {
		res[i] = ndPos[j]
	}
	return res, nil
}

// NormPlotPos returns the plotting positions of n sorted values without any
// censoring: Filliben's estimate of the uniform order statistic medians.
func NormPlotPos(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	medians := make([]float64, n)
	medians[n-1] = math.Pow(0.5, 1.0/float64(n))
	medians[0] = 1 - medians[n-1]
	for i := 2; i < n; i++ {
		medians[i-1] = (float64(i) - fillibenOffset) / (float64(n) + fillibenScale)
	}
	return medians
}

// NormalQuantile is the inverse CDF of the standard normal distribution.
func NormalQuantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return math.NaN(), fmt.Errorf("%w: probability %v outside (0, 1)", common.ErrorInvalidArgument, p)
	}
	return distuv.UnitNormal.Quantile(p), nil
}

func NormalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}
