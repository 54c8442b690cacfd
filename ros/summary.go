package ros

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/numutils"
	"github.com/uyouii/wq-algorithms/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary computes the descriptive statistics of the final concentrations.
func (r *Result) Summary() model.Summary {
	finals := r.Finals()
	summary := model.Summary{
		N:         len(finals),
		MinDetect: math.NaN(),
		MinDL:     math.NaN(),
	}
	if len(finals) == 0 {
		return summary
	}

	for _, obs := range r.Observations {
		switch obs.Kind() {
		case model.NonDetected:
			summary.ND++
			summary.MinDL = nanMin(summary.MinDL, obs.Value)
		case model.Detected:
			summary.MinDetect = nanMin(summary.MinDetect, obs.Value)
		}
	}
	summary.FractionND = float64(summary.ND) / float64(summary.N)

	sorted := slices.Clone(finals)
	slices.Sort(sorted)
	summary.NUnique = len(slices.Compact(slices.Clone(sorted)))

	summary.Min = floats.Min(sorted)
	summary.Max = floats.Max(sorted)
	summary.Mean, summary.Std = stat.MeanStdDev(sorted, nil)
	summary.Cov = summary.Std / summary.Mean
	summary.Skew = stat.Skew(sorted, nil)
	summary.Median = percentile(sorted, 0.5)
	summary.Pctl10 = percentile(sorted, 0.10)
	summary.Pctl25 = percentile(sorted, 0.25)
	summary.Pctl75 = percentile(sorted, 0.75)
	summary.Pctl90 = percentile(sorted, 0.90)

	summary.MeanCI = bootstrapDefault(finals, meanStatistic)
	summary.MedianCI = bootstrapDefault(finals, medianStatistic)

	summary.LogMean, summary.LogStd = math.NaN(), math.NaN()
	summary.LogMeanCI = [2]float64{math.NaN(), math.NaN()}
	summary.GeoMeanCI = [2]float64{math.NaN(), math.NaN()}
	summary.GeoMean, summary.GeoStd = math.NaN(), math.NaN()
	if summary.Min > 0 {
		logs := make([]float64, len(sorted))
		for i, v := range sorted {
			logs[i] = math.Log(v)
		}
		summary.LogMean, summary.LogStd = stat.MeanStdDev(logs, nil)
		summary.GeoMean = math.Exp(summary.LogMean)
		summary.GeoStd = math.Exp(summary.LogStd)
		summary.LogMeanCI = bootstrapDefault(finals, logMeanStatistic)
		summary.GeoMeanCI = [2]float64{math.Exp(summary.LogMeanCI[0]), math.Exp(summary.LogMeanCI[1])}
	}
	return summary
}

// bootstrapDefault never fails: finals is not empty and the settings are
// the valid defaults.
func bootstrapDefault(finals []float64, statistic Statistic) [2]float64 {
	ci, _ := BootstrapCI(finals, statistic, DefaultBootstrapIterations, DefaultBootstrapAlpha, bootstrapSeed)
	return ci
}

// Describe renders the main statistics of the run with the given number of
// significant figures, one "name: value" per line.
func (r *Result) Describe(ctx context.Context, sigfigs int) (string, error) {
	s := r.Summary()
	utils.GetLogger(ctx).Debug("describe", zap.String("summary", s.DebugString()))

	fields := []struct {
		name  string
		value float64
	}{
		{"mean", s.Mean},
		{"std", s.Std},
		{"median", s.Median},
		{"geomean", s.GeoMean},
		{"geostd", s.GeoStd},
		{"min", s.Min},
		{"max", s.Max},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "method: %v\nN: %d\nND: %d\n", r.Method, s.N, s.ND)
	for _, field := range fields {
		formatted, err := numutils.SigFigs(field.value, sigfigs)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s: %s\n", field.name, formatted)
	}
	return b.String(), nil
}

// percentile interpolates linearly between the closest ranks of sorted,
// rank h = (n-1)p. gonum's Empirical and LinInterp kinds use n*p.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	hi := math.Min(lo+1, float64(n-1))
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

func nanMin(cur, v float64) float64 {
	if math.IsNaN(cur) {
		return v
	}
	return math.Min(cur, v)
}
