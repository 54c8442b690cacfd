package ros

import (
	"math"

	"github.com/uyouii/wq-algorithms/model"
	"golang.org/x/exp/slices"
)

// CohnNumbers builds the cohn table of a sorted observation set: one row per
// distinct detection limit plus a trailing sentinel. The result has no rows
// when nothing is censored.
func CohnNumbers(sorted []model.Observation) *model.CohnTable {
	dls := detectionLimits(sorted)
	if len(dls) == 0 {
		return &model.CohnTable{}
	}

	rows := make([]model.CohnRow, 0, len(dls)+1)
	for i, dl := range dls {
		upper := math.Inf(1)
		if i+1 < len(dls) {
			upper = dls[i+1]
		}
		row := model.CohnRow{
			DL:    dl,
			Lower: dl,
			Upper: upper,
		}
		for _, obs := range sorted {
			switch obs.Kind() {
			case model.Detected:
				if obs.Value >= row.Lower && obs.Value < row.Upper {
					row.NUncenAbove++
				}
				if obs.Value < dl {
					row.NObsBelow++
				}
			case model.NonDetected:
				if obs.Value <= dl {
					row.NObsBelow++
				}
				if obs.Value == dl {
					row.NCenEqual++
				}
			}
		}
		rows = append(rows, row)
	}
	rows = append(rows, model.SentinelRow())

	computeProbExceedance(rows)
	return &model.CohnTable{Rows: rows}
}

// detectionLimits returns the distinct censored values ascending. When the
// smallest observation is below all of them it is added as the first limit,
// so every observation falls inside some row's interval.
func detectionLimits(sorted []model.Observation) []float64 {
	dls := []float64{}
	minValue := math.Inf(1)
	for _, obs := range sorted {
		minValue = math.Min(minValue, obs.Value)
		if obs.Censored {
			dls = append(dls, obs.Value)
		}
	}
	if len(dls) == 0 {
		return nil
	}
	slices.Sort(dls)
	dls = slices.Compact(dls)

	if minValue < dls[0] {
		dls = append([]float64{minValue}, dls...)
	}
	return dls
}

// computeProbExceedance fills ProbExceedance from the last real row down to
// the first. rows must end with the sentinel, whose probability is 0.
//
// A first row holding no non-detects is the data minimum added below the
// smallest limit, everything is at or above it so its probability is 1.
func computeProbExceedance(rows []model.CohnRow) {
	n := len(rows)
	rows[n-1].ProbExceedance = 0
	for i := n - 2; i >= 0; i-- {
		next := rows[i+1].ProbExceedance
		denom := float64(rows[i].NObsBelow + rows[i].NUncenAbove)
		if denom > 0 {
			rows[i].ProbExceedance = next + (1-next)*float64(rows[i].NUncenAbove)/denom
		} else {
			rows[i].ProbExceedance = next
		}
	}
	if n > 1 && rows[0].NCenEqual == 0 {
		rows[0].ProbExceedance = 1.0
	}
}
