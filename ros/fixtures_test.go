package ros

import (
	"math"

	"github.com/uyouii/wq-algorithms/model"
)

// basicData is the reference dataset: 35 results, 7 of them non-detects,
// in no particular order.
func basicData() []model.Observation {
	return []model.Observation{
		model.Detect(8.63), model.Detect(19.19), model.NonDetect(5.0), model.Detect(6.78),
		model.Detect(11.25), model.Detect(2.0), model.NonDetect(9.5), model.Detect(5.86),
		model.Detect(7.5), model.Detect(22.97), model.Detect(4.2), model.NonDetect(11.0),
		model.Detect(16.77), model.Detect(5.57), model.Detect(7.5), model.NonDetect(5.75),
		model.Detect(19.64), model.Detect(10.82), model.Detect(6.65), model.NonDetect(5.0),
		model.Detect(12.2), model.Detect(8.99), model.Detect(4.62), model.Detect(20.18),
		model.NonDetect(5.5), model.Detect(9.85), model.Detect(17.81), model.Detect(6.79),
		model.Detect(11.25), model.Detect(5.66), model.NonDetect(9.5), model.Detect(14.92),
		model.Detect(7.5), model.Detect(19.16), model.Detect(8.71),
	}
}

func basicSorted() []model.Observation {
	return []model.Observation{
		model.Detect(2.0), model.Detect(4.2), model.Detect(4.62),
		model.NonDetect(5.0), model.NonDetect(5.0), model.NonDetect(5.5),
		model.Detect(5.57), model.Detect(5.66), model.NonDetect(5.75),
		model.Detect(5.86), model.Detect(6.65), model.Detect(6.78), model.Detect(6.79),
		model.Detect(7.5), model.Detect(7.5), model.Detect(7.5),
		model.Detect(8.63), model.Detect(8.71), model.Detect(8.99),
		model.NonDetect(9.5), model.NonDetect(9.5), model.Detect(9.85), model.Detect(10.82),
		model.NonDetect(11.0), model.Detect(11.25), model.Detect(11.25), model.Detect(12.2),
		model.Detect(14.92), model.Detect(16.77), model.Detect(17.81), model.Detect(19.16),
		model.Detect(19.19), model.Detect(19.64), model.Detect(20.18), model.Detect(22.97),
	}
}

func basicCohn() *model.CohnTable {
	return &model.CohnTable{Rows: []model.CohnRow{
		{DL: 2.0, Lower: 2.0, Upper: 5.0, NUncenAbove: 3, NObsBelow: 0, NCenEqual: 0, ProbExceedance: 1.0},
		{DL: 5.0, Lower: 5.0, Upper: 5.5, NUncenAbove: 0, NObsBelow: 5, NCenEqual: 2, ProbExceedance: 0.77757437070938218},
		{DL: 5.5, Lower: 5.5, Upper: 5.75, NUncenAbove: 2, NObsBelow: 6, NCenEqual: 1, ProbExceedance: 0.77757437070938218},
		{DL: 5.75, Lower: 5.75, Upper: 9.5, NUncenAbove: 10, NObsBelow: 9, NCenEqual: 1, ProbExceedance: 0.7034324942791762},
		{DL: 9.5, Lower: 9.5, Upper: 11.0, NUncenAbove: 2, NObsBelow: 21, NCenEqual: 2, ProbExceedance: 0.37391304347826088},
		{DL: 11.0, Lower: 11.0, Upper: math.Inf(1), NUncenAbove: 11, NObsBelow: 24, NCenEqual: 1, ProbExceedance: 0.31428571428571428},
		model.SentinelRow(),
	}}
}

type rankedRow struct {
	value    float64
	censored bool
	idx      int
	rank     int
}

// intermediateData is the basic dataset ranked against basicCohn, with the
// non-detects listed first.
func intermediateData() []model.RankedObservation {
	rows := []rankedRow{
		{5.0, true, 1, 1}, {5.0, true, 1, 2}, {5.5, true, 2, 1}, {5.75, true, 3, 1},
		{9.5, true, 4, 1}, {9.5, true, 4, 2}, {11.0, true, 5, 1},
		{2.0, false, 0, 1}, {4.2, false, 0, 2}, {4.62, false, 0, 3},
		{5.57, false, 2, 1}, {5.66, false, 2, 2},
		{5.86, false, 3, 1}, {6.65, false, 3, 2}, {6.78, false, 3, 3}, {6.79, false, 3, 4},
		{7.5, false, 3, 5}, {7.5, false, 3, 6}, {7.5, false, 3, 7}, {8.63, false, 3, 8},
		{8.71, false, 3, 9}, {8.99, false, 3, 10},
		{9.85, false, 4, 1}, {10.82, false, 4, 2},
		{11.25, false, 5, 1}, {11.25, false, 5, 2}, {12.2, false, 5, 3}, {14.92, false, 5, 4},
		{16.77, false, 5, 5}, {17.81, false, 5, 6}, {19.16, false, 5, 7}, {19.19, false, 5, 8},
		{19.64, false, 5, 9}, {20.18, false, 5, 10}, {22.97, false, 5, 11},
	}
	res := make([]model.RankedObservation, len(rows))
	for i, row := range rows {
		res[i] = model.RankedObservation{
			Observation:   model.Observation{Value: row.value, Censored: row.censored},
			DetLimitIndex: row.idx,
			Rank:          row.rank,
		}
	}
	return res
}
