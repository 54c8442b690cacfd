package model

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"golang.org/x/exp/slices"
)

// CohnRow holds the Cohn numbers of one detection limit. The interval
// [Lower, Upper) runs from this limit up to the next one.
type CohnRow struct {
	DL             float64 `json:"DL"`
	Lower          float64 `json:"lower"`
	Upper          float64 `json:"upper"`
	NUncenAbove    int     `json:"nuncen_above"`
	NObsBelow      int     `json:"nobs_below"`
	NCenEqual      int     `json:"ncen_equal"`
	ProbExceedance float64 `json:"prob_exceedance"`
	Sentinel       bool    `json:"sentinel,omitempty"`
}

func SentinelRow() CohnRow {
	return CohnRow{
		DL:             math.NaN(),
		Lower:          math.NaN(),
		Upper:          math.NaN(),
		ProbExceedance: 0,
		Sentinel:       true,
	}
}

// CohnTable is ordered ascending by DL and terminated by one sentinel row.
// A table without censored data has no rows at all.
type CohnTable struct {
	Rows []CohnRow `json:"rows"`
}

// Len returns the number of real (non-sentinel) rows.
func (t *CohnTable) Len() int {
	if t == nil || len(t.Rows) == 0 {
		return 0
	}
	if t.Rows[len(t.Rows)-1].Sentinel {
		return len(t.Rows) - 1
	}
	return len(t.Rows)
}

func (t *CohnTable) Empty() bool {
	return t.Len() == 0
}

// Row returns row i, the sentinel included.
func (t *CohnTable) Row(i int) (CohnRow, error) {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return CohnRow{}, fmt.Errorf("%w: cohn row %d out of range", common.ErrorPreconditionViolation, i)
	}
	return t.Rows[i], nil
}

func (t *CohnTable) DetectionLimits() []float64 {
	res := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		res = append(res, t.Rows[i].DL)
	}
	return res
}

func (t *CohnTable) ProbExceedances() []float64 {
	if t == nil {
		return nil
	}
	res := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = row.ProbExceedance
	}
	return res
}

// DetectionLimitIndex returns the index of the last row whose DL is at or
// below value. Values under the first limit map to 0. An empty table maps
// NaN and non-positive values to 0 and rejects positive ones.
func (t *CohnTable) DetectionLimitIndex(value float64) (int, error) {
	n := t.Len()
	if n == 0 {
		if math.IsNaN(value) || value <= 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: lookup of %v in an empty cohn table",
			common.ErrorPreconditionViolation, value)
	}
	if math.IsNaN(value) {
		return 0, fmt.Errorf("%w: lookup of NaN in cohn table", common.ErrorPreconditionViolation)
	}

	idx, found := slices.BinarySearchFunc(t.Rows[:n], value, func(row CohnRow, target float64) int {
		switch {
		case row.DL < target:
			return -1
		case row.DL > target:
			return 1
		}
		return 0
	})
	if found {
		return idx, nil
	}
	if idx == 0 {
		return 0, nil
	}
	return idx - 1, nil
}
