package model

import (
	"fmt"
	"strings"

	"github.com/uyouii/wq-algorithms/common"
)

type Kind int

const (
	Detected    Kind = 1
	NonDetected Kind = 2
)

func (k Kind) String() string {
	switch k {
	case Detected:
		return "detected"
	case NonDetected:
		return "non-detect"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Observation is one measurement. When Censored is true, Value is the
// detection limit and the true concentration is only known to be below it.
type Observation struct {
	Value    float64 `json:"value"`
	Censored bool    `json:"censored"`
}

func Detect(value float64) Observation {
	return Observation{Value: value}
}

func NonDetect(limit float64) Observation {
	return Observation{Value: limit, Censored: true}
}

func (o Observation) Kind() Kind {
	if o.Censored {
		return NonDetected
	}
	return Detected
}

// Less orders by value, a non-detect sorts before a detect at the same value.
func (o Observation) Less(other Observation) bool {
	if o.Value != other.Value {
		return o.Value < other.Value
	}
	return o.Censored && !other.Censored
}

func (o Observation) String() string {
	if o.Censored {
		return fmt.Sprintf("<%v", o.Value)
	}
	return fmt.Sprintf("%v", o.Value)
}

// FromColumns pairs a result column with a censorship column.
func FromColumns(results []float64, censored []bool) ([]Observation, error) {
	if len(results) != len(censored) {
		return nil, fmt.Errorf("%w: %d results but %d censorship flags",
			common.ErrorInvalidValue, len(results), len(censored))
	}
	res := make([]Observation, len(results))
	for i := range results {
		res[i] = Observation{Value: results[i], Censored: censored[i]}
	}
	return res, nil
}

// FromQualifiers treats a row as censored when its qualifier matches one of
// ndQualifiers (case-insensitive). "ND" is used when none are given.
func FromQualifiers(results []float64, quals []string, ndQualifiers ...string) ([]Observation, error) {
	if len(results) != len(quals) {
		return nil, fmt.Errorf("%w: %d results but %d qualifiers",
			common.ErrorInvalidValue, len(results), len(quals))
	}
	if len(ndQualifiers) == 0 {
		ndQualifiers = []string{"ND"}
	}
	censored := make([]bool, len(quals))
	for i, qual := range quals {
		qual = strings.TrimSpace(qual)
		for _, nd := range ndQualifiers {
			if strings.EqualFold(qual, nd) {
				censored[i] = true
				break
			}
		}
	}
	return FromColumns(results, censored)
}

func CountCensored(obs []Observation) int {
	cnt := 0
	for _, o := range obs {
		if o.Censored {
			cnt++
		}
	}
	return cnt
}

type RankedObservation struct {
	Observation
	DetLimitIndex int `json:"det_limit_index"`
	Rank          int `json:"rank"`
}

type EstimatedObservation struct {
	RankedObservation
	PlotPos   float64 `json:"plot_pos"`
	ZPrelim   float64 `json:"zprelim"`
	Estimated float64 `json:"estimated"`
	Final     float64 `json:"final"`
}
