package model

import "fmt"

type Clip struct {
	Lower float64
	Upper float64
}

// DensityPoint is one grid point of an estimated density or its cdf.
type DensityPoint struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

// DensityQuantiles are quantiles read off a kernel density of
// concentrations, keyed by the quantile formatted with %v.
type DensityQuantiles struct {
	Bandwidth      float64                   `json:"bw"`
	QuantileValues map[string]*QuantileValue `json:"quantiles,omitempty"`
}

func (c *DensityQuantiles) GetQuantileValue(q float64) (*QuantileValue, bool) {
	if c == nil || c.QuantileValues == nil {
		return nil, false
	}
	quantile, ok := c.QuantileValues[fmt.Sprintf("%v", q)]
	return quantile, ok
}
