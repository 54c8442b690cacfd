package model

import "fmt"

// Summary describes the final (observed or imputed) concentrations of one
// estimation run.
type Summary struct {
	N          int     `json:"n"`
	ND         int     `json:"nd"`
	FractionND float64 `json:"fraction_nd"`
	NUnique    int     `json:"n_unique"`

	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	MinDetect float64 `json:"min_detect"`
	MinDL     float64 `json:"min_dl"`

	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Cov    float64 `json:"cov"`
	Skew   float64 `json:"skew"`
	Median float64 `json:"median"`

	Pctl10 float64 `json:"pctl10"`
	Pctl25 float64 `json:"pctl25"`
	Pctl75 float64 `json:"pctl75"`
	Pctl90 float64 `json:"pctl90"`

	// 95% percentile bootstrap confidence intervals
	MeanCI    [2]float64 `json:"mean_ci"`
	MedianCI  [2]float64 `json:"median_ci"`
	LogMeanCI [2]float64 `json:"log_mean_ci"`
	GeoMeanCI [2]float64 `json:"geo_mean_ci"`

	// log-space moments, NaN when any final value is not positive
	LogMean float64 `json:"log_mean"`
	LogStd  float64 `json:"log_std"`
	GeoMean float64 `json:"geo_mean"`
	GeoStd  float64 `json:"geo_std"`
}

func (s *Summary) DebugString() string {
	return fmt.Sprintf("n: %v, nd: %v, mean: %v (%v), std: %v, median: %v (%v)",
		s.N, s.ND, s.Mean, s.MeanCI, s.Std, s.Median, s.MedianCI)
}
