package numutils

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
)

const (
	avogadro   = 6.0221413e+23   // items/mole
	protonMass = 1.672621777e-27 // kg
	kg2g       = 1000
	g2mg       = 1000
)

// NormalizeUnits converts values measured in units to targetUnit. unitsMap
// holds each unit's conversion factor to a common base.
func NormalizeUnits(values []float64, units []string, unitsMap map[string]float64, targetUnit string) ([]float64, error) {
	if len(values) != len(units) {
		return nil, fmt.Errorf("%w: %d values but %d units", common.ErrorInvalidValue, len(values), len(units))
	}
	target, ok := unitsMap[targetUnit]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not contained in units map", common.ErrorInvalidArgument, targetUnit)
	}

	res := make([]float64, len(values))
	for i, value := range values {
		factor, ok := unitsMap[units[i]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown unit %q at row %d", common.ErrorInvalidValue, units[i], i)
		}
		res[i] = value * factor / target
	}
	return res, nil
}

// PH2Concentration converts a pH into a proton concentration in mg/L.
func PH2Concentration(pH float64) (float64, error) {
	if !(pH >= 0 && pH <= 14) {
		return math.NaN(), fmt.Errorf("%w: pH = %v but must be between 0 and 14", common.ErrorInvalidArgument, pH)
	}
	return math.Pow(10, -pH) * avogadro * protonMass * kg2g * g2mg, nil
}
