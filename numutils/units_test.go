package numutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/wq-algorithms/common"
)

func TestNormalizeUnits(t *testing.T) {
	values := []float64{10, 0.02, 0.00003, 40, 0.05, 60, 70, 0.00008}
	units := []string{"ug/L", "mg/L", "g/L", "ug/L", "mg/L", "ug/L", "ug/L", "g/L"}
	unitsMap := map[string]float64{
		"ug/L": 1e-6,
		"mg/L": 1e-3,
		"g/L":  1e+0,
	}

	got, err := NormalizeUnits(values, units, unitsMap, "ug/L")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{10, 20, 30, 40, 50, 60, 70, 80}, got, 1e-9)

	_, err = NormalizeUnits(values, units, unitsMap, "ng/L")
	require.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = NormalizeUnits(values, units[:3], unitsMap, "ug/L")
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = NormalizeUnits([]float64{1}, []string{"lb/gal"}, unitsMap, "ug/L")
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestPH2Concentration(t *testing.T) {
	got, err := PH2Concentration(4)
	require.NoError(t, err)
	require.InDelta(t, 0.10072764682551091, got, 1e-4)

	for _, pH := range []float64{14.1, -0.1} {
		_, err = PH2Concentration(pH)
		require.ErrorIs(t, err, common.ErrorInvalidArgument)
	}
}
