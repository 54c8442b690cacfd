package numutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/wq-algorithms/common"
)

func TestWinsorize(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

	tests := []struct {
		name         string
		lower, upper float64
		want         []float64
	}{
		{"no op", 0, 0, x},
		{"5%", 0.05, 0.05, []float64{1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 19}},
		{"10%", 0.10, 0.10, []float64{2, 2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 18, 18}},
		{"20%", 0.20, 0.20, []float64{4, 4, 4, 4, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 16, 16, 16, 16}},
		{"5% / 20%", 0.05, 0.20, []float64{1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 16, 16, 16, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Winsorize(x, tt.lower, tt.upper)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWinsorize_Unsorted(t *testing.T) {
	got, err := Winsorize([]float64{9, 1, 5, 3, 7, 100, 0, 4, 2, 6}, 0.1, 0.1)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 1, 5, 3, 7, 9, 1, 4, 2, 6}, got)
}

func TestWinsorize_InvalidLimits(t *testing.T) {
	for _, limits := range [][2]float64{{-0.1, 0}, {0, 1.1}, {0.6, 0.6}} {
		_, err := Winsorize([]float64{1, 2, 3}, limits[0], limits[1])
		require.ErrorIs(t, err, common.ErrorInvalidArgument)
	}
}
