package numutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/wq-algorithms/common"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	lineData = []float64{
		2.00, 4.0, 4.62, 5.00, 5.00, 5.50, 5.57, 5.66,
		5.75, 5.86, 6.65, 6.78, 6.79, 7.50, 7.50, 7.50,
		8.63, 8.71, 8.99, 9.50, 9.50, 9.85, 10.82, 11.00,
		11.25, 11.25, 12.20, 14.92, 16.77, 17.81, 19.16, 19.19,
		19.64, 20.18, 22.97,
	}
	lineZScores = []float64{
		-2.06188401, -1.66883254, -1.4335397, -1.25837339, -1.11509471,
		-0.99166098, -0.8817426, -0.78156696, -0.68868392, -0.60139747,
		-0.51847288, -0.4389725, -0.36215721, -0.28742406, -0.21426459,
		-0.14223572, -0.07093824, 0.00000000, 0.07093824, 0.14223572,
		0.21426459, 0.28742406, 0.36215721, 0.43897250, 0.51847288,
		0.60139747, 0.68868392, 0.78156696, 0.88174260, 0.99166098,
		1.11509471, 1.25837339, 1.43353970, 1.66883254, 2.06188401,
	}
	lineY = []float64{
		0.07323274, 0.12319301, 0.16771455, 0.1779695, 0.21840761,
		0.25757016, 0.2740265, 0.40868106, 0.44872637, 0.5367353,
		0.55169933, 0.56211726, 0.62375442, 0.66631353, 0.68454978,
		0.72137134, 0.87602096, 0.94651962, 1.01927875, 1.06040448,
		1.07966792, 1.17969506, 1.21132273, 1.30751428, 1.45371899,
		1.76381932, 1.98832275, 2.09275652, 2.66552831, 2.86453334,
		3.23039631, 4.23953492, 4.25892247, 4.5834766, 6.53100725,
	}
)

func lineProbs() []float64 {
	probs := make([]float64, len(lineZScores))
	for i, z := range lineZScores {
		probs[i] = 100 * distuv.UnitNormal.CDF(z)
	}
	return probs
}

func TestFitLine(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		opts []FitLineOption
		want []float64
	}{
		{name: "linear linear", x: lineZScores, y: lineData,
			want: []float64{-0.89650596, 21.12622025}},
		{name: "linear log", x: lineZScores, y: lineData,
			opts: []FitLineOption{WithFitLogs(AxisY)},
			want: []float64{2.80190754, 27.64958934}},
		{name: "linear prob", x: lineData, y: lineProbs(),
			opts: []FitLineOption{WithFitProbs(AxisY)},
			want: []float64{8.48666156, 98.51899616}},
		{name: "log linear", x: lineData, y: lineZScores,
			opts: []FitLineOption{WithFitLogs(AxisX)},
			want: []float64{-2.57620461, 1.66767934}},
		{name: "log log", x: lineData, y: lineY,
			opts: []FitLineOption{WithFitLogs(AxisBoth)},
			want: []float64{0.0468154, 5.73261406}},
		{name: "log prob", x: lineData, y: lineProbs(),
			opts: []FitLineOption{WithFitLogs(AxisX), WithFitProbs(AxisY)},
			want: []float64{0.49945757, 95.23103009}},
		{name: "prob linear", x: lineProbs(), y: lineData,
			opts: []FitLineOption{WithFitProbs(AxisX)},
			want: []float64{-0.89650596, 21.12622025}},
		{name: "prob log", x: lineProbs(), y: lineData,
			opts: []FitLineOption{WithFitProbs(AxisX), WithFitLogs(AxisY)},
			want: []float64{2.80190754, 27.64958934}},
		{name: "custom xhat", x: lineZScores, y: lineData,
			opts: []FitLineOption{WithXHat([]float64{-2, -1, 0, 1, 2})},
			want: []float64{-0.56601826, 4.77441944, 10.11485714, 15.45529485, 20.79573255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FitLine(tt.x, tt.y, tt.opts...)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, res.YHat, 1e-6)
			require.Len(t, res.XHat, len(tt.want))
			require.Greater(t, res.RSquared, 0.5)
		})
	}
}

func TestFitLine_DoesNotMutateInput(t *testing.T) {
	x := append([]float64(nil), lineData...)
	_, err := FitLine(x, lineY, WithFitLogs(AxisBoth))
	require.NoError(t, err)
	require.Equal(t, lineData, x)
}

func TestFitLine_Invalid(t *testing.T) {
	_, err := FitLine(lineZScores, lineData[:10])
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = FitLine(lineZScores, lineData, WithFitLogs(Axis(7)))
	require.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = FitLine(lineZScores, lineData, WithFitProbs(Axis(-1)))
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestParseAxis(t *testing.T) {
	for s, want := range map[string]Axis{"": AxisNone, "x": AxisX, "y": AxisY, "both": AxisBoth} {
		got, err := ParseAxis(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseAxis("junk")
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestEstimateFromLineParams(t *testing.T) {
	x := []float64{}
	for v := 1.0; v < 11; v += 0.5 {
		x = append(x, v)
	}
	slope, intercept := 2.0, 3.5

	linlin := EstimateFromLineParams(x, slope, intercept, false, false)
	require.InDeltaSlice(t, []float64{
		5.5, 6.5, 7.5, 8.5, 9.5, 10.5, 11.5, 12.5, 13.5,
		14.5, 15.5, 16.5, 17.5, 18.5, 19.5, 20.5, 21.5, 22.5,
		23.5, 24.5,
	}, linlin, 1e-6)

	loglin := EstimateFromLineParams(x, slope, intercept, true, false)
	require.InDeltaSlice(t, []float64{
		3.5, 4.31093022, 4.88629436, 5.33258146, 5.69722458,
		6.00552594, 6.27258872, 6.50815479, 6.71887582, 6.90949618,
		7.08351894, 7.24360435, 7.3918203, 7.52980604, 7.65888308,
		7.78013233, 7.89444915, 8.0025836, 8.10517019, 8.20275051,
	}, loglin, 1e-6)

	loglog := EstimateFromLineParams(x, slope, intercept, true, true)
	require.InDeltaSlice(t, []float64{
		33.11545196, 74.50976691, 132.46180783, 206.97157474,
		298.03906763, 405.66428649, 529.84723134, 670.58790216,
		827.88629897, 1001.74242175, 1192.15627051, 1399.12784525,
		1622.65714598, 1862.74417268, 2119.38892536, 2392.59140402,
		2682.35160865, 2988.66953927, 3311.54519587, 3650.97857845,
	}, loglog, 1e-6)

	linlog := EstimateFromLineParams(x, slope, intercept, false, true)
	knownLinLog := []float64{
		2.44691932e+02, 6.65141633e+02, 1.80804241e+03,
		4.91476884e+03, 1.33597268e+04, 3.63155027e+04,
		9.87157710e+04, 2.68337287e+05, 7.29416370e+05,
		1.98275926e+06, 5.38969848e+06, 1.46507194e+07,
		3.98247844e+07, 1.08254988e+08, 2.94267566e+08,
		7.99902177e+08, 2.17435955e+09, 5.91052206e+09,
		1.60664647e+10, 4.36731791e+10,
	}
	for i := range knownLinLog {
		require.InEpsilon(t, knownLinLog[i], linlog[i], 1e-5)
	}
}
