package kde

const (
	// grid extends cut bandwidths past the smallest and largest value
	DefaultCut = 3.0

	DefaultBandwidthAdjust = 1.0

	DefaultClipZScore = 3.0

	MinGridSize = 100
	MinPointCnt = 3

	// gauss-legendre nodes per grid interval when integrating the cdf
	quadPoints = 50

	// iqr of the standard normal
	iqrNormalize = 1.349
)

var (
	DefaultQuantiles = []float64{0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95}
)
