package kde

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// BandWidth picks a kernel bandwidth for a sorted sample.
type BandWidth interface {
	BandWidth(sorted []float64) float64
}

// NormalReferenceBandWidth is the normal reference rule of the kernel.
type NormalReferenceBandWidth struct {
	kernel Kernel
}

func NewNormalReferenceBandWidth(kernel Kernel) *NormalReferenceBandWidth {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return &NormalReferenceBandWidth{
		kernel: kernel,
	}
}

func (bw *NormalReferenceBandWidth) BandWidth(sorted []float64) float64 {
	return bw.kernel.NormalReferenceConstant() * selectSigma(sorted) * math.Pow(float64(len(sorted)), -0.2)
}

// SilvermanBandWidth is Silverman's rule of thumb, 0.9 * sigma * n^(-1/5).
type SilvermanBandWidth struct{}

func (SilvermanBandWidth) BandWidth(sorted []float64) float64 {
	return 0.9 * selectSigma(sorted) * math.Pow(float64(len(sorted)), -0.2)
}

// selectSigma is min(std, iqr/1.349), falling back to std when the iqr
// is zero.
func selectSigma(sorted []float64) float64 {
	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	iqr := (q75 - q25) / iqrNormalize

	stdDev := stat.StdDev(sorted, nil)
	if iqr > 0 && iqr < stdDev {
		return iqr
	}
	return stdDev
}
