package kde

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Kernel interface {
	NormalReferenceConstant() float64
}

// GaussianKernel is a second order gaussian kernel with bandwidth h. With
// weights set, Density is the weighted mixture.
type GaussianKernel struct {
	l2Norm                  float64
	kernelVar               float64
	order                   int
	normalReferenceConstant float64
	h                       float64
	weights                 []float64
}

func NewGaussianKernel() *GaussianKernel {
	return &GaussianKernel{
		l2Norm:    1.0 / (2.0 * math.Sqrt(math.Pi)),
		kernelVar: 1.0,
		order:     2,
		h:         1.0,
	}
}

func (k *GaussianKernel) SetH(h float64) {
	k.h = h
}

// SetWeights stores weights normalized to sum to one. A zero sum leaves
// every weight at zero.
func (k *GaussianKernel) SetWeights(weights []float64) {
	normalized := make([]float64, len(weights))
	if sum := floats.Sum(weights); sum != 0 {
		floats.ScaleTo(normalized, 1/sum, weights)
	}
	k.weights = normalized
}

func (k *GaussianKernel) Shape(u float64) float64 {
	return 0.3989422804014327 * math.Exp(-u*u/2.0)
}

// NormalReferenceConstant is the rule of thumb constant C in
// bw = C * sigma * n^(-1/5), 1.059 for the gaussian kernel.
func (k *GaussianKernel) NormalReferenceConstant() float64 {
	if k.normalReferenceConstant != 0 {
		return k.normalReferenceConstant
	}
	nu := k.order
	numerator := math.Sqrt(math.Pi) * math.Pow(factorial(nu), 3) * k.l2Norm
	denom := 2.0 * float64(nu) * factorial(2*nu) * math.Pow(k.moment(nu), 2)
	k.normalReferenceConstant = 2 * math.Pow(numerator/denom, 1.0/float64(2*nu+1))
	return k.normalReferenceConstant
}

func (k *GaussianKernel) moment(n int) float64 {
	switch n {
	case 1:
		return 0
	case 2:
		return k.kernelVar
	}
	return 1.0
}

// Density evaluates the kernel estimate built from xs at x.
func (k *GaussianKernel) Density(xs []float64, x float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	var sum float64
	for i, xi := range xs {
		u := (xi - x) / k.h
		if k.weights != nil {
			sum += k.Shape(u) * k.weights[i]
		} else {
			sum += k.Shape(u) / float64(len(xs))
		}
	}
	return sum / k.h
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
