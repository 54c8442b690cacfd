package numutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/internal/options"
)

const (
	DefaultExpThresh = 5
	pValueFloor      = 0.001
)

type sigFigsConfig struct {
	expThresh int
	tex       bool
	pval      bool
	forceInt  bool
}

type SigFigsOption = options.Option[*sigFigsConfig]

// WithExpThresh sets the absolute order of magnitude beyond which numbers
// are written in exponential notation.
func WithExpThresh(thresh int) SigFigsOption {
	return options.NoError(func(c *sigFigsConfig) {
		c.expThresh = thresh
	})
}

// WithTex renders exponents and p-value floors for LaTeX.
func WithTex() SigFigsOption {
	return options.NoError(func(c *sigFigsConfig) {
		c.tex = true
	})
}

// WithPValue renders values under 0.001 as "<0.001".
func WithPValue() SigFigsOption {
	return options.NoError(func(c *sigFigsConfig) {
		c.pval = true
	})
}

func WithForceInt() SigFigsOption {
	return options.NoError(func(c *sigFigsConfig) {
		c.forceInt = true
	})
}

// SigFigs formats x with n significant figures, using thousands separators.
// NaN and Inf are rendered as "NA".
//
//	SigFigs(1247.15, 3) -> "1,250"
//	SigFigs(1247.15, 7) -> "1,247.150"
func SigFigs(x float64, n int, opts ...SigFigsOption) (string, error) {
	cfg := &sigFigsConfig{expThresh: DefaultExpThresh}
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "NA", nil
	}
	if n < 1 {
		return "", fmt.Errorf("%w: number of sig figs must be greater than zero, got %d",
			common.ErrorInvalidArgument, n)
	}

	switch {
	case cfg.pval && x < pValueFloor:
		if cfg.tex {
			return "$<0.001$", nil
		}
		return "<0.001", nil
	case cfg.forceInt:
		return commaFormat(x, 0), nil
	case x == 0:
		return "0.0", nil
	}

	order := magnitude(x)
	thresh := float64(cfg.expThresh)
	if -thresh <= order && order <= thresh {
		decimals := n - 1 - int(order)
		if decimals <= 0 {
			return commaFormat(roundTo(x, decimals), 0), nil
		}
		return commaFormat(x, decimals), nil
	}

	decimals := n - 1
	if cfg.tex {
		mantissa := roundTo(x/math.Pow(10, order), decimals)
		return fmt.Sprintf(`$%0.*f \times 10 ^ {%d}$`, decimals, mantissa, int(order)), nil
	}
	return strconv.FormatFloat(x, 'e', decimals, 64), nil
}

// FormatResult prefixes the formatted result with its qualifier.
//
//	FormatResult(1.23, "<", 4) -> "<1.230"
func FormatResult(result float64, qualifier string, sigfigs int) (string, error) {
	formatted, err := SigFigs(result, sigfigs)
	if err != nil {
		return "", err
	}
	return qualifier + formatted, nil
}

// magnitude is floor(log10(|x|)), corrected for the rounding of Log10 at
// exact powers of ten.
func magnitude(x float64) float64 {
	abs := math.Abs(x)
	order := math.Floor(math.Log10(abs))
	if math.Pow(10, order+1) <= abs {
		order++
	} else if math.Pow(10, order) > abs {
		order--
	}
	return order
}

// roundTo rounds half to even at the given number of decimals, which may be
// negative.
func roundTo(x float64, decimals int) float64 {
	if decimals < 0 {
		pow := math.Pow(10, float64(-decimals))
		return math.RoundToEven(x/pow) * pow
	}
	pow := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*pow) / pow
}

func commaFormat(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}
