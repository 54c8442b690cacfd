package numutils

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
)

// ProcessPValue renders a p-value for reports: "<0.001" below 0.001,
// otherwise three decimals. NaN means no value and gives "NA".
func ProcessPValue(pval float64) (string, error) {
	switch {
	case math.IsNaN(pval):
		return "NA", nil
	case pval > 1 || pval < 0:
		return "", fmt.Errorf("%w: p-value %v must be between 0 and 1", common.ErrorInvalidArgument, pval)
	case pval > 0 && pval < pValueFloor:
		return FormatResult(pValueFloor, "<", 1)
	}
	return fmt.Sprintf("%0.3f", pval), nil
}

// ProcessAndersonDarling turns an Anderson-Darling statistic and its
// critical values into a confidence string such as "99.0%". When the
// statistic exceeds every critical value the lowest confidence is reported
// with a "<" prefix.
func ProcessAndersonDarling(statistic float64, critical, significance []float64) (string, error) {
	if len(critical) == 0 || len(critical) != len(significance) {
		return "", fmt.Errorf("%w: %d critical values and %d significance levels",
			common.ErrorInvalidArgument, len(critical), len(significance))
	}

	last := -1
	for i := range critical {
		if statistic < critical[i] {
			last = i
		}
	}
	if last < 0 {
		return fmt.Sprintf("<%0.1f%%", 100-significance[0]), nil
	}
	return fmt.Sprintf("%0.1f%%", 100-significance[last]), nil
}
