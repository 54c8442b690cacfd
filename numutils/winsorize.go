package numutils

import (
	"fmt"

	"github.com/uyouii/wq-algorithms/common"
	"golang.org/x/exp/slices"
)

// Winsorize returns a copy of x whose lowest lower fraction of values is
// raised to the smallest kept value and whose highest upper fraction is
// lowered to the largest kept value.
func Winsorize(x []float64, lower, upper float64) ([]float64, error) {
	if !(lower >= 0 && lower <= 1) || !(upper >= 0 && upper <= 1) || lower+upper > 1 {
		return nil, fmt.Errorf("%w: winsorize limits (%v, %v)", common.ErrorInvalidArgument, lower, upper)
	}

	res := slices.Clone(x)
	n := len(res)
	if n == 0 {
		return res, nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case x[a] < x[b]:
			return -1
		case x[a] > x[b]:
			return 1
		}
		return 0
	})

	lowIdx := int(lower * float64(n))
	upIdx := n - int(upper*float64(n))
	if lowIdx > 0 && lowIdx < n {
		floor := x[idx[lowIdx]]
		for _, i := range idx[:lowIdx] {
			res[i] = floor
		}
	}
	if upIdx < n && upIdx > 0 {
		ceil := x[idx[upIdx-1]]
		for _, i := range idx[upIdx:] {
			res[i] = ceil
		}
	}
	return res, nil
}
