package numutils

import "math"

// CheckIntervalOverlap reports whether two intervals overlap. With oneway
// set, only an end of interval1 falling inside interval2 counts.
func CheckIntervalOverlap(interval1, interval2 [2]float64, oneway bool) bool {
	min2 := math.Min(interval2[0], interval2[1])
	max2 := math.Max(interval2[0], interval2[1])
	min1 := math.Min(interval1[0], interval1[1])
	max1 := math.Max(interval1[0], interval1[1])

	test1 := min2 <= max1 && max1 <= max2
	test2 := min2 <= min1 && min1 <= max2
	if oneway {
		return test1 || test2
	}
	return test1 || test2 || CheckIntervalOverlap(interval2, interval1, true)
}
