package utils

import "math"

// ClampFloat64 clamps a float64 value between min and max
func ClampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FloorAtLeast truncates value to an int with a lower bound. Used for sizing
// cores and RAM, where fractional capacity is discarded, never rounded up.
func FloorAtLeast(value float64, floor int) int {
	n := int(value)
	if n < floor {
		return floor
	}
	return n
}

// RoundAtLeast rounds value to the nearest int with a lower bound. Used for
// task counts.
func RoundAtLeast(value float64, floor int) int {
	n := int(math.Round(value))
	if n < floor {
		return floor
	}
	return n
}

// Mean calculates the mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Sum calculates the sum of a slice of float64 values
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}
