package common

import "math"

// TPS is the fixed simulation rate. All durations are counted in ticks.
const TPS = 60

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScaleTicks multiplies a tick count and rounds, never dropping below floor.
func ScaleTicks(ticks int, mul float64, floor int) int {
	n := int(math.Round(float64(ticks) * mul))
	if n < floor {
		return floor
	}
	return n
}
