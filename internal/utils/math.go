package utils

// Clamp bounds num to the inclusive range [min, max].
func Clamp(num, min, max float64) float64 {
	if num <= min {
		return min
	}
	if num >= max {
		return max
	}
	return num
}

// Scale linearly maps value from the range [min, max] onto [baseMin, baseMax].
// baseMin may exceed baseMax to invert the scaling direction. Values outside
// [min, max] extrapolate; callers wanting hard bounds wrap the result in
// Clamp.
func Scale(value, min, max, baseMin, baseMax float64) float64 {
	return ((value-min)*(baseMax-baseMin))/(max-min) + baseMin
}
