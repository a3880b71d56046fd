package pack

import "math"

// SRGBToLinear applies the sRGB decoding transfer function.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB encoding transfer function.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// SRGBToLinear3 decodes an RGB triple. Alpha is never part of the curve.
func SRGBToLinear3(c [3]float64) [3]float64 {
	return [3]float64{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2])}
}

// LinearToSRGB3 encodes an RGB triple.
func LinearToSRGB3(l [3]float64) [3]float64 {
	return [3]float64{LinearToSRGB(l[0]), LinearToSRGB(l[1]), LinearToSRGB(l[2])}
}
