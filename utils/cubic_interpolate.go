// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position x (0 <= x <= 1) between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a := 3*(y1-y2) + y3 - y0
	b := 2*y0 - 5*y1 + 4*y2 - y3
	c := y2 - y0

	return y1 + 0.5*x*(c+x*(b+x*a))
}
