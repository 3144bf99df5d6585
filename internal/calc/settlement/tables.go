package settlement

// coeffTable is a strictly increasing set of (z/r, coefficient) pairs with
// clamped piecewise-linear lookup.
type coeffTable struct {
	xs []float64
	ys []float64
}

func (t coeffTable) lookup(zOverR float64) float64 {
	if zOverR <= t.xs[0] {
		return t.ys[0]
	}
	last := len(t.xs) - 1
	if zOverR >= t.xs[last] {
		return t.ys[last]
	}
	for i := 0; i < last; i++ {
		x1, x2 := t.xs[i], t.xs[i+1]
		if x1 <= zOverR && zOverR <= x2 {
			y1, y2 := t.ys[i], t.ys[i+1]
			return y1 + (zOverR-x1)*(y2-y1)/(x2-x1)
		}
	}
	return t.ys[last]
}

func steps(from, step float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	return xs
}

// Table D.0.3: mean additional-stress coefficient under a uniform load on a
// circular area, keyed by z/r.
var uniformAlpha = coeffTable{
	xs: steps(0, 0.1, 51),
	ys: []float64{
		1.000, 1.000, 0.998, 0.993, 0.986, 0.974, 0.960, 0.942, 0.923, 0.901,
		0.878, 0.855, 0.831, 0.808, 0.784, 0.762, 0.739, 0.718, 0.697, 0.677,
		0.658, 0.640, 0.623, 0.606, 0.590, 0.574, 0.560, 0.546, 0.532, 0.519,
		0.507, 0.495, 0.484, 0.473, 0.463, 0.453, 0.443, 0.434, 0.425, 0.417,
		0.409, 0.401, 0.393, 0.386, 0.379, 0.372, 0.365, 0.359, 0.353, 0.347,
		0.341,
	},
}

var triangularXs = append(steps(0, 0.1, 41), 4.2, 4.4, 4.6, 4.8, 5.0)

// Table D.0.4: coefficients under a triangular load on a circular area; point
// 1 is under the zero-pressure edge, point 2 under the peak-pressure edge.
var triangularPoint1 = coeffTable{
	xs: triangularXs,
	ys: []float64{
		0.000, 0.008, 0.016, 0.023, 0.030, 0.035, 0.041, 0.045, 0.050, 0.054,
		0.057, 0.061, 0.063, 0.065, 0.067, 0.069, 0.070, 0.071, 0.072, 0.072,
		0.073, 0.073, 0.073, 0.073, 0.073, 0.072, 0.072, 0.071, 0.071, 0.070,
		0.070, 0.069, 0.069, 0.068, 0.067, 0.067, 0.066, 0.065, 0.065, 0.064,
		0.063, 0.062, 0.061, 0.059, 0.058, 0.057,
	},
}

var triangularPoint2 = coeffTable{
	xs: triangularXs,
	ys: []float64{
		0.500, 0.483, 0.466, 0.450, 0.435, 0.420, 0.406, 0.393, 0.380, 0.368,
		0.356, 0.344, 0.333, 0.323, 0.313, 0.303, 0.294, 0.286, 0.278, 0.270,
		0.263, 0.255, 0.249, 0.242, 0.236, 0.230, 0.225, 0.219, 0.214, 0.209,
		0.204, 0.200, 0.196, 0.192, 0.188, 0.184, 0.180, 0.177, 0.173, 0.170,
		0.167, 0.161, 0.155, 0.150, 0.145, 0.140,
	},
}
