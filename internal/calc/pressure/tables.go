package pressure

// Zero-stress-zone pressure coefficients for a solid circular base
// (annular columns would need the r2/r1 > 0 columns, which we do not carry).
// Rows run e/R = 0.25 .. 0.52 in steps of 0.01.
const (
	coeffRatioMin  = 0.25
	coeffRatioMax  = 0.52
	coeffRatioStep = 0.01
)

var tauCoefficients = []float64{
	2.000, 1.960, 1.924, 1.889, 1.854, 1.820, 1.787, 1.755,
	1.723, 1.692, 1.661, 1.630, 1.601, 1.571, 1.541, 1.513,
	1.484, 1.455, 1.427, 1.399, 1.371, 1.343, 1.316, 1.288,
	1.261, 1.234, 1.208, 1.181,
}

var xiCoefficients = []float64{
	1.571, 1.539, 1.509, 1.480, 1.450, 1.421, 1.392, 1.364,
	1.335, 1.307, 1.279, 1.252, 1.224, 1.197, 1.170, 1.143,
	1.116, 1.090, 1.063, 1.037, 1.010, 0.984, 0.959, 0.933,
	0.908, 0.883, 0.858, 0.833,
}

// interpolateCoeff looks up a coefficient column at the given e/R ratio,
// clamping below the first row. The caller must reject ratios above
// coeffRatioMax before calling.
func interpolateCoeff(table []float64, eOverR float64) float64 {
	if eOverR <= coeffRatioMin {
		return table[0]
	}
	if eOverR >= coeffRatioMax {
		return table[len(table)-1]
	}
	pos := (eOverR - coeffRatioMin) / coeffRatioStep
	i := int(pos)
	if i >= len(table)-1 {
		return table[len(table)-1]
	}
	frac := pos - float64(i)
	return table[i] + (table[i+1]-table[i])*frac
}
