package settlement

// Table 6.4.2: settlement correction coefficient rows keyed by equivalent
// compression modulus, one row per pressure regime.
var (
	psiEsMPa   = []float64{2.5, 4.0, 7.0, 15.0, 20.0}
	psiHighRow = []float64{1.4, 1.3, 1.0, 0.4, 0.2} // p0k >= fak
	psiLowRow  = []float64{1.1, 1.0, 0.7, 0.4, 0.2} // p0k <= 0.75 fak
)

const psiFallback = 0.63330

// psiS interpolates the settlement correction coefficient for the running
// equivalent modulus. Between the two pressure regimes the row itself is
// blended linearly over 0.75fak < p0k < fak.
func psiS(esMPa, p0kKPa, fakKPa float64) float64 {
	var row []float64
	switch {
	case p0kKPa >= fakKPa:
		row = psiHighRow
	case p0kKPa <= 0.75*fakKPa:
		row = psiLowRow
	default:
		ratio := (p0kKPa - 0.75*fakKPa) / (0.25 * fakKPa)
		row = make([]float64, len(psiLowRow))
		for i := range row {
			row[i] = psiLowRow[i] + ratio*(psiHighRow[i]-psiLowRow[i])
		}
	}

	last := len(psiEsMPa) - 1
	if esMPa <= psiEsMPa[0] {
		return row[0]
	}
	if esMPa >= psiEsMPa[last] {
		return row[last]
	}
	for i := 0; i < last; i++ {
		if psiEsMPa[i] <= esMPa && esMPa <= psiEsMPa[i+1] {
			ratio := (esMPa - psiEsMPa[i]) / (psiEsMPa[i+1] - psiEsMPa[i])
			return row[i] + ratio*(row[i+1]-row[i])
		}
	}
	return psiFallback
}
