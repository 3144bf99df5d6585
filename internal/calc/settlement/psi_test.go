package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPsiRegimeBoundaries(t *testing.T) {
	const fak = 150.0
	for i, es := range psiEsMPa {
		assert.InDelta(t, psiLowRow[i], psiS(es, 0.75*fak, fak), 1e-12, "low row at Es=%.1f", es)
		assert.InDelta(t, psiHighRow[i], psiS(es, fak, fak), 1e-12, "high row at Es=%.1f", es)
	}
}

func TestPsiRowBlending(t *testing.T) {
	const fak = 150.0
	// At p0k = 0.875 fak every entry is the arithmetic mean of the two rows.
	for i, es := range psiEsMPa {
		want := (psiLowRow[i] + psiHighRow[i]) / 2
		assert.InDelta(t, want, psiS(es, 0.875*fak, fak), 1e-12, "Es=%.1f", es)
	}
	assert.InDelta(t, 1.05, psiS(5.0, 0.875*fak, fak), 1e-12)
}

func TestPsiEsClamping(t *testing.T) {
	const fak = 150.0
	assert.InDelta(t, psiLowRow[0], psiS(1.0, 100, fak), 1e-12)
	assert.InDelta(t, psiLowRow[len(psiLowRow)-1], psiS(35.0, 100, fak), 1e-12)
}

func TestPsiInterpolatesEs(t *testing.T) {
	// p0k well below 0.75 fak, Es=12 between the 7.0 and 15.0 nodes.
	assert.InDelta(t, 0.5125, psiS(12.0, 54, 150), 1e-12)
}
