package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableClamping(t *testing.T) {
	tables := map[string]coeffTable{
		"uniform": uniformAlpha,
		"point1":  triangularPoint1,
		"point2":  triangularPoint2,
	}
	for name, tbl := range tables {
		first := tbl.ys[0]
		last := tbl.ys[len(tbl.ys)-1]
		assert.Equal(t, first, tbl.lookup(0), "%s at z/r=0", name)
		assert.Equal(t, first, tbl.lookup(-0.5), "%s below range", name)
		assert.Equal(t, last, tbl.lookup(5.0), "%s at max key", name)
		assert.Equal(t, last, tbl.lookup(7.3), "%s above range", name)
	}
}

func TestTableInterpolation(t *testing.T) {
	// Midway between 0.2 (0.998) and 0.3 (0.993).
	assert.InDelta(t, 0.9955, uniformAlpha.lookup(0.25), 1e-9)
	// The triangular tables switch to a 0.2 step after z/r = 4.0.
	assert.InDelta(t, 0.0625, triangularPoint1.lookup(4.1), 1e-9)
	assert.InDelta(t, 0.164, triangularPoint2.lookup(4.1), 1e-9)
	// Exact nodes come back verbatim.
	assert.InDelta(t, 0.878, uniformAlpha.lookup(1.0), 1e-9)
}

func TestUniformTableMonotone(t *testing.T) {
	require.Len(t, uniformAlpha.ys, len(uniformAlpha.xs))
	for i := 1; i < len(uniformAlpha.ys); i++ {
		assert.LessOrEqual(t, uniformAlpha.ys[i], uniformAlpha.ys[i-1])
	}
}
