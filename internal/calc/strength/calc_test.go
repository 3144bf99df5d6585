package strength

import (
	"math"
	"testing"

	"Fundament/internal/foundation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() foundation.Geometry {
	return foundation.Geometry{
		BaseRadiusM:    10,
		ColumnRadiusM:  3,
		BuriedDepthM:   4,
		EdgeHeightM:    1.2,
		FrustumHeightM: 1.8,
		ColumnHeightM:  1.0,
		GroundHeightM:  0.3,
	}
}

func TestShearCheck(t *testing.T) {
	res, err := Calculate(Input{
		Geometry:       testGeometry(),
		Material:       foundation.DefaultMaterial(),
		NetPressureKPa: 129.19477,
	})
	require.NoError(t, err)

	s := res.Shear
	assert.InDelta(t, 2930.0, s.EffectiveHeightMM, 1e-9)
	assert.InDelta(t, 13.218407, s.ShearWidthM, 1e-5)
	assert.InDelta(t, 0.880112, s.HeightFactor, 1e-5)
	assert.InDelta(t, 40801.741, s.CapacityKN, 1e-2)
	assert.InDelta(t, 126.610367, s.S1M2, 1e-5)
	assert.InDelta(t, 28.618176, s.S2M2, 1e-5)
	assert.InDelta(t, 12660.079, s.ShearForceKN, 1e-2)
	assert.InDelta(t, 13926.086, s.FactoredKN, 1e-2)
	assert.True(t, s.IsCompliant)
}

func TestPunchingCheck(t *testing.T) {
	res, err := Calculate(Input{
		Geometry:       testGeometry(),
		Material:       foundation.DefaultMaterial(),
		NetPressureKPa: 129.19477,
	})
	require.NoError(t, err)

	p := res.Punching
	assert.InDelta(t, 0.9, p.HeightFactor, 1e-9)
	assert.InDelta(t, 18.849556, p.TopPerimeterM, 1e-5)
	assert.InDelta(t, 37.259289, p.BottomPerimeterM, 1e-5)
	assert.InDelta(t, 88553.476, p.CapacityKN, 1e-2)
	assert.InDelta(t, 203.685474, p.PunchingAreaM2, 1e-5)
	assert.InDelta(t, 26315.098, p.PunchingForceKN, 1e-2)
	assert.True(t, p.ConeInsideBaseSlab)
	assert.True(t, p.IsCompliant)
	assert.True(t, res.OverallCompliant)
}

func TestPunchingConeOutsideSlab(t *testing.T) {
	g := testGeometry()
	g.BaseRadiusM = 5.5
	g.ColumnRadiusM = 3
	res, err := Calculate(Input{
		Geometry:       g,
		Material:       foundation.DefaultMaterial(),
		NetPressureKPa: 120,
	})
	require.NoError(t, err)
	// cone bottom radius 3 + 2.93 > 5.5
	assert.False(t, res.Punching.ConeInsideBaseSlab)
	assert.Zero(t, res.Punching.PunchingForceKN)
	assert.True(t, res.Punching.IsCompliant)
}

func TestPunchingHeightFactorBands(t *testing.T) {
	assert.InDelta(t, 1.0, punchingHeightFactor(600), 1e-9)
	assert.InDelta(t, 1.0, punchingHeightFactor(800), 1e-9)
	assert.InDelta(t, 0.95, punchingHeightFactor(1400), 1e-9)
	assert.InDelta(t, 0.9, punchingHeightFactor(2000), 1e-9)
	assert.InDelta(t, 0.9, punchingHeightFactor(2600), 1e-9)
}

func TestDetachmentCheck(t *testing.T) {
	res, err := Calculate(Input{
		Geometry:          testGeometry(),
		Material:          foundation.DefaultMaterial(),
		NetPressureKPa:    120,
		CompressedHeightM: 16.086939,
		AllowedDetachment: AllowedDetachmentExtreme,
	})
	require.NoError(t, err)

	d := res.Detachment
	assert.InDelta(t, 270.815052, d.CompressedAreaM2, 1e-3)
	assert.InDelta(t, 43.344213, d.DetachedAreaM2, 1e-3)
	assert.InDelta(t, 0.137969, d.DetachmentRatio, 1e-5)
	assert.True(t, d.IsCompliant)
}

func TestDetachmentFullContactByDefault(t *testing.T) {
	res, err := Calculate(Input{
		Geometry:       testGeometry(),
		Material:       foundation.DefaultMaterial(),
		NetPressureKPa: 120,
	})
	require.NoError(t, err)
	assert.Zero(t, res.Detachment.DetachedAreaM2)
	assert.True(t, res.Detachment.IsCompliant)
}

func TestSegmentAreaBounds(t *testing.T) {
	r := 10.0
	assert.Zero(t, segmentArea(r, 0))
	assert.Zero(t, segmentArea(r, -1))
	assert.InDelta(t, math.Pi*r*r, segmentArea(r, 2*r), 1e-9)
	assert.InDelta(t, math.Pi*r*r, segmentArea(r, 3*r), 1e-9)
	assert.InDelta(t, math.Pi*r*r/2, segmentArea(r, r), 1e-9)
}

func TestInvalidGeometryRejected(t *testing.T) {
	g := testGeometry()
	g.ColumnRadiusM = 10
	_, err := Calculate(Input{Geometry: g, Material: foundation.DefaultMaterial()})
	require.Error(t, err)
	assert.ErrorIs(t, err, foundation.ErrInvalidGeometry)
}
