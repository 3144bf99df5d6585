package pressure

import (
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

func TestCalculateFullSection(t *testing.T) {
	res, err := Calculate(Input{
		Geometry: testGeometry(),
		Material: foundation.DefaultMaterial(),
		FrKN:     600,
		FzKN:     4500,
		MxKNM:    40000,
		MyKNM:    30000,
		GkKN:     20000,
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.1, res.BaseHeightM, 1e-9)
	assert.InDelta(t, 52460.0, res.MrkKNM, 1e-6)
	assert.InDelta(t, 24500.0, res.TotalDeadLoadKN, 1e-9)
	assert.InDelta(t, 77.98592, res.PkKPa, 1e-4)
	assert.InDelta(t, 144.78007, res.PkmaxKPa, 1e-4)
	assert.InDelta(t, 11.19178, res.PkminKPa, 1e-4)
	assert.InDelta(t, 129.19477, res.NetPressureKPa, 1e-4)
	assert.InDelta(t, 2*res.PkKPa, res.PkmaxKPa+res.PkminKPa, 1e-9)
	assert.InDelta(t, 0.214122, res.EOverR, 1e-5)
	assert.False(t, res.ZeroStressZone)
	assert.InDelta(t, res.PkmaxKPa, res.EdgePressureKPa, 1e-9)
	assert.True(t, res.EccentricityWithin)
}

func TestCalculateZeroStressZone(t *testing.T) {
	res, err := Calculate(Input{
		Geometry: testGeometry(),
		Material: foundation.DefaultMaterial(),
		FzKN:     4500,
		MxKNM:    90000,
		GkKN:     20000,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.367347, res.EOverR, 1e-5)
	assert.True(t, res.ZeroStressZone)
	assert.InDelta(t, 1.608694, res.Tau, 1e-5)
	assert.InDelta(t, 1.231429, res.Xi, 1e-5)
	assert.InDelta(t, 16.086939, res.CompressedHeightM, 1e-4)
	assert.InDelta(t, 198.95592, res.EdgePressureKPa, 1e-4)
	assert.Less(t, res.PkminKPa, 0.0)
	assert.True(t, res.EccentricityWithin)
}

func TestEccentricityBeyondDesignLimit(t *testing.T) {
	res, err := Calculate(Input{
		Geometry: testGeometry(),
		Material: foundation.DefaultMaterial(),
		FzKN:     4500,
		MxKNM:    140000,
		GkKN:     20000,
	})
	require.NoError(t, err)

	// e/R = 140000/24500/10, past the table's 0.52 end
	assert.InDelta(t, 0.571429, res.EOverR, 1e-5)
	assert.False(t, res.EccentricityWithin)
	assert.True(t, res.ZeroStressZone)
	assert.InDelta(t, 1.181, res.Tau, 1e-9)
	assert.InDelta(t, 0.833, res.Xi, 1e-9)
	assert.InDelta(t, 294.117647, res.EdgePressureKPa, 1e-4)
}

func TestBasicCombinationFactors(t *testing.T) {
	in := Input{
		Geometry:    testGeometry(),
		Material:    foundation.DefaultMaterial(),
		FrKN:        600,
		FzKN:        4500,
		MxKNM:       40000,
		MyKNM:       30000,
		GkKN:        20000,
		Combination: CombinationBasicUnfavorable,
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 101.38170, res.PkKPa, 1e-4)
	assert.InDelta(t, 201.57292, res.PkmaxKPa, 1e-4)

	in.Combination = CombinationBasicFavorable
	fav, err := Calculate(in)
	require.NoError(t, err)
	assert.Less(t, fav.PkKPa, res.PkKPa)
}

func TestCoefficientClamping(t *testing.T) {
	assert.InDelta(t, 2.000, interpolateCoeff(tauCoefficients, 0.10), 1e-9)
	assert.InDelta(t, 1.181, interpolateCoeff(tauCoefficients, 0.80), 1e-9)
	assert.InDelta(t, 1.571, interpolateCoeff(xiCoefficients, 0.25), 1e-9)
	assert.InDelta(t, 0.833, interpolateCoeff(xiCoefficients, 0.52), 1e-9)
	// midpoint between 0.30 and 0.31
	assert.InDelta(t, (1.820+1.787)/2, interpolateCoeff(tauCoefficients, 0.305), 1e-9)
}

func TestInvalidGeometryRejected(t *testing.T) {
	g := testGeometry()
	g.ColumnRadiusM = 12
	_, err := Calculate(Input{Geometry: g, Material: foundation.DefaultMaterial(), GkKN: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, foundation.ErrInvalidGeometry)
}
