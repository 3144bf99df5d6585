package comprehensive

import (
	"testing"

	"Fundament/internal/foundation"
	"Fundament/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() Input {
	return Input{
		Geometry: foundation.Geometry{
			BaseRadiusM:    10,
			ColumnRadiusM:  3,
			BuriedDepthM:   4,
			EdgeHeightM:    1.2,
			FrustumHeightM: 1.8,
			ColumnHeightM:  1.0,
			GroundHeightM:  0.3,
		},
		Material: foundation.DefaultMaterial(),
		Layers: []soil.Layer{{
			LayerName:             "silty clay",
			ElevationM:            0,
			ThicknessM:            30,
			DensityKNM3:           19,
			CompressionModulusMPa: 12,
			FakKPa:                200,
			EtaB:                  0.3,
			EtaD:                  1.6,
			ZetaA:                 1.3,
		}},
		Normal:  CaseLoads{FrKN: 600, FzKN: 4500, MxKNM: 30000, MyKNM: 20000},
		Extreme: CaseLoads{FrKN: 900, FzKN: 4500, MxKNM: 45000, MyKNM: 30000},
		Seismic: CaseLoads{FrKN: 700, FzKN: 4500, MxKNM: 35000, MyKNM: 25000},
	}
}

func TestCalculateRunsAllCases(t *testing.T) {
	res, err := Calculate(testInput())
	require.NoError(t, err)

	require.Len(t, res.Cases, 3)
	assert.Equal(t, "normal", res.Cases[0].Name)
	assert.Equal(t, "extreme", res.Cases[1].Name)
	assert.Equal(t, "seismic", res.Cases[2].Name)

	assert.Greater(t, res.SelfWeight.TotalWeightKN, 0.0)
	for _, c := range res.Cases {
		assert.InDelta(t, res.SelfWeight.TotalWeightKN+4500, c.Pressure.TotalDeadLoadKN, 1e-6)
		assert.Greater(t, c.Settlement.Settlement.FinalSettlementMM, 0.0)
		assert.True(t, c.Settlement.Settlement.Converged)
	}
	assert.Greater(t, res.Cases[1].Pressure.PkmaxKPa, res.Cases[0].Pressure.PkmaxKPa)
}

func TestBearingUsesCasePressures(t *testing.T) {
	res, err := Calculate(testInput())
	require.NoError(t, err)

	assert.InDelta(t, res.Cases[0].Pressure.PkKPa, res.Bearing.Normal.PkKPa, 1e-9)
	assert.InDelta(t, res.Cases[1].Pressure.PkmaxKPa, res.Bearing.Extreme.PkmaxKPa, 1e-9)
	assert.InDelta(t, res.Cases[2].Pressure.PkKPa, res.Bearing.Seismic.PkKPa, 1e-9)
	// seismic checks run against fae, not fa
	assert.InDelta(t, res.Bearing.FaeKPa, res.Bearing.Seismic.LimitKPa, 1e-9)
	// fa = 200 + 0.3*19*(20-3) + 1.6*19*(4-0.5), gamma_m from the profile
	assert.InDelta(t, 403.3, res.Bearing.FaKPa, 1e-6)
}

func TestOverallCompliance(t *testing.T) {
	res, err := Calculate(testInput())
	require.NoError(t, err)
	assert.True(t, res.OverallCompliance)

	in := testInput()
	in.Extreme.MxKNM = 400000
	res, err = Calculate(in)
	require.NoError(t, err)
	assert.False(t, res.OverallCompliance)
}

func TestEmptyProfileRejected(t *testing.T) {
	in := testInput()
	in.Layers = nil
	_, err := Calculate(in)
	assert.Error(t, err)
}
