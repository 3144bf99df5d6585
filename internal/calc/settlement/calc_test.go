package settlement

import (
	"testing"

	"Fundament/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleLayerProfile() []soil.Layer {
	return []soil.Layer{{
		LayerName:             "silty clay",
		ElevationM:            0,
		ThicknessM:            20,
		DensityKNM3:           19,
		CompressionModulusMPa: 12,
		FakKPa:                150,
	}}
}

func TestCalculateReferenceScenario(t *testing.T) {
	res, err := Calculate(Input{
		BaseRadiusM:  10,
		BuriedDepthM: 4,
		Layers:       singleLayerProfile(),
		PkKPa:        130,
		PkmaxKPa:     130,
		PkminKPa:     130,
	})
	require.NoError(t, err)

	s := res.Settlement
	assert.InDelta(t, 76.0, s.PsKPa, 1e-9)
	assert.InDelta(t, 54.0, s.P0kKPa, 1e-9)
	assert.InDelta(t, 150.0, s.FakKPa, 1e-9)
	assert.Equal(t, 20, s.LayerCount)
	assert.True(t, s.Converged)

	require.NotEmpty(t, s.PerLayer)
	first := s.PerLayer[0]
	assert.InDelta(t, 0.8, first.ZiM, 1e-9)
	assert.InDelta(t, 4.8, first.AbsoluteDepthM, 1e-9)
	assert.InDelta(t, 1.0, first.AlphaI, 1e-9)
	assert.InDelta(t, 12.0, first.EsiMPa, 1e-9)
	assert.InDelta(t, 3.6, first.DeltaSMM, 1e-9)
	assert.InDelta(t, 1.0, first.SettlementRatio, 1e-9)

	assert.InDelta(t, 12.0, s.EquivalentEsMPa, 1e-9)
	assert.InDelta(t, 0.5125, s.PsiS, 1e-9)
	assert.InDelta(t, 58.96638, s.RawSettlementMM, 1e-5)
	assert.InDelta(t, 30.22027, s.FinalSettlementMM, 1e-4)
	assert.Less(t, s.FinalSettlementMM, s.RawSettlementMM)
	assert.True(t, s.IsCompliant)
}

func TestCumulativeSettlementMonotone(t *testing.T) {
	res, err := Calculate(Input{
		BaseRadiusM:  10,
		BuriedDepthM: 4,
		Layers:       singleLayerProfile(),
		PkKPa:        130,
		PkmaxKPa:     150,
		PkminKPa:     110,
	})
	require.NoError(t, err)

	prev := 0.0
	for _, d := range res.Settlement.PerLayer {
		assert.GreaterOrEqual(t, d.CumulativeSMM, prev)
		assert.InDelta(t, d.DeltaSMM/d.CumulativeSMM, d.SettlementRatio, 1e-12)
		prev = d.CumulativeSMM
	}
	last := res.Settlement.PerLayer[len(res.Settlement.PerLayer)-1]
	assert.LessOrEqual(t, last.SettlementRatio, convergenceRatio)
}

func TestConvergenceWellBeforeCap(t *testing.T) {
	stiff := []soil.Layer{{
		LayerName:             "dense gravel",
		ElevationM:            0,
		ThicknessM:            30,
		DensityKNM3:           19,
		CompressionModulusMPa: 50,
		FakKPa:                150,
	}}
	res, err := Calculate(Input{
		BaseRadiusM:  2.5,
		BuriedDepthM: 2,
		Layers:       stiff,
		PkKPa:        68, // small P0k once Ps is removed
		PkmaxKPa:     68,
		PkminKPa:     68,
	})
	require.NoError(t, err)
	assert.True(t, res.Settlement.Converged)
	assert.Equal(t, 11, res.Settlement.LayerCount)
	assert.Less(t, res.Settlement.LayerCount, settlementMaxLayers)
}

func TestInclinationSymmetry(t *testing.T) {
	res, err := Calculate(Input{
		BaseRadiusM:  10,
		BuriedDepthM: 4,
		Layers:       singleLayerProfile(),
		PkKPa:        130,
		PkmaxKPa:     130,
		PkminKPa:     130,
	})
	require.NoError(t, err)
	assert.InDelta(t, res.Inclination.S1MM, res.Inclination.S2MM, 1e-12)
	assert.Zero(t, res.Inclination.Inclination)
	assert.True(t, res.Inclination.IsCompliant)
}

func TestInclinationReferenceScenario(t *testing.T) {
	res, err := Calculate(Input{
		BaseRadiusM:  10,
		BuriedDepthM: 4,
		Layers:       singleLayerProfile(),
		PkKPa:        130,
		PkmaxKPa:     160,
		PkminKPa:     100,
	})
	require.NoError(t, err)

	inc := res.Inclination
	assert.InDelta(t, 84.0, inc.P0kmaxKPa, 1e-9)
	assert.InDelta(t, 24.0, inc.P0kminKPa, 1e-9)
	assert.InDelta(t, 18.611991, inc.S1MM, 1e-4)
	assert.InDelta(t, 26.846226, inc.S2MM, 1e-4)
	assert.InDelta(t, 0.000411712, inc.Inclination, 1e-7)
	assert.True(t, inc.Converged)
	assert.True(t, inc.IsCompliant)
}

func TestInputValidation(t *testing.T) {
	_, err := Calculate(Input{BaseRadiusM: 10, Layers: nil, PkKPa: 100})
	assert.Error(t, err)

	_, err = Calculate(Input{BaseRadiusM: 0, Layers: singleLayerProfile(), PkKPa: 100})
	assert.Error(t, err)

	bad := singleLayerProfile()
	bad[0].ThicknessM = 0
	_, err = Calculate(Input{BaseRadiusM: 10, Layers: bad, PkKPa: 100})
	assert.Error(t, err)
}

func TestAllowableDefaults(t *testing.T) {
	res, err := Calculate(Input{
		BaseRadiusM:  10,
		BuriedDepthM: 4,
		Layers:       singleLayerProfile(),
		PkKPa:        130,
		PkmaxKPa:     130,
		PkminKPa:     130,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultAllowableSettlementMM, res.Settlement.AllowableSettlementMM)
	assert.Equal(t, DefaultAllowableInclination, res.Inclination.AllowableInclination)
}
