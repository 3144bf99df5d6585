package comprehensive

import (
	"fmt"

	"Fundament/internal/calc/bearing"
	"Fundament/internal/calc/pressure"
	"Fundament/internal/calc/selfweight"
	"Fundament/internal/calc/settlement"
	"Fundament/internal/foundation"
	"Fundament/internal/soil"
)

// CaseLoads carries one load case's characteristic tower loads.
type CaseLoads struct {
	FrKN  float64 `json:"fr_kn"`
	FzKN  float64 `json:"fz_kn"`
	MxKNM float64 `json:"mx_knm"`
	MyKNM float64 `json:"my_knm"`
}

type Input struct {
	Geometry foundation.Geometry `json:"geometry"`
	Material foundation.Material `json:"material"`

	Layers               []soil.Layer `json:"layers"`
	GroundwaterDepthM    *float64     `json:"groundwater_depth_m,omitempty"`
	CoverSoilDensityKNM3 float64      `json:"cover_soil_density_knm3"`

	Normal  CaseLoads `json:"normal"`
	Extreme CaseLoads `json:"extreme"`
	Seismic CaseLoads `json:"seismic"`

	AllowableSettlementMM float64 `json:"allowable_settlement_mm"`
	AllowableInclination  float64 `json:"allowable_inclination"`
}

// CaseResult bundles one load case's pressure and deformation runs.
type CaseResult struct {
	Name       string            `json:"name"`
	Pressure   pressure.Result   `json:"pressure"`
	Settlement settlement.Result `json:"settlement"`
	Compliant  bool              `json:"compliant"`
}

type Result struct {
	SelfWeight selfweight.Result `json:"self_weight"`
	Cases      []CaseResult      `json:"cases"`
	Bearing    bearing.Result    `json:"bearing"`

	OverallCompliance bool `json:"overall_compliance"`
}

// Calculate runs the full verification chain for the three load cases:
// self-weight once, then pressures, settlement and inclination per case,
// and the bearing capacity checks over the collected pressures.
func Calculate(in Input) (Result, error) {
	if len(in.Layers) == 0 {
		return Result{}, fmt.Errorf("comprehensive: soil profile must not be empty")
	}

	sw, err := selfweight.Calculate(selfweight.Input{
		Geometry:             in.Geometry,
		Material:             in.Material,
		CoverSoilDensityKNM3: in.CoverSoilDensityKNM3,
		GroundwaterDepthM:    in.GroundwaterDepthM,
		Layers:               in.Layers,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{SelfWeight: sw, OverallCompliance: true}

	cases := []struct {
		name  string
		loads CaseLoads
	}{
		{"normal", in.Normal},
		{"extreme", in.Extreme},
		{"seismic", in.Seismic},
	}

	pressures := make([]pressure.Result, 0, len(cases))
	for _, c := range cases {
		cr, err := runCase(in, c.name, c.loads, sw.TotalWeightKN)
		if err != nil {
			return Result{}, fmt.Errorf("comprehensive: %s case: %w", c.name, err)
		}
		pressures = append(pressures, cr.Pressure)
		res.Cases = append(res.Cases, cr)
		if !cr.Compliant {
			res.OverallCompliance = false
		}
	}

	layer, _ := soil.BearingLayer(in.Layers, in.Geometry.BuriedDepthM)
	gammaM := meanDensityAbove(in.Layers, in.Geometry.BuriedDepthM)
	bearingRes, err := bearing.Calculate(bearing.Input{
		FakKPa:     soil.FakAt(in.Layers, in.Geometry.BuriedDepthM),
		EtaB:       layer.EtaB,
		EtaD:       layer.EtaD,
		ZetaA:      layer.ZetaA,
		GammaMKNM3: gammaM,
		WidthM:     2 * in.Geometry.BaseRadiusM,
		DepthM:     in.Geometry.BuriedDepthM,

		PkNormalKPa:      pressures[0].PkKPa,
		PkmaxNormalKPa:   pressures[0].PkmaxKPa,
		PkExtremeKPa:     pressures[1].PkKPa,
		PkmaxExtremeKPa:  pressures[1].PkmaxKPa,
		PekSeismicKPa:    pressures[2].PkKPa,
		PekmaxSeismicKPa: pressures[2].PkmaxKPa,
	})
	if err != nil {
		return Result{}, fmt.Errorf("comprehensive: bearing: %w", err)
	}
	res.Bearing = bearingRes
	if !bearingRes.OverallCompliant {
		res.OverallCompliance = false
	}
	return res, nil
}

func runCase(in Input, name string, loads CaseLoads, gkKN float64) (CaseResult, error) {
	pres, err := pressure.Calculate(pressure.Input{
		Geometry: in.Geometry,
		Material: in.Material,
		FrKN:     loads.FrKN,
		FzKN:     loads.FzKN,
		MxKNM:    loads.MxKNM,
		MyKNM:    loads.MyKNM,
		GkKN:     gkKN,
	})
	if err != nil {
		return CaseResult{}, err
	}

	settle, err := settlement.Calculate(settlement.Input{
		BaseRadiusM:           in.Geometry.BaseRadiusM,
		BuriedDepthM:          in.Geometry.BuriedDepthM,
		Layers:                in.Layers,
		PkKPa:                 pres.PkKPa,
		PkmaxKPa:              pres.PkmaxKPa,
		PkminKPa:              pres.PkminKPa,
		GroundwaterDepthM:     in.GroundwaterDepthM,
		AllowableSettlementMM: in.AllowableSettlementMM,
		AllowableInclination:  in.AllowableInclination,
	})
	if err != nil {
		return CaseResult{}, err
	}

	return CaseResult{
		Name:       name,
		Pressure:   pres,
		Settlement: settle,
		Compliant:  settle.Settlement.IsCompliant && settle.Inclination.IsCompliant,
	}, nil
}

// meanDensityAbove is the thickness-weighted unit weight of the soil beside
// the foundation, used for the fa depth and width corrections.
func meanDensityAbove(layers []soil.Layer, depthM float64) float64 {
	if depthM <= 0 {
		return 0
	}
	return soil.OverburdenStress(layers, depthM, nil) / depthM
}
