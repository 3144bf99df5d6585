package stiffness

import (
	"fmt"

	"Fundament/internal/soil"
)

const (
	DefaultPoissonRatio = 0.25

	// Dynamic modulus is taken as ten times the static compression
	// modulus, converted from MPa to Pa.
	dynamicModulusFactor = 10.0
	mPaToPa              = 1e6
)

type Input struct {
	BaseRadiusM  float64      `json:"base_radius_m"`
	BuriedDepthM float64      `json:"buried_depth_m"`
	Layers       []soil.Layer `json:"layers"`

	RequiredRotationalNmRad float64 `json:"required_rotational_nm_rad"`
	RequiredHorizontalNM    float64 `json:"required_horizontal_n_m"`
}

type Result struct {
	BearingLayerName string  `json:"bearing_layer_name"`
	PoissonRatio     float64 `json:"poisson_ratio"`
	EsDynPa          float64 `json:"es_dyn_pa"`

	RotationalNmRad         float64 `json:"rotational_nm_rad"`
	HorizontalNM            float64 `json:"horizontal_n_m"`
	RequiredRotationalNmRad float64 `json:"required_rotational_nm_rad"`
	RequiredHorizontalNM    float64 `json:"required_horizontal_n_m"`
	RotationalCompliant     bool    `json:"rotational_compliant"`
	HorizontalCompliant     bool    `json:"horizontal_compliant"`
	OverallCompliant        bool    `json:"overall_compliant"`
}

// Calculate resolves the dynamic rotational and horizontal foundation
// stiffness from the bearing layer under the base.
func Calculate(in Input) (Result, error) {
	if in.BaseRadiusM <= 0 {
		return Result{}, fmt.Errorf("stiffness: base radius must be positive, got %.2f", in.BaseRadiusM)
	}
	if len(in.Layers) == 0 {
		return Result{}, fmt.Errorf("stiffness: soil profile must not be empty")
	}

	layer, ok := soil.BearingLayer(in.Layers, in.BuriedDepthM)
	if !ok {
		return Result{}, fmt.Errorf("stiffness: no soil layer found at depth %.2fm", in.BuriedDepthM)
	}
	nu := layer.PoissonRatio
	if nu <= 0 || nu >= 0.5 {
		nu = DefaultPoissonRatio
	}
	modulus := layer.CompressionModulusMPa
	if modulus <= 0 {
		modulus = soil.DefaultModulusMPa
	}
	esDyn := modulus * dynamicModulusFactor * mPaToPa

	r := in.BaseRadiusM
	rotational := 4 * (1 - 2*nu) / (3 * (1 - nu) * (1 - nu)) * r * r * r * esDyn
	horizontal := 2 * (1 - 2*nu) / ((1 - nu) * (1 - nu)) * r * esDyn

	res := Result{
		BearingLayerName:        layer.LayerName,
		PoissonRatio:            nu,
		EsDynPa:                 esDyn,
		RotationalNmRad:         rotational,
		HorizontalNM:            horizontal,
		RequiredRotationalNmRad: in.RequiredRotationalNmRad,
		RequiredHorizontalNM:    in.RequiredHorizontalNM,
		RotationalCompliant:     rotational >= in.RequiredRotationalNmRad,
		HorizontalCompliant:     horizontal >= in.RequiredHorizontalNM,
	}
	res.OverallCompliant = res.RotationalCompliant && res.HorizontalCompliant
	return res, nil
}
