package strength

import (
	"Fundament/internal/foundation"
)

type Input struct {
	Geometry foundation.Geometry `json:"geometry"`
	Material foundation.Material `json:"material"`

	RebarDiameterMM  float64 `json:"rebar_diameter_mm"`
	ImportanceFactor float64 `json:"importance_factor"`

	// Net base reaction from the pressure run.
	NetPressureKPa float64 `json:"net_pressure_kpa"`

	// Compressed-zone height from the pressure coefficients; 2R or more
	// means full contact.
	CompressedHeightM float64 `json:"compressed_height_m"`
	AllowedDetachment float64 `json:"allowed_detachment"`
}

type Result struct {
	Shear      ShearCheck      `json:"shear"`
	Punching   PunchingCheck   `json:"punching"`
	Detachment DetachmentCheck `json:"detachment"`

	OverallCompliant bool `json:"overall_compliant"`
}

// Calculate runs the structural checks on the base slab: shear at the
// column face, punching around the column, and base detachment.
func Calculate(in Input) (Result, error) {
	if err := in.Geometry.Validate(); err != nil {
		return Result{}, err
	}
	rebar := in.RebarDiameterMM
	if rebar <= 0 {
		rebar = DefaultRebarDiameterMM
	}
	gamma0 := in.ImportanceFactor
	if gamma0 <= 0 {
		gamma0 = DefaultImportanceFactor
	}
	compressed := in.CompressedHeightM
	if compressed <= 0 {
		compressed = 2 * in.Geometry.BaseRadiusM
	}

	shear, err := checkShear(in.Geometry, in.Material, rebar, gamma0, in.NetPressureKPa)
	if err != nil {
		return Result{}, err
	}
	punching, err := checkPunching(in.Geometry, in.Material, rebar, gamma0, in.NetPressureKPa)
	if err != nil {
		return Result{}, err
	}
	detachment := checkDetachment(in.Geometry.BaseRadiusM, compressed, in.AllowedDetachment)

	return Result{
		Shear:            shear,
		Punching:         punching,
		Detachment:       detachment,
		OverallCompliant: shear.IsCompliant && punching.IsCompliant && detachment.IsCompliant,
	}, nil
}
