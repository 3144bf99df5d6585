package pressure

import (
	"math"

	"Fundament/internal/foundation"
)

// Load partial factors for the basic combinations.
const (
	deadLoadFavorable   = 1.0
	deadLoadUnfavorable = 1.3
	liveLoadFactor      = 1.5
)

// Combination selects which partial factors apply to the characteristic loads.
type Combination string

const (
	CombinationStandard         Combination = "standard"
	CombinationBasicUnfavorable Combination = "basic_unfavorable"
	CombinationBasicFavorable   Combination = "basic_favorable"
)

type Input struct {
	Geometry foundation.Geometry `json:"geometry"`
	Material foundation.Material `json:"material"`

	// Tower loads at the foundation top, characteristic values.
	FrKN  float64 `json:"fr_kn"`
	FzKN  float64 `json:"fz_kn"`
	MxKNM float64 `json:"mx_knm"`
	MyKNM float64 `json:"my_knm"`

	// Foundation effective weight including backfill and buoyancy.
	GkKN float64 `json:"gk_kn"`

	Combination Combination `json:"combination,omitempty"`
}

type Result struct {
	BaseHeightM        float64 `json:"base_height_m"`
	BaseAreaM2         float64 `json:"base_area_m2"`
	SectionModulusM3   float64 `json:"section_modulus_m3"`
	MrkKNM             float64 `json:"mrk_knm"`
	TotalDeadLoadKN    float64 `json:"total_dead_load_kn"`
	PkKPa              float64 `json:"pk_kpa"`
	PkmaxKPa           float64 `json:"pkmax_kpa"`
	PkminKPa           float64 `json:"pkmin_kpa"`
	NetPressureKPa     float64 `json:"net_pressure_kpa"`
	EccentricityM      float64 `json:"eccentricity_m"`
	EOverR             float64 `json:"e_over_r"`
	ZeroStressZone     bool    `json:"zero_stress_zone"`
	Tau                float64 `json:"tau,omitempty"`
	Xi                 float64 `json:"xi,omitempty"`
	CompressedHeightM  float64 `json:"compressed_height_m,omitempty"`
	EdgePressureKPa    float64 `json:"edge_pressure_kpa"`
	EccentricityWithin bool    `json:"eccentricity_within"`
}

// Calculate resolves the base bottom pressures for a circular gravity
// foundation under the combined tower loads.
func Calculate(in Input) (Result, error) {
	if err := in.Geometry.Validate(); err != nil {
		return Result{}, err
	}

	nFactor, mFactor := in.Combination.factors()

	g := in.Geometry
	baseHeight := g.HeightM(in.Material)

	mrk := math.Sqrt(in.MxKNM*in.MxKNM+in.MyKNM*in.MyKNM) + in.FrKN*baseHeight
	totalDead := in.GkKN + in.FzKN

	n := totalDead * nFactor
	mr := mrk * mFactor

	r := g.BaseRadiusM
	d := 2 * r
	area := math.Pi * r * r
	sectionModulus := math.Pi / 32 * d * d * d
	inertia := math.Pi / 64 * d * d * d * d

	res := Result{
		BaseHeightM:      baseHeight,
		BaseAreaM2:       area,
		SectionModulusM3: sectionModulus,
		MrkKNM:           mr,
		TotalDeadLoadKN:  n,
		PkKPa:            n / area,
		PkmaxKPa:         n/area + mr/sectionModulus,
		PkminKPa:         n/area - mr/sectionModulus,
		NetPressureKPa:   n/area + mr/inertia*(2*r+g.ColumnRadiusM)/3,
	}

	if n > 0 {
		res.EccentricityM = mr / n
	}
	res.EOverR = res.EccentricityM / r
	// e/R beyond 0.52 leaves the coefficient table; the design is unreasonable.
	res.EccentricityWithin = res.EOverR <= coeffRatioMax

	if res.EOverR > coeffRatioMin {
		// Part of the base lifts off; the compressed zone carries the load.
		res.ZeroStressZone = true
		res.Tau = interpolateCoeff(tauCoefficients, res.EOverR)
		res.Xi = interpolateCoeff(xiCoefficients, res.EOverR)
		res.CompressedHeightM = res.Tau * r
		res.EdgePressureKPa = n / (res.Xi * r * r)
	} else {
		res.EdgePressureKPa = res.PkmaxKPa
	}

	return res, nil
}

func (c Combination) factors() (deadFactor, momentFactor float64) {
	switch c {
	case CombinationBasicUnfavorable:
		return deadLoadUnfavorable, liveLoadFactor
	case CombinationBasicFavorable:
		return deadLoadFavorable, liveLoadFactor
	case CombinationStandard, "":
		return 1.0, 1.0
	default:
		return 1.0, 1.0
	}
}
