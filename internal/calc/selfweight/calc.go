package selfweight

import (
	"log"
	"math"
	"sort"

	"Fundament/internal/foundation"
	"Fundament/internal/soil"
)

const (
	DefaultCoverSoilDensityKNM3 = 18.0

	// Working clearance around the base slab and the cushion overhang,
	// both fixed by the excavation drawings.
	excavationClearanceM = 0.5
	cushionOverhangM     = 0.1

	waterDensityKNM3 = 10.0
)

type Input struct {
	Geometry foundation.Geometry `json:"geometry"`
	Material foundation.Material `json:"material"`

	CoverSoilDensityKNM3 float64      `json:"cover_soil_density_knm3"`
	GroundwaterDepthM    *float64     `json:"groundwater_depth_m,omitempty"`
	Layers               []soil.Layer `json:"layers,omitempty"`
}

type Result struct {
	ConcreteVolumeM3     float64 `json:"concrete_volume_m3"`
	ExcavationVolumeM3   float64 `json:"excavation_volume_m3"`
	BaseCylinderVolumeM3 float64 `json:"base_cylinder_volume_m3"`
	CoverSoilVolumeM3    float64 `json:"cover_soil_volume_m3"`

	ConcreteWeightKN float64 `json:"concrete_weight_kn"`
	BackfillWeightKN float64 `json:"backfill_weight_kn"`
	BuoyancyKN       float64 `json:"buoyancy_kn"`
	TotalWeightKN    float64 `json:"total_weight_kn"`
}

// Calculate resolves the effective foundation weight Gk: concrete plus
// backfill soil minus buoyancy below the groundwater table.
func Calculate(in Input) (Result, error) {
	if err := in.Geometry.Validate(); err != nil {
		return Result{}, err
	}
	coverDensity := in.CoverSoilDensityKNM3
	if coverDensity <= 0 {
		coverDensity = DefaultCoverSoilDensityKNM3
	}

	g := in.Geometry
	cushion := in.Material.CushionThicknessM()

	concrete := concreteVolume(g, cushion)
	excavation := excavationVolume(g, cushion)
	cylinder := math.Pi * g.BaseRadiusM * g.BaseRadiusM * (cushion + g.BuriedDepthM)
	// Backfill minus the over-dig ring collapses to cylinder minus concrete.
	cover := math.Max(0, cylinder-concrete)

	res := Result{
		ConcreteVolumeM3:     concrete,
		ExcavationVolumeM3:   excavation,
		BaseCylinderVolumeM3: cylinder,
		CoverSoilVolumeM3:    cover,
		ConcreteWeightKN:     concrete * in.Material.DensityKNM3,
		BackfillWeightKN:     cover * coverDensity,
	}
	res.BuoyancyKN = buoyancy(g, in.GroundwaterDepthM, in.Layers)
	res.TotalWeightKN = res.ConcreteWeightKN + res.BackfillWeightKN - res.BuoyancyKN
	return res, nil
}

func concreteVolume(g foundation.Geometry, cushionM float64) float64 {
	r1 := g.BaseRadiusM
	r2 := g.ColumnRadiusM

	edge := math.Pi * r1 * r1 * g.EdgeHeightM
	frustum := math.Pi / 3 * g.FrustumHeightM * (r1*r1 + r1*r2 + r2*r2)
	column := math.Pi * r2 * r2 * (g.ColumnHeightM - g.GroundHeightM)
	cushionV := math.Pi * (r1 + cushionOverhangM) * (r1 + cushionOverhangM) * cushionM

	return math.Max(0, edge+frustum+column+cushionV)
}

// excavationVolume is the pit frustum with 1:1 side slopes and the standard
// working clearance around the slab.
func excavationVolume(g foundation.Geometry, cushionM float64) float64 {
	depth := cushionM + g.BuriedDepthM
	rBottom := g.BaseRadiusM + excavationClearanceM
	rTop := rBottom + depth
	return math.Pi / 3 * depth * (rBottom*rBottom + rTop*rTop + rBottom*rTop)
}

func buoyancy(g foundation.Geometry, groundwaterDepthM *float64, layers []soil.Layer) float64 {
	if groundwaterDepthM == nil {
		return 0
	}
	submerged := g.BuriedDepthM - *groundwaterDepthM
	if submerged <= 0 {
		return 0
	}
	volume := math.Pi * g.BaseRadiusM * g.BaseRadiusM * submerged
	return volume * submergedEffectiveDensity(*groundwaterDepthM, g.BuriedDepthM, layers)
}

// submergedEffectiveDensity is the thickness-weighted mean of (density - 10)
// over the soil layers crossed between the water table and the base bottom.
func submergedEffectiveDensity(fromM, toM float64, layers []soil.Layer) float64 {
	if len(layers) == 0 {
		log.Printf("selfweight: no soil profile for buoyancy, using water density %.1f kN/m3", waterDensityKNM3)
		return waterDensityKNM3
	}

	sorted := make([]soil.Layer, len(layers))
	copy(sorted, layers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TopDepthM() < sorted[j].TopDepthM() })

	var weighted, thickness float64
	for _, l := range sorted {
		start := math.Max(l.TopDepthM(), fromM)
		end := math.Min(l.BottomDepthM(), toM)
		if end <= start {
			continue
		}
		weighted += math.Max(0, l.DensityKNM3-waterDensityKNM3) * (end - start)
		thickness += end - start
	}
	if thickness <= 0 {
		log.Printf("selfweight: no soil layer between %.2fm and %.2fm, using water density", fromM, toM)
		return waterDensityKNM3
	}
	return weighted / thickness
}
