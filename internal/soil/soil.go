package soil

import (
	"log"
	"math"
	"sort"
)

// Layer describes one stratum of the site profile. ElevationM is the top
// elevation of the layer (usually negative, below ground); its magnitude is
// the depth of the layer top.
type Layer struct {
	LayerName             string  `json:"layer_name"`
	SoilType              string  `json:"soil_type"`
	ElevationM            float64 `json:"elevation_m"`
	ThicknessM            float64 `json:"thickness_m"`
	DensityKNM3           float64 `json:"density_kn_m3"`
	CompressionModulusMPa float64 `json:"compression_modulus_mpa"`
	FakKPa                float64 `json:"fak_kpa"`
	CohesionKPa           float64 `json:"cohesion_kpa"`
	FrictionAngleDeg      float64 `json:"friction_angle_deg"`
	FrictionCoefficient   float64 `json:"friction_coefficient"`
	EtaB                  float64 `json:"eta_b"`
	EtaD                  float64 `json:"eta_d"`
	ZetaA                 float64 `json:"zeta_a"`
	PoissonRatio          float64 `json:"poisson_ratio"`
}

// Fallbacks used when the profile has gaps. Data-gap conditions are
// recovered locally and logged; they never abort a calculation.
const (
	DefaultModulusMPa = 12.5
	DefaultFakKPa     = 150.0
	waterDensityKNM3  = 10.0
)

func (l Layer) TopDepthM() float64 { return math.Abs(l.ElevationM) }

func (l Layer) BottomDepthM() float64 { return l.TopDepthM() + l.ThicknessM }

// LayerAt returns the layer whose depth range contains depthM.
func LayerAt(layers []Layer, depthM float64) (Layer, bool) {
	for _, l := range layers {
		if l.TopDepthM() <= depthM && depthM <= l.BottomDepthM() {
			return l, true
		}
	}
	return Layer{}, false
}

// ClosestLayer returns the layer nearest to depthM by interval distance.
func ClosestLayer(layers []Layer, depthM float64) (Layer, bool) {
	if len(layers) == 0 {
		return Layer{}, false
	}
	best := layers[0]
	bestDist := math.Inf(1)
	for _, l := range layers {
		var dist float64
		switch {
		case depthM < l.TopDepthM():
			dist = l.TopDepthM() - depthM
		case depthM > l.BottomDepthM():
			dist = depthM - l.BottomDepthM()
		default:
			dist = 0
		}
		if dist < bestDist {
			bestDist = dist
			best = l
		}
	}
	return best, true
}

// ModulusAt returns the compression modulus of the layer containing depthM,
// falling back to the nearest layer and then to DefaultModulusMPa.
func ModulusAt(layers []Layer, depthM float64) float64 {
	if len(layers) == 0 {
		log.Printf("warning: empty soil profile, using default modulus %.1fMPa", DefaultModulusMPa)
		return DefaultModulusMPa
	}
	if l, ok := LayerAt(layers, depthM); ok {
		return l.CompressionModulusMPa
	}
	l, _ := ClosestLayer(layers, depthM)
	log.Printf("warning: no soil layer at depth %.1fm, using closest layer %q", depthM, l.LayerName)
	return l.CompressionModulusMPa
}

// BearingLayer returns the layer the foundation base sits in, with the
// nearest-layer fallback.
func BearingLayer(layers []Layer, buriedDepthM float64) (Layer, bool) {
	if l, ok := LayerAt(layers, buriedDepthM); ok {
		return l, true
	}
	l, ok := ClosestLayer(layers, buriedDepthM)
	if ok {
		log.Printf("warning: no soil layer at buried depth %.1fm, using closest layer %q", buriedDepthM, l.LayerName)
	}
	return l, ok
}

// FakAt returns the bearing-capacity characteristic value at the foundation
// base, defaulting when the profile is empty.
func FakAt(layers []Layer, buriedDepthM float64) float64 {
	l, ok := BearingLayer(layers, buriedDepthM)
	if !ok {
		log.Printf("warning: empty soil profile, using default fak %.0fkPa", DefaultFakKPa)
		return DefaultFakKPa
	}
	return l.FakKPa
}

// OverburdenStress computes the self-weight stress Ps (kPa) of the soil
// above the foundation base. Layers are walked top-down over their overlap
// with [0, buriedDepth]; any overlap at or below the groundwater table uses
// the buoyant unit weight (density minus 10).
func OverburdenStress(layers []Layer, buriedDepthM float64, groundwaterDepthM *float64) float64 {
	if len(layers) == 0 {
		log.Printf("warning: empty soil profile, Ps set to 0")
		return 0
	}

	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TopDepthM() < sorted[j].TopDepthM()
	})

	total := 0.0
	current := 0.0
	for _, l := range sorted {
		top := l.TopDepthM()
		bottom := l.BottomDepthM()
		if top >= buriedDepthM || bottom <= current {
			continue
		}
		start := math.Max(top, current)
		end := math.Min(bottom, buriedDepthM)
		if end > start {
			density := l.DensityKNM3
			if groundwaterDepthM != nil && start >= *groundwaterDepthM {
				density -= waterDensityKNM3
			}
			total += density * (end - start)
		}
		current = end
		if current >= buriedDepthM {
			break
		}
	}
	return total
}
