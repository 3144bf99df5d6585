package strength

import (
	"fmt"
	"math"

	"Fundament/internal/foundation"
)

const (
	DefaultRebarDiameterMM  = 20.0
	DefaultImportanceFactor = 1.1

	maxEffectiveHeightMM = 2000.0
)

// effectiveHeightMM is the working section depth at the column face:
// slab height minus the bottom cover and half a rebar.
func effectiveHeightMM(g foundation.Geometry, m foundation.Material, rebarMM float64) float64 {
	return (g.EdgeHeightM+g.FrustumHeightM)*1000 - m.BottomCoverMM - rebarMM/2
}

// ShearCheck is the slab shear verification at the column face.
type ShearCheck struct {
	EffectiveHeightMM float64 `json:"effective_height_mm"`
	ShearWidthM       float64 `json:"shear_width_m"`
	HeightFactor      float64 `json:"height_factor"`
	CapacityKN        float64 `json:"capacity_kn"`

	S1M2         float64 `json:"s1_m2"`
	S2M2         float64 `json:"s2_m2"`
	ShearForceKN float64 `json:"shear_force_kn"`
	FactoredKN   float64 `json:"factored_kn"`
	IsCompliant  bool    `json:"is_compliant"`
}

func checkShear(g foundation.Geometry, m foundation.Material, rebarMM, gamma0, pjKPa float64) (ShearCheck, error) {
	h0 := effectiveHeightMM(g, m, rebarMM)
	if h0 <= 0 {
		return ShearCheck{}, fmt.Errorf("%w: effective section height %.0fmm is not positive", foundation.ErrInvalidGeometry, h0)
	}
	h0m := h0 / 1000

	rSq := g.BaseRadiusM*g.BaseRadiusM - g.ColumnRadiusM*g.ColumnRadiusM
	if rSq <= 0 {
		return ShearCheck{}, fmt.Errorf("%w: column radius %.2fm must be smaller than base radius %.2fm",
			foundation.ErrInvalidGeometry, g.ColumnRadiusM, g.BaseRadiusM)
	}
	width := (1 - g.FrustumHeightM/(2*h0m)) * 2 * math.Sqrt(rSq)
	if width <= 0 {
		return ShearCheck{}, fmt.Errorf("%w: shear width collapsed, frustum too tall for section depth", foundation.ErrInvalidGeometry)
	}

	h0Capped := math.Min(h0, maxEffectiveHeightMM)
	betaH := math.Pow(g.EdgeHeightM*1000/h0Capped, 0.25)

	ftKPa := m.FtMPa * 1000
	capacity := 0.7 * betaH * ftKPa * width * h0m

	// Shear acts on the slab sector outside the column.
	angle := math.Acos(g.ColumnRadiusM / g.BaseRadiusM)
	s1 := angle * g.BaseRadiusM * g.BaseRadiusM
	s2 := g.ColumnRadiusM * g.ColumnRadiusM * math.Tan(angle)

	force := math.Abs(pjKPa * (s1 - s2))
	factored := gamma0 * force

	return ShearCheck{
		EffectiveHeightMM: h0,
		ShearWidthM:       width,
		HeightFactor:      betaH,
		CapacityKN:        capacity,
		S1M2:              s1,
		S2M2:              s2,
		ShearForceKN:      force,
		FactoredKN:        factored,
		IsCompliant:       factored <= capacity,
	}, nil
}
