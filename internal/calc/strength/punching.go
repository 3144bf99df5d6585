package strength

import (
	"fmt"
	"math"

	"Fundament/internal/foundation"
)

// PunchingCheck is the punching-cone verification around the column.
type PunchingCheck struct {
	EffectiveHeightMM  float64 `json:"effective_height_mm"`
	HeightFactor       float64 `json:"height_factor"`
	TopPerimeterM      float64 `json:"top_perimeter_m"`
	BottomPerimeterM   float64 `json:"bottom_perimeter_m"`
	CapacityKN         float64 `json:"capacity_kn"`
	PunchingAreaM2     float64 `json:"punching_area_m2"`
	PunchingForceKN    float64 `json:"punching_force_kn"`
	FactoredKN         float64 `json:"factored_kn"`
	IsCompliant        bool    `json:"is_compliant"`
	ConeInsideBaseSlab bool    `json:"cone_inside_base_slab"`
}

func checkPunching(g foundation.Geometry, m foundation.Material, rebarMM, gamma0, pjKPa float64) (PunchingCheck, error) {
	h0 := effectiveHeightMM(g, m, rebarMM)
	if h0 <= 0 {
		return PunchingCheck{}, fmt.Errorf("%w: effective section height %.0fmm is not positive", foundation.ErrInvalidGeometry, h0)
	}
	h0m := h0 / 1000

	betaHP := punchingHeightFactor(h0)
	coneBottomR := g.ColumnRadiusM + h0m
	bt := 2 * math.Pi * g.ColumnRadiusM
	bb := 2 * math.Pi * coneBottomR

	ftKPa := m.FtMPa * 1000
	capacity := 0.35 * betaHP * ftKPa * (bt + bb) * h0m

	// Net reaction outside the cone bottom drives the punching force. A
	// cone reaching past the slab edge cannot punch through.
	area := 0.0
	inside := coneBottomR < g.BaseRadiusM
	if inside {
		area = math.Pi * (g.BaseRadiusM*g.BaseRadiusM - coneBottomR*coneBottomR)
	}
	force := pjKPa * area
	factored := gamma0 * force

	return PunchingCheck{
		EffectiveHeightMM:  h0,
		HeightFactor:       betaHP,
		TopPerimeterM:      bt,
		BottomPerimeterM:   bb,
		CapacityKN:         capacity,
		PunchingAreaM2:     area,
		PunchingForceKN:    force,
		FactoredKN:         factored,
		IsCompliant:        factored <= capacity,
		ConeInsideBaseSlab: inside,
	}, nil
}

// punchingHeightFactor interpolates 1.0 at h0 = 800mm down to 0.9 at 2000mm.
func punchingHeightFactor(h0mm float64) float64 {
	switch {
	case h0mm <= 800:
		return 1.0
	case h0mm >= 2000:
		return 0.9
	default:
		return 1.0 - (h0mm-800)/(2000-800)*0.1
	}
}
