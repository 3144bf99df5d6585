package foundation

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry marks geometric inconsistencies that would otherwise
// surface as NaN deep inside a calculation (acos/sqrt domain violations).
var ErrInvalidGeometry = errors.New("invalid design geometry")

// Geometry describes the gravity foundation: a circular base slab with a
// frustum transition to the pedestal column.
type Geometry struct {
	BaseRadiusM    float64 `json:"base_radius_m"`
	ColumnRadiusM  float64 `json:"column_radius_m"`
	BuriedDepthM   float64 `json:"buried_depth_m"`
	EdgeHeightM    float64 `json:"edge_height_m"`
	FrustumHeightM float64 `json:"frustum_height_m"`
	ColumnHeightM  float64 `json:"column_height_m"`
	GroundHeightM  float64 `json:"ground_height_m"`
}

// Material holds the concrete design values used by the strength and
// self-weight checks.
type Material struct {
	ConcreteGrade      string  `json:"concrete_grade"`
	FcMPa              float64 `json:"fc_mpa"`
	FtMPa              float64 `json:"ft_mpa"`
	FckMPa             float64 `json:"fck_mpa"`
	FtkMPa             float64 `json:"ftk_mpa"`
	EcMPa              float64 `json:"ec_mpa"`
	DensityKNM3        float64 `json:"density_kn_m3"`
	TopCoverMM         float64 `json:"top_cover_mm"`
	BottomCoverMM      float64 `json:"bottom_cover_mm"`
	CushionThicknessMM float64 `json:"cushion_thickness_mm"`
}

// DefaultMaterial returns C40 concrete design values.
func DefaultMaterial() Material {
	return Material{
		ConcreteGrade:      "C40",
		FcMPa:              19.1,
		FtMPa:              1.71,
		FckMPa:             26.8,
		FtkMPa:             2.39,
		EcMPa:              32500,
		DensityKNM3:        25.0,
		TopCoverMM:         50.0,
		BottomCoverMM:      60.0,
		CushionThicknessMM: 100.0,
	}
}

func (m Material) CushionThicknessM() float64 { return m.CushionThicknessMM / 1000 }

// HeightM is the full foundation height from cushion bottom to column top.
func (g Geometry) HeightM(m Material) float64 {
	return g.EdgeHeightM + g.FrustumHeightM + g.ColumnHeightM + m.CushionThicknessM()
}

// Validate rejects input-shape errors before they reach the engines.
func (g Geometry) Validate() error {
	if g.BaseRadiusM <= 0 {
		return fmt.Errorf("%w: base radius must be positive", ErrInvalidGeometry)
	}
	if g.ColumnRadiusM <= 0 {
		return fmt.Errorf("%w: column radius must be positive", ErrInvalidGeometry)
	}
	if g.ColumnRadiusM >= g.BaseRadiusM {
		return fmt.Errorf("%w: column radius %.2fm must be smaller than base radius %.2fm",
			ErrInvalidGeometry, g.ColumnRadiusM, g.BaseRadiusM)
	}
	if g.BuriedDepthM < 0 {
		return fmt.Errorf("%w: buried depth must be non-negative", ErrInvalidGeometry)
	}
	if g.EdgeHeightM <= 0 || g.FrustumHeightM <= 0 {
		return fmt.Errorf("%w: edge and frustum heights must be positive", ErrInvalidGeometry)
	}
	return nil
}

type SlopeResult struct {
	HorizontalToVertical float64 `json:"horizontal_to_vertical"`
	SlopeDescription     string  `json:"slope_description"`
	IsCompliant          bool    `json:"is_compliant"`
}

// SlopeCheck verifies the frustum slope against the 1:4 code limit.
func (g Geometry) SlopeCheck() SlopeResult {
	horizontal := g.BaseRadiusM - g.ColumnRadiusM
	if horizontal <= 0 || g.FrustumHeightM <= 0 {
		return SlopeResult{SlopeDescription: "invalid geometry"}
	}
	ratio := horizontal / g.FrustumHeightM
	return SlopeResult{
		HorizontalToVertical: ratio,
		SlopeDescription:     fmt.Sprintf("1:%.3f", ratio),
		IsCompliant:          ratio >= 0.25,
	}
}
