package strength

import "math"

// Allowed detached-area ratios per load case.
const (
	AllowedDetachmentNormal  = 0.0
	AllowedDetachmentExtreme = 0.25
)

// DetachmentCheck reports how much of the base lifts off under an eccentric
// resultant.
type DetachmentCheck struct {
	CompressedHeightM float64 `json:"compressed_height_m"`
	CompressedAreaM2  float64 `json:"compressed_area_m2"`
	DetachedAreaM2    float64 `json:"detached_area_m2"`
	DetachmentRatio   float64 `json:"detachment_ratio"`
	AllowedRatio      float64 `json:"allowed_ratio"`
	IsCompliant       bool    `json:"is_compliant"`
}

// checkDetachment takes the compressed-zone height from the pressure
// coefficients; a height of 2R or more keeps the whole base in contact.
func checkDetachment(baseRadiusM, compressedHeightM, allowedRatio float64) DetachmentCheck {
	total := math.Pi * baseRadiusM * baseRadiusM
	compressed := segmentArea(baseRadiusM, compressedHeightM)
	detached := math.Max(0, total-compressed)

	ratio := 0.0
	if total > 0 {
		ratio = detached / total
	}
	return DetachmentCheck{
		CompressedHeightM: compressedHeightM,
		CompressedAreaM2:  compressed,
		DetachedAreaM2:    detached,
		DetachmentRatio:   ratio,
		AllowedRatio:      allowedRatio,
		IsCompliant:       ratio <= allowedRatio,
	}
}

// segmentArea is the circular-segment area cut off at height h from the
// compressed edge.
func segmentArea(r, h float64) float64 {
	if h <= 0 {
		return 0
	}
	if h >= 2*r {
		return math.Pi * r * r
	}
	cosTerm := (r - h) / r
	cosTerm = math.Max(-1, math.Min(1, cosTerm))
	disc := 2*r*h - h*h
	if disc < 0 {
		disc = 0
	}
	return r*r*math.Acos(cosTerm) - (r-h)*math.Sqrt(disc)
}
