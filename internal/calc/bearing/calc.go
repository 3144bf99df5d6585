package bearing

import (
	"fmt"
)

// Width below which the code caps the width correction term.
const minCorrectionWidthM = 6.0

type Input struct {
	FakKPa     float64 `json:"fak_kpa"`
	EtaB       float64 `json:"eta_b"`
	EtaD       float64 `json:"eta_d"`
	ZetaA      float64 `json:"zeta_a"`
	GammaMKNM3 float64 `json:"gamma_m_knm3"`
	WidthM     float64 `json:"width_m"`
	DepthM     float64 `json:"depth_m"`

	PkNormalKPa      float64 `json:"pk_normal_kpa"`
	PkmaxNormalKPa   float64 `json:"pkmax_normal_kpa"`
	PkExtremeKPa     float64 `json:"pk_extreme_kpa"`
	PkmaxExtremeKPa  float64 `json:"pkmax_extreme_kpa"`
	PekSeismicKPa    float64 `json:"pek_seismic_kpa"`
	PekmaxSeismicKPa float64 `json:"pekmax_seismic_kpa"`
}

// CaseCheck is one load-case verdict against its capacity limit.
type CaseCheck struct {
	PkKPa       float64 `json:"pk_kpa"`
	PkmaxKPa    float64 `json:"pkmax_kpa"`
	LimitKPa    float64 `json:"limit_kpa"`
	MaxLimitKPa float64 `json:"max_limit_kpa"`
	IsCompliant bool    `json:"is_compliant"`
	Details     string  `json:"details"`
}

type Result struct {
	EffectiveWidthM float64 `json:"effective_width_m"`
	FaKPa           float64 `json:"fa_kpa"`
	FaeKPa          float64 `json:"fae_kpa"`

	Normal           CaseCheck `json:"normal"`
	Extreme          CaseCheck `json:"extreme"`
	Seismic          CaseCheck `json:"seismic"`
	OverallCompliant bool      `json:"overall_compliant"`
}

// Calculate runs the bearing capacity checks: the characteristic value fa
// with width and depth corrections, its seismic counterpart fae, and the
// per-case pressure verdicts.
func Calculate(in Input) (Result, error) {
	if in.FakKPa <= 0 {
		return Result{}, fmt.Errorf("bearing: characteristic value fak must be positive, got %.2f", in.FakKPa)
	}
	if in.WidthM <= 0 {
		return Result{}, fmt.Errorf("bearing: foundation width must be positive, got %.2f", in.WidthM)
	}
	if in.DepthM < 0 {
		return Result{}, fmt.Errorf("bearing: buried depth must be non-negative, got %.2f", in.DepthM)
	}

	b := in.WidthM
	if b <= minCorrectionWidthM {
		b = minCorrectionWidthM
	}
	fa := in.FakKPa + in.EtaB*in.GammaMKNM3*(b-3.0) + in.EtaD*in.GammaMKNM3*(in.DepthM-0.5)
	fae := in.ZetaA * fa

	res := Result{
		EffectiveWidthM: b,
		FaKPa:           fa,
		FaeKPa:          fae,
		Normal:          checkCase("normal", in.PkNormalKPa, in.PkmaxNormalKPa, fa),
		Extreme:         checkCase("extreme", in.PkExtremeKPa, in.PkmaxExtremeKPa, fa),
		Seismic:         checkCase("seismic", in.PekSeismicKPa, in.PekmaxSeismicKPa, fae),
	}
	res.OverallCompliant = res.Normal.IsCompliant && res.Extreme.IsCompliant && res.Seismic.IsCompliant
	return res, nil
}

func checkCase(name string, pk, pkmax, limit float64) CaseCheck {
	avgOK := pk <= limit
	maxOK := pkmax <= 1.2*limit
	return CaseCheck{
		PkKPa:       pk,
		PkmaxKPa:    pkmax,
		LimitKPa:    limit,
		MaxLimitKPa: 1.2 * limit,
		IsCompliant: avgOK && maxOK,
		Details: fmt.Sprintf("%s: pk=%.3fkPa vs %.3fkPa (%s); pkmax=%.3fkPa vs %.3fkPa (%s)",
			name, pk, limit, verdict(avgOK), pkmax, 1.2*limit, verdict(maxOK)),
	}
}

func verdict(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
