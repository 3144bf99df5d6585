package settlement

import (
	"fmt"
	"log"
	"math"

	"Fundament/internal/soil"
)

// Layered-summation discretization prescribed by the design code: the first
// sub-layer bottom sits 0.8m below the foundation base, every further
// sub-layer is 1.0m thick, and the loop stops once the incremental
// settlement drops to 2.5% of the running total.
const (
	firstOffsetM     = 0.8
	layerThicknessM  = 1.0
	convergenceRatio = 0.025

	settlementMaxLayers  = 50
	inclinationMaxLayers = 100

	fallbackEsMPa = 20.0

	DefaultAllowableSettlementMM = 100.0
	DefaultAllowableInclination  = 0.003
)

type Input struct {
	BaseRadiusM           float64      `json:"base_radius_m"`
	BuriedDepthM          float64      `json:"buried_depth_m"`
	Layers                []soil.Layer `json:"layers"`
	PkKPa                 float64      `json:"pk_kpa"`
	PkmaxKPa              float64      `json:"pkmax_kpa"`
	PkminKPa              float64      `json:"pkmin_kpa"`
	GroundwaterDepthM     *float64     `json:"groundwater_depth_m,omitempty"`
	AllowableSettlementMM float64      `json:"allowable_settlement_mm"`
	AllowableInclination  float64      `json:"allowable_inclination"`
}

// LayerDetail is a frozen snapshot of one loop iteration.
type LayerDetail struct {
	Layer           int     `json:"layer"`
	ZiM             float64 `json:"zi_m"`
	AbsoluteDepthM  float64 `json:"absolute_depth_m"`
	EsiMPa          float64 `json:"esi_mpa"`
	AlphaI          float64 `json:"alpha_i"`
	DeltaTerm       float64 `json:"delta_term"`
	CurrentEsMPa    float64 `json:"current_es_mpa"`
	CurrentPsiS     float64 `json:"current_psi_s"`
	DeltaSMM        float64 `json:"delta_s_mm"`
	CumulativeSMM   float64 `json:"cumulative_s_mm"`
	SettlementRatio float64 `json:"settlement_ratio"`
}

type SettlementReport struct {
	LayerThicknessM       float64       `json:"layer_thickness_m"`
	LayerCount            int           `json:"layer_count"`
	PsKPa                 float64       `json:"ps_kpa"`
	P0kKPa                float64       `json:"p0k_kpa"`
	FakKPa                float64       `json:"fak_kpa"`
	PerLayer              []LayerDetail `json:"per_layer"`
	EquivalentEsMPa       float64       `json:"equivalent_es_mpa"`
	PsiS                  float64       `json:"psi_s"`
	RawSettlementMM       float64       `json:"raw_settlement_mm"`
	FinalSettlementMM     float64       `json:"final_settlement_mm"`
	AllowableSettlementMM float64       `json:"allowable_settlement_mm"`
	Converged             bool          `json:"converged"`
	IsCompliant           bool          `json:"is_compliant"`
}

type InclinationReport struct {
	LayerThicknessM      float64 `json:"layer_thickness_m"`
	LayerCount           int     `json:"layer_count"`
	P0kmaxKPa            float64 `json:"p0kmax_kpa"`
	P0kminKPa            float64 `json:"p0kmin_kpa"`
	FakKPa               float64 `json:"fak_kpa"`
	S1MM                 float64 `json:"s1_mm"`
	S2MM                 float64 `json:"s2_mm"`
	Inclination          float64 `json:"inclination"`
	AllowableInclination float64 `json:"allowable_inclination"`
	Converged            bool    `json:"converged"`
	IsCompliant          bool    `json:"is_compliant"`
}

type Result struct {
	Settlement  SettlementReport  `json:"settlement"`
	Inclination InclinationReport `json:"inclination"`
}

// Calculate runs the settlement and inclination verification for one load
// case. Input-shape errors are rejected here; data gaps inside the loop fall
// back locally and never abort the run.
func Calculate(in Input) (Result, error) {
	if in.BaseRadiusM <= 0 {
		return Result{}, fmt.Errorf("base radius must be positive")
	}
	if in.BuriedDepthM < 0 {
		return Result{}, fmt.Errorf("buried depth must be non-negative")
	}
	if len(in.Layers) == 0 {
		return Result{}, fmt.Errorf("empty soil profile")
	}
	for _, l := range in.Layers {
		if l.ThicknessM <= 0 {
			return Result{}, fmt.Errorf("soil layer %q has non-positive thickness", l.LayerName)
		}
	}
	if in.AllowableSettlementMM <= 0 {
		in.AllowableSettlementMM = DefaultAllowableSettlementMM
	}
	if in.AllowableInclination <= 0 {
		in.AllowableInclination = DefaultAllowableInclination
	}

	e := engine{
		layers:       in.Layers,
		baseRadiusM:  in.BaseRadiusM,
		buriedDepthM: in.BuriedDepthM,
		fakKPa:       soil.FakAt(in.Layers, in.BuriedDepthM),
	}

	ps := soil.OverburdenStress(in.Layers, in.BuriedDepthM, in.GroundwaterDepthM)
	p0k := in.PkKPa - ps

	main := e.run(p0k, uniformAlpha, settlementMaxLayers)
	settlementReport := SettlementReport{
		LayerThicknessM:       layerThicknessM,
		LayerCount:            len(main.details),
		PsKPa:                 ps,
		P0kKPa:                p0k,
		FakKPa:                e.fakKPa,
		PerLayer:              main.details,
		EquivalentEsMPa:       main.finalEsMPa,
		PsiS:                  main.psiS,
		RawSettlementMM:       main.rawMM,
		FinalSettlementMM:     main.finalMM,
		AllowableSettlementMM: in.AllowableSettlementMM,
		Converged:             main.converged,
	}
	settlementReport.IsCompliant = settlementReport.FinalSettlementMM <= in.AllowableSettlementMM

	// Inclination: decompose the trapezoidal contact pressure into a uniform
	// block (P0kmin) and a triangular block (P0kmax - P0kmin), then rerun the
	// same loop once per stress-coefficient variant.
	p0kmax := in.PkmaxKPa - ps
	p0kmin := in.PkminKPa - ps
	triangular := p0kmax - p0kmin
	rectangular := p0kmin

	tri2 := e.run(triangular, triangularPoint2, inclinationMaxLayers)
	tri1 := e.run(triangular, triangularPoint1, inclinationMaxLayers)
	uni := e.run(rectangular, uniformAlpha, inclinationMaxLayers)

	s1 := tri1.finalMM + uni.finalMM
	s2 := tri2.finalMM + uni.finalMM
	inclination := math.Abs(s2-s1) / (2 * in.BaseRadiusM * 1000)

	inclinationReport := InclinationReport{
		LayerThicknessM:      layerThicknessM,
		LayerCount:           len(main.details),
		P0kmaxKPa:            p0kmax,
		P0kminKPa:            p0kmin,
		FakKPa:               e.fakKPa,
		S1MM:                 s1,
		S2MM:                 s2,
		Inclination:          inclination,
		AllowableInclination: in.AllowableInclination,
		Converged:            tri2.converged && tri1.converged && uni.converged,
	}
	inclinationReport.IsCompliant = inclination <= in.AllowableInclination

	return Result{Settlement: settlementReport, Inclination: inclinationReport}, nil
}

type engine struct {
	layers       []soil.Layer
	baseRadiusM  float64
	buriedDepthM float64
	fakKPa       float64
}

type runResult struct {
	details    []LayerDetail
	finalEsMPa float64
	psiS       float64
	rawMM      float64
	finalMM    float64
	converged  bool
}

// run is the fused settlement / equivalent-modulus loop. The correction
// coefficient for each sub-layer is taken from the modulus accumulated up to
// that depth, not from a precomputed global value, because the loop may
// terminate early on convergence.
func (e engine) run(stressKPa float64, tbl coeffTable, maxLayers int) runResult {
	var (
		details     []LayerDetail
		numerator   float64
		denominator float64
		cumulative  float64
		currentEs   = fallbackEsMPa
		currentPsi  = psiS(fallbackEsMPa, stressKPa, e.fakKPa)
		converged   bool
	)

	for i := 0; i < maxLayers; i++ {
		zi := firstOffsetM + float64(i)*layerThicknessM
		ziPrev := 0.0
		if i > 0 {
			ziPrev = firstOffsetM + float64(i-1)*layerThicknessM
		}
		absoluteDepth := e.buriedDepthM + zi

		alpha := tbl.lookup(zi / e.baseRadiusM)
		alphaPrev := 0.0
		if i > 0 {
			alphaPrev = tbl.lookup(ziPrev / e.baseRadiusM)
		}

		esi := soil.ModulusAt(e.layers, absoluteDepth)
		if esi <= 0 {
			log.Printf("warning: non-positive modulus at depth %.1fm, using default %.1fMPa", absoluteDepth, soil.DefaultModulusMPa)
			esi = soil.DefaultModulusMPa
		}

		deltaTerm := zi*alpha - ziPrev*alphaPrev
		numerator += deltaTerm
		denominator += deltaTerm / esi

		currentEs = fallbackEsMPa
		if denominator > 0 {
			currentEs = numerator / denominator
		}
		currentPsi = psiS(currentEs, stressKPa, e.fakKPa)

		deltaS := stressKPa / esi * deltaTerm
		cumulative += deltaS

		ratio := 0.0
		if cumulative != 0 {
			ratio = deltaS / cumulative
		}

		details = append(details, LayerDetail{
			Layer:           i + 1,
			ZiM:             zi,
			AbsoluteDepthM:  absoluteDepth,
			EsiMPa:          esi,
			AlphaI:          alpha,
			DeltaTerm:       deltaTerm,
			CurrentEsMPa:    currentEs,
			CurrentPsiS:     currentPsi,
			DeltaSMM:        deltaS,
			CumulativeSMM:   cumulative,
			SettlementRatio: ratio,
		})

		if ratio <= convergenceRatio {
			converged = true
			break
		}
	}
	if !converged {
		log.Printf("warning: settlement loop hit the %d-layer cap without converging", maxLayers)
	}

	return runResult{
		details:    details,
		finalEsMPa: currentEs,
		psiS:       currentPsi,
		rawMM:      cumulative,
		finalMM:    cumulative * currentPsi,
		converged:  converged,
	}
}
