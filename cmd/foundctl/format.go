package main

import (
	"fmt"

	comprehensive "Fundament/internal/calc/comprehensive"
	pressure "Fundament/internal/calc/pressure"
	settlement "Fundament/internal/calc/settlement"
)

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func printCheckReport(res comprehensive.Result) {
	fmt.Println("SELF-WEIGHT")
	fmt.Printf("  concrete:   %10.2f m3  (%.1f kN)\n", res.SelfWeight.ConcreteVolumeM3, res.SelfWeight.ConcreteWeightKN)
	fmt.Printf("  backfill:   %10.2f m3  (%.1f kN)\n", res.SelfWeight.CoverSoilVolumeM3, res.SelfWeight.BackfillWeightKN)
	if res.SelfWeight.BuoyancyKN > 0 {
		fmt.Printf("  buoyancy:   %10.1f kN\n", res.SelfWeight.BuoyancyKN)
	}
	fmt.Printf("  total Gk:   %10.1f kN\n", res.SelfWeight.TotalWeightKN)
	fmt.Println()

	for _, c := range res.Cases {
		fmt.Printf("CASE %s [%s]\n", c.Name, verdict(c.Compliant))
		fmt.Printf("  pk=%.1f kPa  pkmax=%.1f kPa  pkmin=%.1f kPa\n",
			c.Pressure.PkKPa, c.Pressure.PkmaxKPa, c.Pressure.PkminKPa)
		if c.Pressure.ZeroStressZone {
			fmt.Printf("  zero-stress zone: compressed height %.2f m, edge pressure %.1f kPa\n",
				c.Pressure.CompressedHeightM, c.Pressure.EdgePressureKPa)
		}
		fmt.Printf("  settlement %.2f mm (allowable %.0f mm) [%s]\n",
			c.Settlement.Settlement.FinalSettlementMM,
			c.Settlement.Settlement.AllowableSettlementMM,
			verdict(c.Settlement.Settlement.IsCompliant))
		fmt.Printf("  inclination %.6f (allowable %.4f) [%s]\n",
			c.Settlement.Inclination.Inclination,
			c.Settlement.Inclination.AllowableInclination,
			verdict(c.Settlement.Inclination.IsCompliant))
		fmt.Println()
	}

	fmt.Println("BEARING CAPACITY")
	fmt.Printf("  fa=%.1f kPa  fae=%.1f kPa\n", res.Bearing.FaKPa, res.Bearing.FaeKPa)
	fmt.Printf("  normal:  %s\n", res.Bearing.Normal.Details)
	fmt.Printf("  extreme: %s\n", res.Bearing.Extreme.Details)
	fmt.Printf("  seismic: %s\n", res.Bearing.Seismic.Details)
	fmt.Println()

	fmt.Printf("Result: %s\n", verdict(res.OverallCompliance))
}

func printSettlementReport(res settlement.Result) {
	s := res.Settlement
	fmt.Printf("SETTLEMENT  Ps=%.1f kPa  P0k=%.1f kPa  fak=%.1f kPa\n", s.PsKPa, s.P0kKPa, s.FakKPa)
	fmt.Printf("  %-4s %8s %10s %8s %8s %10s %8s\n", "No.", "zi (m)", "Esi (MPa)", "alpha", "dS (mm)", "sum (mm)", "ratio")
	for _, l := range s.PerLayer {
		fmt.Printf("  %-4d %8.2f %10.2f %8.4f %8.3f %10.3f %8.4f\n",
			l.Layer, l.ZiM, l.EsiMPa, l.AlphaI, l.DeltaSMM, l.CumulativeSMM, l.SettlementRatio)
	}
	fmt.Printf("  equivalent Es=%.2f MPa  psi_s=%.4f\n", s.EquivalentEsMPa, s.PsiS)
	fmt.Printf("  final settlement %.2f mm (allowable %.0f mm) [%s]\n",
		s.FinalSettlementMM, s.AllowableSettlementMM, verdict(s.IsCompliant))
	if !s.Converged {
		fmt.Println("  warning: layer sum did not converge, result truncated at the layer cap")
	}

	i := res.Inclination
	fmt.Printf("INCLINATION  s1=%.2f mm  s2=%.2f mm\n", i.S1MM, i.S2MM)
	fmt.Printf("  tan(theta)=%.6f (allowable %.4f) [%s]\n",
		i.Inclination, i.AllowableInclination, verdict(i.IsCompliant))
}

func printPressureReport(res pressure.Result) {
	fmt.Printf("PRESSURE  A=%.2f m2  W=%.3f m3  Mrk=%.1f kNm\n",
		res.BaseAreaM2, res.SectionModulusM3, res.MrkKNM)
	fmt.Printf("  pk=%.2f kPa  pkmax=%.2f kPa  pkmin=%.2f kPa  pj=%.2f kPa\n",
		res.PkKPa, res.PkmaxKPa, res.PkminKPa, res.NetPressureKPa)
	fmt.Printf("  e=%.3f m  e/R=%.4f  eccentricity within limit: %s\n",
		res.EccentricityM, res.EOverR, verdict(res.EccentricityWithin))
	if res.ZeroStressZone {
		fmt.Printf("  zero-stress zone: tau=%.3f xi=%.3f compressed height=%.2f m edge pressure=%.1f kPa\n",
			res.Tau, res.Xi, res.CompressedHeightM, res.EdgePressureKPa)
	}
}
