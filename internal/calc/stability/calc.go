package stability

import (
	"fmt"
	"math"
)

const (
	DefaultImportanceFactor = 1.1

	frictionCoefficient   = 0.3
	overturningResistance = 1.6
	slidingResistance     = 1.3

	// Reported in place of an infinite safety factor when the driving
	// term is zero.
	infiniteSafetyFactor = 999999.0
)

// CaseLoad carries one load case's standard-combination resultants.
type CaseLoad struct {
	Name                 string  `json:"name"`
	TotalVerticalLoadKN  float64 `json:"total_vertical_load_kn"`
	OverturningMomentKNM float64 `json:"overturning_moment_knm"`
	SlidingForceKN       float64 `json:"sliding_force_kn"`
}

type Input struct {
	BaseRadiusM         float64    `json:"base_radius_m"`
	ImportanceFactor    float64    `json:"importance_factor"`
	FrictionCoefficient float64    `json:"friction_coefficient"`
	Cases               []CaseLoad `json:"cases"`
}

type OverturningCheck struct {
	Case                 string  `json:"case"`
	OverturningMomentKNM float64 `json:"overturning_moment_knm"`
	ResistingMomentKNM   float64 `json:"resisting_moment_knm"`
	SafetyFactor         float64 `json:"safety_factor"`
	RequiredFactor       float64 `json:"required_factor"`
	IsCompliant          bool    `json:"is_compliant"`
}

type SlidingCheck struct {
	Case             string  `json:"case"`
	SlidingForceKN   float64 `json:"sliding_force_kn"`
	ResistingForceKN float64 `json:"resisting_force_kn"`
	FactoredDriveKN  float64 `json:"factored_drive_kn"`
	DesignResistKN   float64 `json:"design_resist_kn"`
	IsCompliant      bool    `json:"is_compliant"`
}

type Result struct {
	Overturning      []OverturningCheck `json:"overturning"`
	Sliding          []SlidingCheck     `json:"sliding"`
	OverallCompliant bool               `json:"overall_compliant"`
}

// Calculate runs the overturning and sliding checks for every load case.
func Calculate(in Input) (Result, error) {
	if in.BaseRadiusM <= 0 {
		return Result{}, fmt.Errorf("stability: base radius must be positive, got %.2f", in.BaseRadiusM)
	}
	if len(in.Cases) == 0 {
		return Result{}, fmt.Errorf("stability: at least one load case is required")
	}
	gamma0 := in.ImportanceFactor
	if gamma0 <= 0 {
		gamma0 = DefaultImportanceFactor
	}
	mu := in.FrictionCoefficient
	if mu <= 0 {
		mu = frictionCoefficient
	}

	res := Result{OverallCompliant: true}
	for _, c := range in.Cases {
		ot := checkOverturning(c, in.BaseRadiusM, gamma0)
		sl := checkSliding(c, mu, gamma0)
		res.Overturning = append(res.Overturning, ot)
		res.Sliding = append(res.Sliding, sl)
		if !ot.IsCompliant || !sl.IsCompliant {
			res.OverallCompliant = false
		}
	}
	return res, nil
}

func checkOverturning(c CaseLoad, baseRadiusM, gamma0 float64) OverturningCheck {
	drive := math.Abs(c.OverturningMomentKNM)
	resist := c.TotalVerticalLoadKN * baseRadiusM
	required := gamma0 * overturningResistance

	sf := infiniteSafetyFactor
	if drive != 0 {
		sf = resist / drive
	}
	return OverturningCheck{
		Case:                 c.Name,
		OverturningMomentKNM: drive,
		ResistingMomentKNM:   resist,
		SafetyFactor:         sf,
		RequiredFactor:       required,
		IsCompliant:          sf >= required,
	}
}

func checkSliding(c CaseLoad, mu, gamma0 float64) SlidingCheck {
	drive := math.Abs(c.SlidingForceKN)
	resist := c.TotalVerticalLoadKN * mu

	factored := gamma0 * drive
	design := resist / slidingResistance
	return SlidingCheck{
		Case:             c.Name,
		SlidingForceKN:   drive,
		ResistingForceKN: resist,
		FactoredDriveKN:  factored,
		DesignResistKN:   design,
		IsCompliant:      factored <= design,
	}
}
