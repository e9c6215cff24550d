// Package friction computes the frictional resistance acting on a TBM shield
// from soil, machine and site parameters under a selected earth pressure theory.
package friction

import (
	"errors"
	"math"
)

// Theory selects the lateral earth pressure model.
type Theory string

const (
	TheoryAtRest  Theory = "at_rest"
	TheoryActive  Theory = "active"
	TheoryPassive Theory = "passive"
)

const (
	gravity      = 9.81   // m/s^2
	waterDensity = 1000.0 // kg/m^3
)

var (
	ErrGeometry      = errors.New("shield diameter and length must be positive")
	ErrFrictionAngle = errors.New("friction angle must be in [0, 90) degrees")
	ErrTheory        = errors.New("unknown earth pressure theory")
)

type Soil struct {
	DensityKgM3      float64 `json:"density_kg_m3"`
	CohesionPa       float64 `json:"cohesion_pa"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	K0               float64 `json:"k0"`
}

type TBM struct {
	DiameterM      float64 `json:"diameter_m"`
	ShieldLengthM  float64 `json:"shield_length_m"`
	WeightN        float64 `json:"weight_n"`
	FacePressurePa float64 `json:"face_pressure_pa"`
}

type Site struct {
	TunnelDepthM     float64 `json:"tunnel_depth_m"`
	WaterTableDepthM float64 `json:"water_table_depth_m"`
}

type Input struct {
	Soil                Soil    `json:"soil"`
	TBM                 TBM     `json:"tbm"`
	Site                Site    `json:"site"`
	FrictionCoefficient float64 `json:"friction_coefficient"`
	Theory              Theory  `json:"theory"`
}

type Result struct {
	VerticalStressPa   float64 `json:"vertical_stress_pa"`
	PorePressurePa     float64 `json:"pore_pressure_pa"`
	HorizontalStressPa float64 `json:"horizontal_stress_pa"`
	EffectiveStressPa  float64 `json:"effective_stress_pa"`
	NormalForceN       float64 `json:"normal_force_n"`
	FrictionForceN     float64 `json:"friction_force_n"`
	TotalResistanceN   float64 `json:"total_resistance_n"`
	TheoryUsed         Theory  `json:"theory_used"`
	Notes              string  `json:"notes"`
}

// Calculate runs the full stress/force chain. Depth is measured from ground
// surface to the tunnel axis, the soil column above is homogeneous, and the
// shield contact area is the full lateral cylinder surface pi*D*L. Cohesion
// and face pressure are accepted but do not enter the formulas.
func Calculate(in Input) (Result, error) {
	if in.TBM.DiameterM <= 0 || in.TBM.ShieldLengthM <= 0 {
		return Result{}, ErrGeometry
	}

	// Vertical overburden at axis depth.
	sigmaV := in.Soil.DensityKgM3 * gravity * in.Site.TunnelDepthM

	// Hydrostatic pore pressure below the water table.
	u := 0.0
	if in.Site.TunnelDepthM > in.Site.WaterTableDepthM {
		u = waterDensity * gravity * (in.Site.TunnelDepthM - in.Site.WaterTableDepthM)
	}

	// Effective vertical stress cannot go negative.
	sigmaVEff := sigmaV - u
	if sigmaVEff < 0 {
		sigmaVEff = 0
	}

	var sigmaH float64
	switch in.Theory {
	case TheoryAtRest:
		sigmaH = in.Soil.K0 * sigmaVEff
	case TheoryActive:
		ka, err := rankine(in.Soil.FrictionAngleDeg, -1)
		if err != nil {
			return Result{}, err
		}
		sigmaH = ka * sigmaVEff
	case TheoryPassive:
		kp, err := rankine(in.Soil.FrictionAngleDeg, +1)
		if err != nil {
			return Result{}, err
		}
		sigmaH = kp * sigmaVEff
	default:
		return Result{}, ErrTheory
	}

	area := math.Pi * in.TBM.DiameterM * in.TBM.ShieldLengthM
	normal := sigmaH * area
	frictionF := in.FrictionCoefficient * normal
	total := frictionF + in.TBM.WeightN

	return Result{
		VerticalStressPa:   sigmaV,
		PorePressurePa:     u,
		HorizontalStressPa: sigmaH,
		EffectiveStressPa:  sigmaH,
		NormalForceN:       normal,
		FrictionForceN:     frictionF,
		TotalResistanceN:   total,
		TheoryUsed:         in.Theory,
		Notes:              "Homogeneous overburden, full lateral shield surface.",
	}, nil
}

// rankine returns tan^2(45 +/- phi/2). The tangent is undefined at phi = 90.
func rankine(angleDeg, sign float64) (float64, error) {
	if angleDeg < 0 || angleDeg >= 90 {
		return 0, ErrFrictionAngle
	}
	phi := angleDeg * math.Pi / 180.0
	t := math.Tan(math.Pi/4 + sign*phi/2)
	return t * t, nil
}
