package belttension

import (
	"fmt"
	"math"

	outcome "Driveline/internal/calc/outcome"
)

type Input struct {
	TorqueNM      float64 `json:"torque_nm"`
	PulleyRadiusM float64 `json:"pulley_radius_m"`
	WrapAngleDeg  float64 `json:"wrap_angle_deg"`
	FrictionMu    float64 `json:"friction_mu"`
}

type Result struct {
	TightTensionN float64 `json:"tight_tension_n"`
	SlackTensionN float64 `json:"slack_tension_n"`
	TensionRatio  float64 `json:"tension_ratio"`
	Notes         string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.TorqueNM < 0 {
		return Result{}, fmt.Errorf("invalid torque")
	}
	if in.PulleyRadiusM < 0.01 {
		return Result{}, fmt.Errorf("invalid pulley radius")
	}
	if in.WrapAngleDeg == 0 {
		in.WrapAngleDeg = 180
	}
	if in.WrapAngleDeg < 10 || in.WrapAngleDeg > 360 {
		return Result{}, fmt.Errorf("wrap angle out of range")
	}
	if in.FrictionMu == 0 {
		in.FrictionMu = 0.35
	}
	if in.FrictionMu < 0.05 {
		return Result{}, fmt.Errorf("invalid friction coefficient")
	}

	// Euler's belt friction equation: T1/T2 = e^(mu*theta).
	tightMinusSlack := in.TorqueNM / in.PulleyRadiusM
	wrapRad := in.WrapAngleDeg * math.Pi / 180
	ratio := math.Exp(in.FrictionMu * wrapRad)
	slack := tightMinusSlack / (ratio - 1)
	tight := slack * ratio

	return Result{
		TightTensionN: tight,
		SlackTensionN: slack,
		TensionRatio:  ratio,
		Notes:         "Belt tensions from Euler's belt friction equation.",
	}, nil
}

func (r Result) Outcome() outcome.Outcome {
	return outcome.Outcome{
		Title:       "Tight and slack side tensions",
		Description: fmt.Sprintf("Belt tensions computed using Euler's belt friction equation. Slack side ~ %.1f N.", r.SlackTensionN),
		Value:       math.Round(r.TightTensionN*10) / 10,
		Units:       "N (tight side)",
	}
}
