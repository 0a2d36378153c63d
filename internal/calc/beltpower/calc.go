package beltpower

import (
	"fmt"
	"math"

	outcome "Driveline/internal/calc/outcome"
)

type Input struct {
	ThroughputTPH float64 `json:"throughput_tph"`   // material flow, t/h
	LiftHeightM   float64 `json:"lift_height_m"`    // vertical lift, m
	FrictionNPerT float64 `json:"friction_n_per_t"` // idler/skirt resistance, N per tonne
	BeltSpeedMS   float64 `json:"belt_speed_ms"`
}

type Result struct {
	DrivePowerKW      float64 `json:"drive_power_kw"`
	ShaftPowerKW      float64 `json:"shaft_power_kw"`
	EffectiveTensionN float64 `json:"effective_tension_n"`
	Notes             string  `json:"notes"`
}

const (
	gravity    = 9.80665
	efficiency = 0.92
)

func Calculate(in Input) (Result, error) {
	if in.ThroughputTPH < 0 || in.LiftHeightM < 0 || in.FrictionNPerT < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.BeltSpeedMS < 0.1 {
		return Result{}, fmt.Errorf("invalid belt speed")
	}
	if in.FrictionNPerT == 0 {
		in.FrictionNPerT = 15.0
	}

	massFlowKGS := in.ThroughputTPH / 3.6
	liftPowerKW := massFlowKGS * gravity * in.LiftHeightM / 1000
	frictionPowerKW := in.ThroughputTPH * in.FrictionNPerT / 1000
	shaftPowerKW := liftPowerKW + frictionPowerKW
	totalPowerKW := shaftPowerKW / efficiency
	effectiveTension := shaftPowerKW * 1000 / in.BeltSpeedMS

	return Result{
		DrivePowerKW:      totalPowerKW,
		ShaftPowerKW:      shaftPowerKW,
		EffectiveTensionN: effectiveTension,
		Notes:             "Drive power with allowance for lift and friction losses at 92% efficiency.",
	}, nil
}

func (r Result) Outcome() outcome.Outcome {
	return outcome.Outcome{
		Title: "Required drive power",
		Description: fmt.Sprintf(
			"Estimated power requirement including allowance for lift and friction losses. Effective tension ~ %.0f N.",
			r.EffectiveTensionN),
		Value: round2(r.DrivePowerKW),
		Units: "kW",
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
