package pulleytorque

import (
	"fmt"
	"math"

	outcome "Driveline/internal/calc/outcome"
)

type Input struct {
	PowerKW  float64 `json:"power_kw"`
	SpeedRPM float64 `json:"speed_rpm"`
}

type Result struct {
	TorqueNM float64 `json:"torque_nm"`
	Notes    string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.PowerKW < 0 {
		return Result{}, fmt.Errorf("invalid power")
	}
	if in.SpeedRPM < 0.1 {
		return Result{}, fmt.Errorf("invalid rotational speed")
	}

	// T = P * 60 / (2*pi*n)
	torque := in.PowerKW * 1000 * 60 / (2 * math.Pi * in.SpeedRPM)

	return Result{
		TorqueNM: torque,
		Notes:    "Shaft torque delivered to the pulley.",
	}, nil
}

func (r Result) Outcome() outcome.Outcome {
	return outcome.Outcome{
		Title:       "Pulley torque",
		Description: "Shaft torque delivered to the pulley.",
		Value:       math.Round(r.TorqueNM*10) / 10,
		Units:       "N·m",
	}
}
