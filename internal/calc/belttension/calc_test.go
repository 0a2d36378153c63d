package belttension

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		TorqueNM:      8000,
		PulleyRadiusM: 0.4,
		WrapAngleDeg:  180,
		FrictionMu:    0.35,
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	// ratio = e^(0.35*pi) = 3.003; T1-T2 = 20000 N
	if math.Abs(res.TensionRatio-3.003) > 0.001 {
		t.Fatalf("tension ratio %.4f, want ~3.003", res.TensionRatio)
	}
	if math.Abs(res.TightTensionN-res.SlackTensionN-20000) > 0.5 {
		t.Fatalf("tension difference %.1f N, want 20000", res.TightTensionN-res.SlackTensionN)
	}
	if math.Abs(res.TightTensionN/res.SlackTensionN-res.TensionRatio) > 1e-9 {
		t.Fatal("tight/slack ratio must match Euler's equation")
	}
}

func TestDefaults(t *testing.T) {
	res, err := Calculate(Input{TorqueNM: 1000, PulleyRadiusM: 0.5})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// Wrap defaults to 180 degrees, mu to 0.35.
	if math.Abs(res.TensionRatio-math.Exp(0.35*math.Pi)) > 1e-9 {
		t.Fatalf("unexpected default ratio %.4f", res.TensionRatio)
	}
}

func TestValidation(t *testing.T) {
	if _, err := Calculate(Input{TorqueNM: 1000, PulleyRadiusM: 0.001}); err == nil {
		t.Fatal("expected an error for a tiny pulley radius")
	}
	if _, err := Calculate(Input{TorqueNM: 1000, PulleyRadiusM: 0.5, WrapAngleDeg: 5}); err == nil {
		t.Fatal("expected an error for a wrap angle below 10 degrees")
	}
	if _, err := Calculate(Input{TorqueNM: 1000, PulleyRadiusM: 0.5, FrictionMu: 0.01}); err == nil {
		t.Fatal("expected an error for a friction coefficient below 0.05")
	}
}
