package shaft

import (
	"fmt"
	"math"
)

// loading is a load case normalized to base SI units: moments in N·m,
// strengths in Pa. SigmaF and Sy are zero when not supplied.
type loading struct {
	bendingAlt  float64
	bendingMean float64
	torsionAlt  float64
	torsionMean float64

	kf  float64
	kfs float64

	se     float64
	sut    float64
	sigmaF float64
	sy     float64
}

// stressState holds von Mises equivalent stresses at one trial
// diameter, in Pa. bendingTotal and torsionTotal are the alternating
// plus mean component sums kept for the static yield check.
type stressState struct {
	alt          float64
	mean         float64
	bendingTotal float64
	torsionTotal float64
}

// vonMisesComponents evaluates the solid circular-shaft stress formulas
// at diameter d (metres): bending 32*Kf*M/(pi*d^3), torsion
// 16*Kfs*T/(pi*d^3), combined by the distortion-energy rule.
func (l loading) vonMisesComponents(d float64) (stressState, error) {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return stressState{}, fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidGeometry, d)
	}

	section := math.Pi * d * d * d
	bendAlt := 32 * l.kf * l.bendingAlt / section
	bendMean := 32 * l.kf * l.bendingMean / section
	torAlt := 16 * l.kfs * l.torsionAlt / section
	torMean := 16 * l.kfs * l.torsionMean / section

	return stressState{
		alt:          math.Sqrt(bendAlt*bendAlt + 3*torAlt*torAlt),
		mean:         math.Sqrt(bendMean*bendMean + 3*torMean*torMean),
		bendingTotal: bendAlt + bendMean,
		torsionTotal: torAlt + torMean,
	}, nil
}
