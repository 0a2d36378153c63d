// Package shaft sizes a solid circular shaft under combined cyclic
// bending and torsion: it searches for the minimum diameter whose
// fatigue safety factor meets the requested design factor under a
// chosen failure criterion, cross-checks the drawn geometry and runs a
// static yield check when the yield strength is known.
package shaft

import (
	"fmt"
	"math"
	"strings"

	outcome "Driveline/internal/calc/outcome"
)

type Input struct {
	BendingAltNM  float64 `json:"bending_alt_nm"`
	BendingMeanNM float64 `json:"bending_mean_nm"`
	TorsionAltNM  float64 `json:"torsion_alt_nm"`
	TorsionMeanNM float64 `json:"torsion_mean_nm"`

	Kf  float64 `json:"kf"`
	Kfs float64 `json:"kfs"`

	Material  string  `json:"material,omitempty"` // grade name, resolved by the handler
	SeMPa     float64 `json:"se_mpa"`
	SutMPa    float64 `json:"sut_mpa"`
	SigmaFMPa float64 `json:"sigma_f_mpa,omitempty"` // true fracture strength, Morrow only
	SyMPa     float64 `json:"sy_mpa,omitempty"`

	DesignFactor float64   `json:"design_factor"`
	Criterion    Criterion `json:"criterion"`

	Segments []Segment `json:"segments,omitempty"`
}

type Result struct {
	Criterion     Criterion             `json:"criterion"`
	DiameterMM    float64               `json:"diameter_mm"`
	RecommendedMM float64               `json:"recommended_mm"`
	DiametersMM   map[Criterion]float64 `json:"diameters_mm"`
	YieldFactor   float64               `json:"yield_factor,omitempty"`
	Geometry      *GeometrySummary      `json:"geometry,omitempty"`
	Warnings      []string              `json:"warnings,omitempty"`
	Notes         string                `json:"notes"`
}

const megapascal = 1e6

func (in Input) normalize() (loading, error) {
	moments := []struct {
		name  string
		value float64
	}{
		{"bending_alt_nm", in.BendingAltNM},
		{"bending_mean_nm", in.BendingMeanNM},
		{"torsion_alt_nm", in.TorsionAltNM},
		{"torsion_mean_nm", in.TorsionMeanNM},
	}
	for _, m := range moments {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return loading{}, fmt.Errorf("%w: %s must be finite and non-negative", ErrInvalidInput, m.name)
		}
	}
	if in.Kf < 1 || in.Kfs < 1 {
		return loading{}, fmt.Errorf("%w: stress-concentration factors must be >= 1", ErrInvalidInput)
	}
	if in.SeMPa <= 0 || in.SutMPa <= 0 {
		return loading{}, fmt.Errorf("%w: endurance limit and ultimate strength must be positive", ErrInvalidInput)
	}
	if in.SigmaFMPa < 0 || in.SyMPa < 0 {
		return loading{}, fmt.Errorf("%w: optional strengths must not be negative", ErrInvalidInput)
	}
	if in.DesignFactor < 1 {
		return loading{}, fmt.Errorf("%w: design factor must be >= 1", ErrInvalidInput)
	}

	return loading{
		bendingAlt:  in.BendingAltNM,
		bendingMean: in.BendingMeanNM,
		torsionAlt:  in.TorsionAltNM,
		torsionMean: in.TorsionMeanNM,
		kf:          in.Kf,
		kfs:         in.Kfs,
		se:          in.SeMPa * megapascal,
		sut:         in.SutMPa * megapascal,
		sigmaF:      in.SigmaFMPa * megapascal,
		sy:          in.SyMPa * megapascal,
	}, nil
}

// Calculate solves the sizing problem for every evaluable criterion
// and composes the comparison table, yield check and geometry warnings
// around the selected criterion's diameter.
func Calculate(in Input) (Result, error) {
	load, err := in.normalize()
	if err != nil {
		return Result{}, err
	}

	evaluators := load.evaluators()
	if _, ok := evaluators[in.Criterion]; !ok {
		if in.Criterion == Morrow {
			return Result{}, fmt.Errorf("%w: Morrow criterion requires the true fracture strength sigma_f", ErrMissingMaterialData)
		}
		return Result{}, fmt.Errorf("%w: unknown criterion %q", ErrInvalidInput, in.Criterion)
	}

	var warnings []string
	table := make(map[Criterion]float64, len(evaluators))
	for _, c := range allCriteria {
		fn, present := evaluators[c]
		if !present {
			continue
		}
		d, err := minDiameter(func(d float64) bool { return fn(d) >= in.DesignFactor })
		if err != nil {
			if c == in.Criterion {
				return Result{}, fmt.Errorf("%w (criterion %s)", ErrUnsolvable, c)
			}
			warnings = append(warnings, fmt.Sprintf("%s: %v", c, err))
			continue
		}
		table[c] = toMM(d)
	}

	diameterM := table[in.Criterion] / 1000
	res := Result{
		Criterion:     in.Criterion,
		DiameterMM:    table[in.Criterion],
		RecommendedMM: math.Ceil(table[in.Criterion]),
		DiametersMM:   table,
		Warnings:      warnings,
	}

	if load.sy > 0 {
		s, err := load.vonMisesComponents(diameterM)
		if err != nil {
			return Result{}, err
		}
		sigmaMax := math.Sqrt(s.bendingTotal*s.bendingTotal + 3*s.torsionTotal*s.torsionTotal)
		if sigmaMax > 0 {
			res.YieldFactor = round2(load.sy / sigmaMax)
			if res.YieldFactor < in.DesignFactor {
				res.Warnings = append(res.Warnings, fmt.Sprintf("static yield factor %.2f is below the design factor %.2f", res.YieldFactor, in.DesignFactor))
			}
		}
	}

	if in.Segments != nil {
		summary, err := validateSegments(in.Segments)
		if err != nil {
			return Result{}, err
		}
		res.Geometry = &summary
		if summary.MinDiameterMM < res.DiameterMM-geometryEpsMM {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"minimum segment diameter %.2f mm is below the required %.2f mm", summary.MinDiameterMM, res.DiameterMM))
		}
	}

	res.Notes = fmt.Sprintf("Fatigue sizing by the %s criterion; recommend %.0f mm.", in.Criterion, res.RecommendedMM)
	return res, nil
}

// SafetyFactor reports the achieved safety factor for one criterion at
// a trial diameter in metres. The criterion must be evaluable with the
// supplied material data.
func SafetyFactor(in Input, c Criterion, diameterM float64) (float64, error) {
	load, err := in.normalize()
	if err != nil {
		return 0, err
	}
	if diameterM <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidGeometry, diameterM)
	}
	fn, ok := load.evaluators()[c]
	if !ok {
		if c == Morrow {
			return 0, fmt.Errorf("%w: Morrow criterion requires the true fracture strength sigma_f", ErrMissingMaterialData)
		}
		return 0, fmt.Errorf("%w: unknown criterion %q", ErrInvalidInput, c)
	}
	return fn(diameterM), nil
}

// Outcome renders the shared result contract: the precise diameter as
// the headline value with the criterion table in the description.
func (r Result) Outcome() outcome.Outcome {
	parts := make([]string, 0, len(r.DiametersMM))
	for _, c := range allCriteria {
		if d, ok := r.DiametersMM[c]; ok {
			parts = append(parts, fmt.Sprintf("%s %.2f mm", c, d))
		}
	}

	desc := fmt.Sprintf("Minimum diameter %.2f mm by the %s criterion; recommend %.0f mm. Comparison: %s.",
		r.DiameterMM, r.Criterion, r.RecommendedMM, strings.Join(parts, ", "))
	if r.YieldFactor > 0 {
		desc += fmt.Sprintf(" Static yield factor %.2f.", r.YieldFactor)
	}
	for _, wmsg := range r.Warnings {
		desc += " Warning: " + wmsg + "."
	}
	return outcome.Outcome{
		Title:       "Required shaft diameter",
		Description: desc,
		Value:       round2(r.DiameterMM),
		Units:       "mm",
	}
}

// toMM keeps full precision; feeding a table diameter back into its
// criterion must still meet the design factor within the bisection
// tolerance. Two-decimal rounding happens only in rendered text.
func toMM(m float64) float64 { return m * 1000 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
