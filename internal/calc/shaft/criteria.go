package shaft

import "math"

// Criterion selects the fatigue failure relation used for sizing.
type Criterion string

const (
	Goodman Criterion = "goodman"
	Morrow  Criterion = "morrow"
	Gerber  Criterion = "gerber"
	SWT     Criterion = "swt"
)

// allCriteria fixes the reporting order of the comparison table.
var allCriteria = []Criterion{Goodman, Morrow, Gerber, SWT}

// safetyFn maps a trial diameter (metres, > 0) to the achieved safety
// factor. A denominator at or below zero means the diameter is already
// more than sufficient and reports +Inf rather than an error.
type safetyFn func(d float64) float64

// evaluators returns the safety-factor function for every criterion the
// material data supports. Morrow is absent when the true fracture
// strength is unknown; callers must treat it as nonexistent.
func (l loading) evaluators() map[Criterion]safetyFn {
	at := func(d float64) stressState {
		s, _ := l.vonMisesComponents(d)
		return s
	}

	fns := map[Criterion]safetyFn{
		Goodman: func(d float64) float64 {
			s := at(d)
			return invert(s.alt/l.se + s.mean/l.sut)
		},
		Gerber: func(d float64) float64 {
			s := at(d)
			ratio := s.mean / l.sut
			return invert(s.alt/l.se + ratio*ratio)
		},
		SWT: func(d float64) float64 {
			s := at(d)
			base := s.alt*s.alt + s.alt*s.mean
			if base <= 0 {
				return math.Inf(1)
			}
			return l.se / math.Sqrt(base)
		},
	}
	if l.sigmaF > 0 {
		fns[Morrow] = func(d float64) float64 {
			s := at(d)
			return invert(s.alt/l.se + s.mean/l.sigmaF)
		}
	}
	return fns
}

func invert(denominator float64) float64 {
	if denominator <= 0 {
		return math.Inf(1)
	}
	return 1 / denominator
}
