package shaft

const (
	// minPracticalM is the smallest diameter worth manufacturing; a
	// shaft that is sufficient at 1 mm is reported at 1 mm, not at the
	// true mathematical root below it.
	minPracticalM = 1e-3

	// maxDiameterM caps the bracket growth. A drive shaft past 1 m is
	// outside any sane conveyor design, so the search fails there.
	maxDiameterM = 1.0

	maxDoublings     = 40
	bisectIterations = 80
)

// minDiameter finds the smallest diameter in metres for which the
// predicate holds. sufficient must be monotone: once true at some
// diameter it stays true for every larger one, which the fatigue
// safety-factor formulas guarantee.
func minDiameter(sufficient func(d float64) bool) (float64, error) {
	if sufficient(minPracticalM) {
		return minPracticalM, nil
	}

	lo := minPracticalM
	hi := minPracticalM
	bracketed := false
	for i := 0; i < maxDoublings; i++ {
		hi *= 2
		if hi > maxDiameterM {
			hi = maxDiameterM
		}
		if sufficient(hi) {
			bracketed = true
			break
		}
		lo = hi
		if hi >= maxDiameterM {
			break
		}
	}
	if !bracketed {
		return 0, ErrUnsolvable
	}

	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if sufficient(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
