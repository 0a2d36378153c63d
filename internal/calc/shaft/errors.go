package shaft

import "errors"

// Failure kinds surfaced by Calculate. Callers classify with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidGeometry     = errors.New("invalid geometry")
	ErrMissingMaterialData = errors.New("missing material data")
	ErrUnsolvable          = errors.New("no diameter up to 1 m meets the design factor")
)
