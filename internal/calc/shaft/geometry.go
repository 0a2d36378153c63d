package shaft

import "fmt"

// Segment is one stepped section of the drawn shaft, in millimetres.
type Segment struct {
	LengthMM   float64 `json:"length_mm"`
	DiameterMM float64 `json:"diameter_mm"`
}

// GeometrySummary condenses the validated segment list.
type GeometrySummary struct {
	MinDiameterMM float64 `json:"min_diameter_mm"`
	SegmentCount  int     `json:"segment_count"`
	TotalLengthMM float64 `json:"total_length_mm"`
}

// geometryEpsMM keeps float noise from mm/m conversions out of the
// cross-check warning.
const geometryEpsMM = 1e-6

func validateSegments(segments []Segment) (GeometrySummary, error) {
	if len(segments) == 0 {
		return GeometrySummary{}, fmt.Errorf("%w: segment list is empty", ErrInvalidGeometry)
	}

	sum := GeometrySummary{SegmentCount: len(segments)}
	for i, seg := range segments {
		if seg.LengthMM <= 0 {
			return GeometrySummary{}, fmt.Errorf("%w: segment %d has non-positive length %g mm", ErrInvalidGeometry, i+1, seg.LengthMM)
		}
		if seg.DiameterMM <= 0 {
			return GeometrySummary{}, fmt.Errorf("%w: segment %d has non-positive diameter %g mm", ErrInvalidGeometry, i+1, seg.DiameterMM)
		}
		sum.TotalLengthMM += seg.LengthMM
		if i == 0 || seg.DiameterMM < sum.MinDiameterMM {
			sum.MinDiameterMM = seg.DiameterMM
		}
	}
	return sum, nil
}
