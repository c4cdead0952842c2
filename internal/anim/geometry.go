package anim

import "math"

// colinearTolerance bounds the cross product magnitude below which three
// points are treated as colinear when classifying line segments.
const colinearTolerance = 1e-6

// BezierSegment is one cubic bezier segment of a path geometry, with four
// control points. P0 and P3 are the endpoints; P1 and P2 are the inner
// control points.
type BezierSegment struct {
	P0, P1, P2, P3 Vector2
}

// LineSegment builds a segment that draws a straight line from a to b,
// with the inner control points evenly spaced along the chord.
func LineSegment(a, b Vector2) BezierSegment {
	return BezierSegment{
		P0: a,
		P1: a.Lerp(b, 1.0/3.0),
		P2: a.Lerp(b, 2.0/3.0),
		P3: b,
	}
}

// IsALine reports whether the segment traces a straight line with no
// curvature: both inner control points are colinear with the endpoint
// chord and lie between the endpoints on both axes, so the pen never
// leaves the chord and never doubles back inside the segment.
func (s BezierSegment) IsALine() bool {
	chord := s.P3.Sub(s.P0)
	if math.Abs(chord.Cross(s.P1.Sub(s.P0))) > colinearTolerance {
		return false
	}
	if math.Abs(chord.Cross(s.P2.Sub(s.P0))) > colinearTolerance {
		return false
	}
	return Between(s.P1, s.P0, s.P3) && Between(s.P2, s.P0, s.P3)
}

// PathGeometry is an ordered sequence of bezier segments. Equality is
// structural over the segment sequence.
type PathGeometry struct {
	Segments []BezierSegment
}

// SegmentCount returns the number of segments in the geometry.
func (g PathGeometry) SegmentCount() int {
	return len(g.Segments)
}

// PathGeometryEqual reports structural equality over the segment
// sequences of a and b.
func PathGeometryEqual(a, b PathGeometry) bool {
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			return false
		}
	}
	return true
}
