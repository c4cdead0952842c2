package document

// Value type names for Timeline.ValueType.
const (
	ValueScalar = "scalar"
	ValueColor  = "color"
	ValuePath   = "path"
)

// ValidValueTypes defines the allowed timeline value types.
var ValidValueTypes = map[string]bool{
	ValueScalar: true,
	ValueColor:  true,
	ValuePath:   true,
}

// Easing kind names for EasingSpec.Kind.
const (
	EasingLinear      = "linear"
	EasingHold        = "hold"
	EasingCubicBezier = "cubic_bezier"
)

// Document is a parsed animation document: a named set of per-property
// keyframe timelines produced by the upstream format parser.
type Document struct {
	SchemaVersion string     `json:"schema_version" yaml:"schema_version"`
	Name          string     `json:"name" yaml:"name"`
	Timelines     []Timeline `json:"timelines" yaml:"timelines"`
}

// Timeline is one per-property animation timeline. Exactly one value
// representation (scalar, color, path) is used throughout a timeline,
// declared by ValueType.
type Timeline struct {
	Target        string         `json:"target" yaml:"target"`
	Property      string         `json:"property" yaml:"property"`
	ValueType     string         `json:"value_type" yaml:"value_type"`
	PropertyIndex *int           `json:"property_index,omitempty" yaml:"property_index,omitempty"`
	Initial       Value          `json:"initial" yaml:"initial"`
	Keyframes     []KeyframeSpec `json:"keyframes" yaml:"keyframes"`

	// CanonicalID is set on canonicalizer output: timelines sharing a
	// canonical handle carry the same id, which is how the emission
	// stage sees the deduplication. Never present on input documents.
	CanonicalID string `json:"canonical_id,omitempty" yaml:"canonical_id,omitempty"`
}

// Value is a tagged union of the supported value representations; the
// field matching the timeline's ValueType must be set.
type Value struct {
	Scalar *float64   `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Color  *ColorSpec `json:"color,omitempty" yaml:"color,omitempty"`
	Path   *PathSpec  `json:"path,omitempty" yaml:"path,omitempty"`
}

// KeyframeSpec is one keyframe of a timeline. Easing defaults to linear
// when absent. Spatial tangents are [x, y, z] triples and may be omitted
// when zero.
type KeyframeSpec struct {
	Frame      float64     `json:"frame" yaml:"frame"`
	Value      Value       `json:"value" yaml:"value"`
	Easing     *EasingSpec `json:"easing,omitempty" yaml:"easing,omitempty"`
	SpatialIn  []float64   `json:"spatial_in,omitempty" yaml:"spatial_in,omitempty"`
	SpatialOut []float64   `json:"spatial_out,omitempty" yaml:"spatial_out,omitempty"`
}

// EasingSpec names an easing function. C1 and C2 are [x, y] timing
// control points, required for cubic_bezier and forbidden otherwise.
type EasingSpec struct {
	Kind string    `json:"kind" yaml:"kind"`
	C1   []float64 `json:"c1,omitempty" yaml:"c1,omitempty"`
	C2   []float64 `json:"c2,omitempty" yaml:"c2,omitempty"`
}

// ColorSpec is a non-premultiplied RGBA color with channels in [0, 1].
type ColorSpec struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// PathSpec is a bezier path geometry as an ordered segment list.
type PathSpec struct {
	Segments []SegmentSpec `json:"segments" yaml:"segments"`
}

// SegmentSpec is one cubic bezier segment; each control point is an
// [x, y] pair.
type SegmentSpec struct {
	P0 []float64 `json:"p0" yaml:"p0"`
	P1 []float64 `json:"p1" yaml:"p1"`
	P2 []float64 `json:"p2" yaml:"p2"`
	P3 []float64 `json:"p3" yaml:"p3"`
}
