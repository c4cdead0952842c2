package document

import (
	"fmt"
	"strings"
)

// Validation error codes (E100-E199)
const (
	ErrSchemaVersion   = "E100" // unsupported schema version
	ErrTimelineIdent   = "E101" // target/property missing
	ErrValueType       = "E102" // invalid value_type
	ErrValueMismatch   = "E103" // value variant does not match value_type
	ErrNoKeyframes     = "E104" // timeline has no keyframes
	ErrFrameOrder      = "E105" // keyframe frames not strictly increasing
	ErrInvalidEasing   = "E106" // unknown easing kind or bad control points
	ErrSpatialTangent  = "E107" // spatial tangent is not an [x, y, z] triple
	ErrInvalidGeometry = "E108" // malformed path segment or color channel
)

// ValidationError represents a document schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a parsed document against schema rules.
// Returns all errors found (does not fail-fast).
func Validate(doc *Document) []ValidationError {
	var errs []ValidationError

	if doc.SchemaVersion != SchemaVersion {
		errs = append(errs, ValidationError{
			Field:   "schema_version",
			Message: fmt.Sprintf("unsupported schema version %q (want %q)", doc.SchemaVersion, SchemaVersion),
			Code:    ErrSchemaVersion,
		})
	}

	for i := range doc.Timelines {
		errs = append(errs, validateTimeline(&doc.Timelines[i], fmt.Sprintf("timelines[%d]", i))...)
	}
	return errs
}

func validateTimeline(tl *Timeline, field string) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(tl.Target) == "" {
		errs = append(errs, ValidationError{
			Field:   field + ".target",
			Message: "target is required and must be non-empty",
			Code:    ErrTimelineIdent,
		})
	}
	if strings.TrimSpace(tl.Property) == "" {
		errs = append(errs, ValidationError{
			Field:   field + ".property",
			Message: "property is required and must be non-empty",
			Code:    ErrTimelineIdent,
		})
	}

	if !ValidValueTypes[tl.ValueType] {
		errs = append(errs, ValidationError{
			Field:   field + ".value_type",
			Message: fmt.Sprintf("invalid value type %q (want scalar, color, or path)", tl.ValueType),
			Code:    ErrValueType,
		})
		// Without a value type the variant checks below are meaningless.
		return errs
	}

	errs = append(errs, validateValue(&tl.Initial, tl.ValueType, field+".initial")...)

	if len(tl.Keyframes) == 0 {
		errs = append(errs, ValidationError{
			Field:   field + ".keyframes",
			Message: "timeline must have at least one keyframe",
			Code:    ErrNoKeyframes,
		})
	}

	prev := 0.0
	for i := range tl.Keyframes {
		kf := &tl.Keyframes[i]
		kfield := fmt.Sprintf("%s.keyframes[%d]", field, i)

		if i > 0 && kf.Frame <= prev {
			errs = append(errs, ValidationError{
				Field:   kfield + ".frame",
				Message: fmt.Sprintf("frame %v is not after previous frame %v", kf.Frame, prev),
				Code:    ErrFrameOrder,
			})
		}
		prev = kf.Frame

		errs = append(errs, validateValue(&kf.Value, tl.ValueType, kfield+".value")...)

		if kf.Easing != nil {
			errs = append(errs, validateEasing(kf.Easing, kfield+".easing")...)
		}
		if len(kf.SpatialIn) != 0 && len(kf.SpatialIn) != 3 {
			errs = append(errs, ValidationError{
				Field:   kfield + ".spatial_in",
				Message: fmt.Sprintf("spatial tangent must be an [x, y, z] triple, got %d values", len(kf.SpatialIn)),
				Code:    ErrSpatialTangent,
			})
		}
		if len(kf.SpatialOut) != 0 && len(kf.SpatialOut) != 3 {
			errs = append(errs, ValidationError{
				Field:   kfield + ".spatial_out",
				Message: fmt.Sprintf("spatial tangent must be an [x, y, z] triple, got %d values", len(kf.SpatialOut)),
				Code:    ErrSpatialTangent,
			})
		}
	}
	return errs
}

func validateValue(v *Value, valueType, field string) []ValidationError {
	var errs []ValidationError

	set := 0
	if v.Scalar != nil {
		set++
	}
	if v.Color != nil {
		set++
	}
	if v.Path != nil {
		set++
	}
	if set != 1 {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("exactly one of scalar, color, or path must be set, got %d", set),
			Code:    ErrValueMismatch,
		}}
	}

	switch valueType {
	case ValueScalar:
		if v.Scalar == nil {
			errs = append(errs, mismatch(field, valueType))
		}
	case ValueColor:
		if v.Color == nil {
			errs = append(errs, mismatch(field, valueType))
		} else {
			errs = append(errs, validateColor(v.Color, field+".color")...)
		}
	case ValuePath:
		if v.Path == nil {
			errs = append(errs, mismatch(field, valueType))
		} else {
			errs = append(errs, validatePath(v.Path, field+".path")...)
		}
	}
	return errs
}

func mismatch(field, valueType string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value does not match timeline value type %q", valueType),
		Code:    ErrValueMismatch,
	}
}

func validateColor(c *ColorSpec, field string) []ValidationError {
	var errs []ValidationError
	channels := []struct {
		name string
		v    float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}}
	for _, ch := range channels {
		if ch.v < 0 || ch.v > 1 {
			errs = append(errs, ValidationError{
				Field:   field + "." + ch.name,
				Message: fmt.Sprintf("channel %v out of range [0, 1]", ch.v),
				Code:    ErrInvalidGeometry,
			})
		}
	}
	return errs
}

func validatePath(p *PathSpec, field string) []ValidationError {
	var errs []ValidationError
	for i, seg := range p.Segments {
		sfield := fmt.Sprintf("%s.segments[%d]", field, i)
		points := []struct {
			name string
			v    []float64
		}{{"p0", seg.P0}, {"p1", seg.P1}, {"p2", seg.P2}, {"p3", seg.P3}}
		for _, pt := range points {
			if len(pt.v) != 2 {
				errs = append(errs, ValidationError{
					Field:   sfield + "." + pt.name,
					Message: fmt.Sprintf("control point must be an [x, y] pair, got %d values", len(pt.v)),
					Code:    ErrInvalidGeometry,
				})
			}
		}
	}
	return errs
}

func validateEasing(e *EasingSpec, field string) []ValidationError {
	var errs []ValidationError
	switch e.Kind {
	case EasingLinear, EasingHold:
		if len(e.C1) != 0 || len(e.C2) != 0 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("easing %q does not take control points", e.Kind),
				Code:    ErrInvalidEasing,
			})
		}
	case EasingCubicBezier:
		if len(e.C1) != 2 || len(e.C2) != 2 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "cubic_bezier easing requires c1 and c2 as [x, y] pairs",
				Code:    ErrInvalidEasing,
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   field + ".kind",
			Message: fmt.Sprintf("unknown easing kind %q", e.Kind),
			Code:    ErrInvalidEasing,
		})
	}
	return errs
}
