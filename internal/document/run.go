package document

import (
	"fmt"
	"slices"

	"github.com/animtools/animcanon/internal/anim"
	"github.com/animtools/animcanon/internal/canon"
)

// Output is the result of a document-level canonicalization run.
type Output struct {
	RunToken string   `json:"run_token"`
	Document Document `json:"document"`
	Report   Report   `json:"report"`
}

// Report summarizes what canonicalization did to a document.
type Report struct {
	Timelines       int         `json:"timelines"`
	KeyframesBefore int         `json:"keyframes_before"`
	KeyframesAfter  int         `json:"keyframes_after"`
	SharedTimelines int         `json:"shared_timelines"`
	ReconciledPaths int         `json:"reconciled_paths"`
	Cache           canon.Stats `json:"cache"`
}

// CanonicalizeDocument runs every timeline of a document through the
// canonicalizer and returns the rewritten document plus a run report.
// Timelines whose canonicalized handles coincide are given the same
// canonical id, which is how downstream emission sees sharing.
//
// Returns an error instead of panicking when a timeline violates a
// fatal animation invariant.
func CanonicalizeDocument(doc *Document, tokens canon.TokenGenerator) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*anim.InvariantError); ok {
				out, err = nil, ie
				return
			}
			panic(r)
		}
	}()

	cz := canon.New()

	// Per-type identity maps: canonical handle -> assigned id.
	scalarIDs := map[*anim.Animatable[anim.Scalar]]string{}
	colorIDs := map[*anim.Animatable[anim.Color]]string{}
	pathIDs := map[*anim.Animatable[anim.PathGeometry]]string{}

	result := Document{
		SchemaVersion: doc.SchemaVersion,
		Name:          doc.Name,
		Timelines:     make([]Timeline, 0, len(doc.Timelines)),
	}
	report := Report{Timelines: len(doc.Timelines)}
	shared := 0

	for i := range doc.Timelines {
		tl := &doc.Timelines[i]
		report.KeyframesBefore += len(tl.Keyframes)

		var rewritten Timeline
		switch tl.ValueType {
		case ValueScalar:
			canonical := cz.GetOptimizedScalar(scalarAnimatable(tl))
			id, seen := scalarIDs[canonical]
			if !seen {
				id = fmt.Sprintf("s%d", len(scalarIDs))
				scalarIDs[canonical] = id
			} else {
				shared++
			}
			rewritten = timelineSpec(tl, canonical, scalarSpec, id)
		case ValueColor:
			canonical := cz.GetOptimizedColor(colorAnimatable(tl))
			id, seen := colorIDs[canonical]
			if !seen {
				id = fmt.Sprintf("c%d", len(colorIDs))
				colorIDs[canonical] = id
			} else {
				shared++
			}
			rewritten = timelineSpec(tl, canonical, colorSpecValue, id)
		case ValuePath:
			input := pathAnimatable(tl)
			canonical := cz.GetOptimizedPathGeometry(input)
			id, seen := pathIDs[canonical]
			if !seen {
				id = fmt.Sprintf("p%d", len(pathIDs))
				pathIDs[canonical] = id
			} else {
				shared++
			}
			if pathsReconciled(input, canonical) {
				report.ReconciledPaths++
			}
			rewritten = timelineSpec(tl, canonical, pathSpecValue, id)
		default:
			return nil, ValidationError{
				Field:   fmt.Sprintf("timelines[%d].value_type", i),
				Message: fmt.Sprintf("invalid value type %q", tl.ValueType),
				Code:    ErrValueType,
			}
		}

		report.KeyframesAfter += len(rewritten.Keyframes)
		result.Timelines = append(result.Timelines, rewritten)
	}

	report.SharedTimelines = shared
	report.Cache = cz.Stats()

	return &Output{
		RunToken: tokens.Generate(),
		Document: result,
		Report:   report,
	}, nil
}

// pathsReconciled reports whether canonicalization collapsed a timeline
// with mixed segment counts down to a uniform count, which is exactly
// when the retrace repair fired. Counts are compared as sets, not
// positionally: elision can change the keyframe count before the repair
// runs, so input and canonical keyframes do not line up index by index.
func pathsReconciled(input, canonical *anim.Animatable[anim.PathGeometry]) bool {
	return len(segmentCounts(canonical)) == 1 && len(segmentCounts(input)) > 1
}

func segmentCounts(v *anim.Animatable[anim.PathGeometry]) map[int]struct{} {
	counts := make(map[int]struct{}, 2)
	for i := range v.Keyframes {
		counts[v.Keyframes[i].Value.SegmentCount()] = struct{}{}
	}
	return counts
}

// TrimDocument drops keyframes outside the [startFrame, endFrame)
// window from every timeline, keeping at most one leading keyframe per
// timeline to anchor the start value. The document is rewritten in
// place on a copy; the input is not modified.
func TrimDocument(doc *Document, startFrame, endFrame float64) *Document {
	result := Document{
		SchemaVersion: doc.SchemaVersion,
		Name:          doc.Name,
		Timelines:     make([]Timeline, 0, len(doc.Timelines)),
	}
	for i := range doc.Timelines {
		tl := doc.Timelines[i]
		tl.Keyframes = trimSpecs(tl.Keyframes, startFrame, endFrame)
		result.Timelines = append(result.Timelines, tl)
	}
	return &result
}

// trimSpecs routes document keyframes through the window trimmer.
// Timelines are trimmed at the document layer so a later
// canonicalization pass memoizes the trimmed form.
func trimSpecs(specs []KeyframeSpec, startFrame, endFrame float64) []KeyframeSpec {
	keyframes := make([]anim.Keyframe[int], len(specs))
	for i, kf := range specs {
		keyframes[i] = anim.Keyframe[int]{Frame: kf.Frame, Value: i}
	}
	var kept []KeyframeSpec
	for kf := range canon.TrimKeyframes(keyframes, startFrame, endFrame) {
		kept = append(kept, specs[kf.Value])
	}
	return slices.Clip(kept)
}
