package canon

import (
	"iter"

	"github.com/animtools/animcanon/internal/anim"
)

// TrimKeyframes yields the minimal keyframe subsequence sufficient to
// reconstruct the timeline's behavior over [startFrame, endFrame].
//
// Boundary policy:
//
//   - The latest keyframe at or before startFrame is held as a pending
//     candidate; it supplies the correct starting value for the window
//     and is emitted just before the first keyframe inside the window.
//   - A keyframe landing exactly on startFrame anchors the window start
//     by itself: it is emitted immediately and clears the candidate.
//   - Every keyframe inside the window is emitted, up to and including
//     the first one at or beyond endFrame, after which iteration
//     short-circuits.
//
// The result holds at most one keyframe at or before startFrame and, when
// the input has one, reaches a keyframe at or beyond endFrame. Like the
// optimizer output, the sequence is lazy and single-pass.
func TrimKeyframes[T any](keyframes []anim.Keyframe[T], startFrame, endFrame float64) iter.Seq[anim.Keyframe[T]] {
	return func(yield func(anim.Keyframe[T]) bool) {
		var candidate anim.Keyframe[T]
		hasCandidate := false
		windowOpen := false

		for _, kf := range keyframes {
			if !windowOpen {
				switch {
				case kf.Frame == startFrame:
					windowOpen = true
					hasCandidate = false
				case kf.Frame < startFrame:
					candidate = kf
					hasCandidate = true
					continue
				default:
					windowOpen = true
					if hasCandidate {
						if !yield(candidate) {
							return
						}
						hasCandidate = false
					}
				}
			}
			if !yield(kf) {
				return
			}
			if kf.Frame >= endFrame {
				return
			}
		}
	}
}
