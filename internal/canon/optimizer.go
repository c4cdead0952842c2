package canon

import (
	"iter"

	"github.com/animtools/animcanon/internal/anim"
)

// Optimize performs a single forward pass over a keyframe sequence and
// yields only the keyframes that change the realized animation.
//
// Walking with previousValue seeded from the initial value and a current
// keyframe cursor seeded from the first keyframe, each keyframe is one of:
//
//   - a landing frame (value differs from previousValue): it completes a
//     visible change and is emitted unchanged;
//   - a launch frame (value equals previousValue but differs from the
//     next keyframe's value): a ramp to a new value starts here, so it is
//     emitted with its easing forced to Linear - the segment up to this
//     point is constant, making the original easing unobservable;
//   - redundant (value unchanged in both directions): emitted not at all.
//
// The trailing keyframe is emitted only if at least one prior keyframe
// was emitted and its value differs from the running previous value.
//
// The result is a lazy, finite, single-pass sequence; materialize it with
// slices.Collect if it must be walked more than once. Elision never
// changes sampled output at any frame of the timeline's domain.
func Optimize[T any](c anim.Comparer[T], initialValue T, keyframes []anim.Keyframe[T]) iter.Seq[anim.Keyframe[T]] {
	if len(keyframes) == 0 {
		panic(anim.ViolatedEmptyTimeline())
	}

	return func(yield func(anim.Keyframe[T]) bool) {
		previous := initialValue
		current := keyframes[0]
		emitted := false

		for _, next := range keyframes[1:] {
			switch {
			case !c.Equal(current.Value, previous):
				// Landing frame: the displayed value changes here.
				if !yield(current) {
					return
				}
				emitted = true
			case !c.Equal(current.Value, next.Value):
				// Launch frame: canonicalize the unobservable easing.
				launch := current
				launch.Easing = anim.LinearEasing()
				if !yield(launch) {
					return
				}
				emitted = true
			}
			previous = current.Value
			current = next
		}

		if emitted && !c.Equal(current.Value, previous) {
			yield(current)
		}
	}
}
