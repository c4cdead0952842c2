package canon

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animtools/animcanon/internal/anim"
)

func frames(kfs []anim.Keyframe[anim.Scalar]) []float64 {
	// Nil for empty input, so trims that drop everything compare equal
	// to a nil want.
	var out []float64
	for _, kf := range kfs {
		out = append(out, kf.Frame)
	}
	return out
}

func TestTrimKeyframes(t *testing.T) {
	input := []anim.Keyframe[anim.Scalar]{
		skf(0, 1, anim.LinearEasing()),
		skf(10, 2, anim.LinearEasing()),
		skf(20, 3, anim.LinearEasing()),
		skf(30, 4, anim.LinearEasing()),
	}

	tests := []struct {
		name       string
		keyframes  []anim.Keyframe[anim.Scalar]
		start, end float64
		want       []float64
	}{
		{
			// The keyframe at 10 is the latest at or before the window
			// start and supplies the starting value; 30 is the first at
			// or beyond the window end and closes the iteration.
			"window between keyframes",
			input, 12, 25,
			[]float64{10, 20, 30},
		},
		{
			"window start on a keyframe",
			input, 10, 25,
			[]float64{10, 20, 30},
		},
		{
			"window end on a keyframe",
			input, 12, 20,
			[]float64{10, 20},
		},
		{
			"window covers everything",
			input, 0, 30,
			[]float64{0, 10, 20, 30},
		},
		{
			"window beyond last keyframe",
			input, 12, 99,
			[]float64{10, 20, 30},
		},
		{
			"window before first keyframe",
			input, -10, -5,
			[]float64{0},
		},
		{
			// No keyframe lies inside or beyond the window, so the
			// pending candidate is never flushed; the caller falls back
			// to the timeline's final value.
			"window after last keyframe",
			input, 40, 50,
			nil,
		},
		{
			"empty input",
			nil, 0, 10,
			nil,
		},
		{
			"degenerate window on keyframe",
			input, 20, 20,
			[]float64{20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := slices.Collect(TrimKeyframes(tt.keyframes, tt.start, tt.end))
			assert.Equal(t, tt.want, frames(out))
		})
	}
}

func TestTrimKeyframes_AtMostOneLeadingKeyframe(t *testing.T) {
	input := []anim.Keyframe[anim.Scalar]{
		skf(0, 1, anim.LinearEasing()),
		skf(4, 2, anim.LinearEasing()),
		skf(8, 3, anim.LinearEasing()),
		skf(16, 4, anim.LinearEasing()),
	}

	out := slices.Collect(TrimKeyframes(input, 9, 20))
	leading := 0
	for _, kf := range out {
		if kf.Frame <= 9 {
			leading++
		}
	}
	assert.Equal(t, 1, leading, "only the latest keyframe before the window may survive")
	assert.Equal(t, []float64{8, 16}, frames(out))
}

func TestTrimKeyframes_LazyShortCircuit(t *testing.T) {
	input := []anim.Keyframe[anim.Scalar]{
		skf(0, 1, anim.LinearEasing()),
		skf(10, 2, anim.LinearEasing()),
		skf(20, 3, anim.LinearEasing()),
	}

	var seen []float64
	for kf := range TrimKeyframes(input, 0, 30) {
		seen = append(seen, kf.Frame)
		break
	}
	assert.Equal(t, []float64{0}, seen)
}
