package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBezierSegment_IsALine(t *testing.T) {
	tests := []struct {
		name    string
		segment BezierSegment
		isLine  bool
	}{
		{
			"evenly spaced line",
			LineSegment(V2(0, 0), V2(10, 0)),
			true,
		},
		{
			"handles collapsed onto endpoints",
			BezierSegment{P0: V2(0, 0), P1: V2(0, 0), P2: V2(10, 5), P3: V2(10, 5)},
			true,
		},
		{
			"diagonal line",
			LineSegment(V2(-3, -3), V2(6, 6)),
			true,
		},
		{
			"curved segment",
			BezierSegment{P0: V2(0, 0), P1: V2(3, 5), P2: V2(7, 5), P3: V2(10, 0)},
			false,
		},
		{
			"colinear but overshooting handle",
			BezierSegment{P0: V2(0, 0), P1: V2(15, 0), P2: V2(7, 0), P3: V2(10, 0)},
			false,
		},
		{
			"colinear but handle behind start",
			BezierSegment{P0: V2(0, 0), P1: V2(-2, 0), P2: V2(7, 0), P3: V2(10, 0)},
			false,
		},
		{
			"degenerate point segment",
			BezierSegment{P0: V2(4, 4), P1: V2(4, 4), P2: V2(4, 4), P3: V2(4, 4)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isLine, tt.segment.IsALine())
		})
	}
}

func TestPathGeometryEqual(t *testing.T) {
	line := LineSegment(V2(0, 0), V2(10, 0))
	back := LineSegment(V2(10, 0), V2(0, 0))

	tests := []struct {
		name  string
		a, b  PathGeometry
		equal bool
	}{
		{"both empty", PathGeometry{}, PathGeometry{}, true},
		{"same segments", PathGeometry{Segments: []BezierSegment{line, back}}, PathGeometry{Segments: []BezierSegment{line, back}}, true},
		{"different length", PathGeometry{Segments: []BezierSegment{line}}, PathGeometry{Segments: []BezierSegment{line, back}}, false},
		{"order matters", PathGeometry{Segments: []BezierSegment{line, back}}, PathGeometry{Segments: []BezierSegment{back, line}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, PathGeometryEqual(tt.a, tt.b))
		})
	}
}

func TestLineSegment_ControlPointSpacing(t *testing.T) {
	s := LineSegment(V2(0, 0), V2(9, 3))
	assert.Equal(t, V2(3, 1), s.P1)
	assert.Equal(t, V2(6, 2), s.P2)
}
