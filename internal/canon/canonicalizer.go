package canon

import "github.com/animtools/animcanon/internal/anim"

// Canonicalizer owns the per-type memo tables for one generation run.
// Construct one per run with New; it is not safe for concurrent use.
type Canonicalizer struct {
	scalars memoTable[anim.Scalar]
	colors  memoTable[anim.Color]
	paths   memoTable[anim.PathGeometry]
}

// New creates a Canonicalizer with empty memo tables.
func New() *Canonicalizer {
	return &Canonicalizer{
		scalars: newMemoTable(anim.Scalars),
		colors:  newMemoTable(anim.Colors),
		paths:   newMemoTable(anim.Paths),
	}
}

// GetOptimizedScalar returns the canonical form of a scalar timeline.
// Structurally equal inputs return the identical handle for the lifetime
// of this Canonicalizer.
func (c *Canonicalizer) GetOptimizedScalar(v *anim.Animatable[anim.Scalar]) *anim.Animatable[anim.Scalar] {
	return getOptimized(&c.scalars, v, nil)
}

// GetOptimizedColor returns the canonical form of a color timeline.
func (c *Canonicalizer) GetOptimizedColor(v *anim.Animatable[anim.Color]) *anim.Animatable[anim.Color] {
	return getOptimized(&c.colors, v, nil)
}

// GetOptimizedPathGeometry returns the canonical form of a path-geometry
// timeline. The optimized timeline is additionally routed through the
// segment reconciler before being interned, so a degenerate retraced-line
// timeline comes back interpolation-legal.
func (c *Canonicalizer) GetOptimizedPathGeometry(v *anim.Animatable[anim.PathGeometry]) *anim.Animatable[anim.PathGeometry] {
	return getOptimized(&c.paths, v, reconcileSegments)
}

// Stats returns the current memo table statistics.
func (c *Canonicalizer) Stats() Stats {
	return Stats{
		Scalars: c.scalars.stats,
		Colors:  c.colors.stats,
		Paths:   c.paths.stats,
	}
}
