// Package canon implements the animatable canonicalizer: the optimization
// stage that reduces per-property keyframe timelines to their smallest
// structurally-equivalent form and interns the results so structurally
// identical timelines collapse to one shared canonical handle.
//
// ARCHITECTURE:
//
// Single-Threaded Pure Core:
// A Canonicalizer owns mutable per-type memo tables and is intended to be
// constructed fresh for each generation run and used from one goroutine.
// There is no locking, no I/O, and no suspension point anywhere in this
// package; every operation is a deterministic function of its structural
// input.
//
// Request flow:
//  1. GetOptimized* consults the per-type memo table using structural
//     hash + exact equality. A hit returns the stored canonical handle,
//     identical (pointer-equal) for all structurally equal inputs.
//  2. On miss, static timelines canonicalize to themselves. Animated
//     timelines run through the single-pass keyframe elision, and a
//     result structurally equal to the input canonicalizes to the input
//     itself so no useless copy is interned.
//  3. Path-geometry timelines additionally pass through the segment
//     reconciler, which repairs exactly one degenerate pattern (a line
//     immediately retraced by its own reverse) so the timeline becomes
//     interpolation-legal.
//
// Memo entries are never evicted or mutated; the table only grows, for
// the lifetime of the Canonicalizer that owns it. The downstream
// object-graph stage relies on handle identity to detect sharing without
// re-comparing structurally.
//
// The window trimmer (TrimKeyframes) is an independent utility consumed
// directly by the emission stage and is intentionally not cached.
//
// Malformed input (an empty keyframe sequence, an unrecognized easing
// kind) is an upstream contract violation and panics with an
// *anim.InvariantError; see the anim package.
package canon
