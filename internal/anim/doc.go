// Package anim provides the animation value and timeline model for animcanon.
//
// This package contains the value types (vectors, colors, easing, bezier
// path geometry), the keyframe/timeline records, and the structural
// equality engine built on top of them. All other internal packages import
// anim; anim imports nothing internal. This keeps the value model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - All records are immutable once constructed; nothing in this package
//     mutates a Keyframe or Animatable after creation.
//   - Equality is deep and structural, never reference identity.
//     PropertyIndex is deliberately excluded from timeline equality.
//   - Hashes are consistent with equality: structurally equal values
//     always produce equal hashes. Sequence hashes are order-sensitive.
//   - Scalars and colors use total equality; no NaN-tolerant comparison.
package anim
