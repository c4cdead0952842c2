package canon

import (
	"slices"

	"github.com/animtools/animcanon/internal/anim"
)

// memoEntry pairs an input timeline with its canonical result. The table
// holds shared handles only; it never copies or owns timeline data.
type memoEntry[T any] struct {
	key    *anim.Animatable[T]
	result *anim.Animatable[T]
}

// memoTable is the per-type memo table mapping an input timeline to its
// canonical optimized timeline. Buckets are keyed by structural hash and
// resolved by exact structural equality, so hash collisions cost a
// comparison, never a wrong answer. Entries are never evicted or mutated.
type memoTable[T any] struct {
	cmp     anim.Comparer[T]
	buckets map[uint64][]memoEntry[T]
	stats   CacheStats
}

func newMemoTable[T any](cmp anim.Comparer[T]) memoTable[T] {
	return memoTable[T]{
		cmp:     cmp,
		buckets: make(map[uint64][]memoEntry[T]),
	}
}

// lookup returns the canonical result for a structurally equal key, if
// one has been interned.
func (t *memoTable[T]) lookup(hash uint64, v *anim.Animatable[T]) (*anim.Animatable[T], bool) {
	for _, e := range t.buckets[hash] {
		if anim.AnimatableEqual(t.cmp, e.key, v) {
			return e.result, true
		}
	}
	return nil, false
}

// insert interns key -> result under the given structural hash.
func (t *memoTable[T]) insert(hash uint64, key, result *anim.Animatable[T]) {
	t.buckets[hash] = append(t.buckets[hash], memoEntry[T]{key: key, result: result})
	t.stats.Entries++
}

// getOptimized implements the canonicalization protocol for one memo
// table: consult the table, canonicalize on miss, intern, return the
// shared handle. post, when non-nil, post-processes the optimized
// timeline before it is interned (the path-geometry reconciler).
func getOptimized[T any](t *memoTable[T], v *anim.Animatable[T], post func(*anim.Animatable[T]) *anim.Animatable[T]) *anim.Animatable[T] {
	if v == nil || len(v.Keyframes) == 0 {
		panic(anim.ViolatedEmptyTimeline())
	}

	hash := anim.AnimatableHash(t.cmp, v)
	if result, ok := t.lookup(hash, v); ok {
		t.stats.Hits++
		return result
	}
	t.stats.Misses++

	result := v
	if anim.IsAnimated(t.cmp, v) {
		optimized := slices.Collect(Optimize(t.cmp, v.InitialValue, v.Keyframes))
		if !anim.KeyframesEqual(t.cmp, optimized, v.Keyframes) {
			// PropertyIndex is cleared on synthesized timelines: it does
			// not survive deduplication.
			result = &anim.Animatable[T]{
				InitialValue: v.InitialValue,
				Keyframes:    optimized,
			}
		}
	}

	if post != nil {
		if reconciled := post(result); reconciled != result {
			// A reconciled timeline is a new structural value whose
			// collapsed geometries may coincide where the input's did
			// not. Intern it under its own hash as its own canonical
			// representative, so re-canonicalizing the returned handle
			// is a hit on this entry instead of a second optimization
			// pass that could elide further and break handle stability.
			rhash := anim.AnimatableHash(t.cmp, reconciled)
			if canonical, ok := t.lookup(rhash, reconciled); ok {
				reconciled = canonical
			} else {
				t.insert(rhash, reconciled, reconciled)
			}
			result = reconciled
		}
	}

	t.insert(hash, v, result)
	return result
}

// CacheStats reports the lookup traffic and size of one memo table.
type CacheStats struct {
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
	Entries int `json:"entries"`
}

// Stats aggregates the per-type memo table statistics of one
// Canonicalizer.
type Stats struct {
	Scalars CacheStats `json:"scalars"`
	Colors  CacheStats `json:"colors"`
	Paths   CacheStats `json:"paths"`
}
