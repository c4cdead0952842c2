package anim

import (
	"encoding/binary"
	"math"
)

// Domain tags for timeline hashing. Writing the domain first keeps hashes
// for different record kinds from colliding on identical payload bytes,
// and the version suffix allows future layout migration.
const (
	domainTimeline = "animcanon/timeline/v1"
	domainKeyframe = "animcanon/keyframe/v1"
)

// FNV-1a 64-bit parameters.
const (
	fnvOffsetBasis = 14695981039346656037
	fnvPrime       = 1099511628211
)

// Hasher accumulates structural hashes as an FNV-1a byte stream. The
// stream is order-sensitive by construction: writing the same fields in a
// different order produces a different hash, so sequence hashes
// distinguish permutations.
type Hasher struct {
	sum uint64
}

// NewHasher returns a Hasher seeded with the FNV-1a offset basis.
func NewHasher() *Hasher {
	return &Hasher{sum: fnvOffsetBasis}
}

// AddByte folds a single byte into the hash.
func (h *Hasher) AddByte(b byte) {
	h.sum ^= uint64(b)
	h.sum *= fnvPrime
}

// AddString folds a string into the hash, followed by a null separator so
// adjacent strings cannot collide across their boundary.
func (h *Hasher) AddString(s string) {
	for i := 0; i < len(s); i++ {
		h.AddByte(s[i])
	}
	h.AddByte(0x00)
}

// AddInt folds an int into the hash as a fixed-width little-endian word.
func (h *Hasher) AddInt(v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
	for _, b := range buf {
		h.AddByte(b)
	}
}

// AddFloat64 folds a float64 into the hash via its IEEE 754 bits.
// Negative zero is normalized to positive zero so that values which
// compare equal hash equal.
func (h *Hasher) AddFloat64(v float64) {
	if v == 0 {
		v = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	for _, b := range buf {
		h.AddByte(b)
	}
}

// Sum64 returns the accumulated hash.
func (h *Hasher) Sum64() uint64 {
	return h.sum
}

func hashScalar(h *Hasher, v Scalar) {
	h.AddFloat64(float64(v))
}

func hashColor(h *Hasher, v Color) {
	h.AddFloat64(v.R)
	h.AddFloat64(v.G)
	h.AddFloat64(v.B)
	h.AddFloat64(v.A)
}

func hashVector2(h *Hasher, v Vector2) {
	h.AddFloat64(v.X)
	h.AddFloat64(v.Y)
}

func hashVector3(h *Hasher, v Vector3) {
	h.AddFloat64(v.X)
	h.AddFloat64(v.Y)
	h.AddFloat64(v.Z)
}

// hashEasing folds an easing descriptor into the hash. An unrecognized
// kind is a contract violation from the upstream parsing stage.
func hashEasing(h *Hasher, e Easing) {
	if !e.Kind.Known() {
		panic(violatedUnknownEasing(e.Kind))
	}
	h.AddByte(byte(e.Kind))
	hashVector2(h, e.C1)
	hashVector2(h, e.C2)
}

func hashPathGeometry(h *Hasher, g PathGeometry) {
	h.AddInt(len(g.Segments))
	for _, s := range g.Segments {
		hashVector2(h, s.P0)
		hashVector2(h, s.P1)
		hashVector2(h, s.P2)
		hashVector2(h, s.P3)
	}
}

// HashKeyframe folds one keyframe into the hash.
func HashKeyframe[T any](c Comparer[T], h *Hasher, k Keyframe[T]) {
	h.AddString(domainKeyframe)
	h.AddFloat64(k.Frame)
	c.Hash(h, k.Value)
	hashVector3(h, k.SpatialIn)
	hashVector3(h, k.SpatialOut)
	hashEasing(h, k.Easing)
}

// HashKeyframes folds a keyframe sequence into the hash. The fold is
// order-sensitive, so sequences that are permutations of each other hash
// differently.
func HashKeyframes[T any](c Comparer[T], h *Hasher, keyframes []Keyframe[T]) {
	h.AddInt(len(keyframes))
	for _, k := range keyframes {
		HashKeyframe(c, h, k)
	}
}

// AnimatableHash computes the structural hash of a timeline, consistent
// with AnimatableEqual: PropertyIndex is excluded.
func AnimatableHash[T any](c Comparer[T], v *Animatable[T]) uint64 {
	h := NewHasher()
	h.AddString(domainTimeline)
	c.Hash(h, v.InitialValue)
	HashKeyframes(c, h, v.Keyframes)
	return h.Sum64()
}
