// Package harness provides a conformance testing framework for the
// canonicalizer pipeline.
//
// Scenarios are YAML files pairing an animation document with an
// optional trim window. Running a scenario trims, canonicalizes, and
// returns the full run output; golden files under testdata/golden
// capture the expected output byte for byte.
//
// Runs are deterministic: scenarios use fixed run tokens instead of
// UUIDv7 generation, and the canonicalizer itself is pure, so the same
// scenario always produces the same snapshot.
package harness
