// Package document implements the animation-document surface around the
// canonicalizer: parsing timeline documents from JSON or YAML, validating
// their well-formedness, converting them to the anim timeline model, and
// rendering canonicalized results back out.
//
// In the full pipeline the source-format parser and the code emitter are
// separate stages; this package is the minimal in-repo realization of
// their interface so the CLI and the golden harness have a concrete input
// and output surface. It owns no core semantics: everything between
// loading and rendering is delegated to the canon package.
//
// All names (document, target, property) are NFC normalized at the parse
// boundary so equality over names is well defined downstream.
package document
