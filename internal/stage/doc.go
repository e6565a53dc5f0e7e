// Package stage implements the two-stage staging core.
//
// Pipeline position: analyze → stage → gen.
//  1. The Transformer rewrites a source record's field list into the
//     companion staging type: every field wrapped in the outcome
//     container, names and order preserved.
//  2. The Synthesizer emits the conversion blueprint that drains a
//     staging value back into the source record, collecting every
//     field failure instead of stopping at the first one.
//
// Both stages are pure single-pass walks over the field list and share
// the per-generation-unit name registry. Compile turns a blueprint
// into an executable closure for syntax-independent testing.
package stage
