// Package diagnostic provides structured warnings and errors for the
// staging generator's CLI surface.
//
// Generation-time failures (name collisions, empty records, field
// mismatches, unresolvable config types) are reported here per record;
// a record with error diagnostics fails fail-fast and nothing partial
// is emitted for it.
package diagnostic
