package stage

import "errors"

// Generation-time errors. All of them are contract violations between
// the core and its caller: the affected record's generation unit fails
// entirely and nothing partial is emitted.
var (
	// ErrEmptyRecord rejects records with no fields. A zero-field
	// record has no meaningful staging semantics; rejecting it is a
	// policy choice, not a structural necessity.
	ErrEmptyRecord = errors.New("record has no fields")

	// ErrNameCollision reports two distinct source records deriving
	// the same staging type name within one generation unit.
	ErrNameCollision = errors.New("staging type name collision")

	// ErrFieldMismatch reports a source schema and staging schema
	// whose field sequences diverge in length, order, or names. This
	// indicates the transformer and synthesizer were handed
	// inconsistent inputs.
	ErrFieldMismatch = errors.New("source and staging field lists diverge")
)
