// Package outcome provides the runtime types referenced by generated
// staging code: a two-variant Result container, per-field error pairs,
// and the ordered error list returned by generated conversions.
package outcome

// Result holds exactly one of a value of T or an error of E.
// The zero value is the error variant holding E's zero value, so an
// unset staging field reads as "failed" rather than as a silent success.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Result holding the value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a Result holding the error e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r holds a value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r holds an error.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Unwrap returns the held value. The value is T's zero value when r is
// the error variant; callers must check IsOk first.
func (r Result[T, E]) Unwrap() T { return r.value }

// UnwrapErr returns the held error. The error is E's zero value when r
// is the value variant; callers must check IsErr first.
func (r Result[T, E]) UnwrapErr() E { return r.err }

// Get returns the held value and whether r holds one.
func (r Result[T, E]) Get() (T, bool) { return r.value, r.ok }

// FieldError pairs a failed field's name with its error. Field is empty
// for errors that could not be associated with a specific field.
type FieldError[E any] struct {
	Field string
	Err   E
}

// ErrorList is the ordered collection of per-field errors produced by a
// generated conversion. Entries appear in field-declaration order,
// followed by any additional (field-less) errors. Generated conversions
// return a nil ErrorList on success and a non-empty one on failure;
// they never return an empty non-nil list.
type ErrorList[E any] []FieldError[E]

// Add appends an error for the named field and returns the extended list.
func (l ErrorList[E]) Add(field string, err E) ErrorList[E] {
	return append(l, FieldError[E]{Field: field, Err: err})
}

// Fields returns the field names in the list, in order.
func (l ErrorList[E]) Fields() []string {
	if len(l) == 0 {
		return nil
	}

	fields := make([]string, len(l))
	for i, fe := range l {
		fields[i] = fe.Field
	}

	return fields
}
