// detail_field.go — optional, type-safe detail helpers.
//
// Overview
//
//	DetailField provides an *optional* ergonomic layer for attaching and
//	reading strongly-typed detail values on errkind errors. It does not
//	replace the plain string/any API (With, MapDetails) — it complements it.
//
// Usage
//
//	var (
//	    FRetried = errkind.Detail[int]("retried_count")
//	    FTenant  = errkind.Detail[string]("tenant")
//	)
//
//	err := errkind.Infra("db_down", nil)
//	err = FRetried.Set(err, 5)
//	n, ok := FRetried.Get(err) // n=5, ok=true
//
// Caveats
//   - Get relies on Go type assertions: the dynamic type stored in the
//     details map must match T exactly; no implicit conversions are made.
package errkind

import "fmt"

// DetailField is a small, zero-policy helper for type-safe detail access.
// T is the Go type you intend to store/retrieve for the given key.
type DetailField[T any] struct {
	key string
}

// Detail constructs a DetailField[T] for a given key.
// Keys SHOULD be snake_case for consistency across logs/exports.
func Detail[T any](key string) DetailField[T] {
	return DetailField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f DetailField[T]) Key() string { return f.key }

// Set attaches (key = val) to e and returns a NEW Error. A nil e yields nil.
func (f DetailField[T]) Set(e Error, val T) Error {
	if e == nil {
		return nil
	}
	return e.With(f.key, any(val))
}

// Get retrieves the typed value for this field from e. Returns (zero, false)
// if e is nil, the field is absent, or the stored value has a different
// dynamic type than T.
func (f DetailField[T]) Get(e Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.Details()[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics with a descriptive error if
// the field is missing or has a different dynamic type than T.
//
// Use sparingly — it is intended for test code or contexts where absence is
// a programming error rather than a runtime condition.
func (f DetailField[T]) MustGet(e Error) T {
	var zero T
	if e == nil {
		panic(fmt.Errorf("errkind.DetailField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := e.Details()[f.key]
	if !ok {
		panic(fmt.Errorf("errkind.DetailField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("errkind.DetailField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
