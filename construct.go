// construct.go — the concrete error value and its constructors.
//
// Scope (tiny core):
//   - One concrete type carrying the kind tag for both variants.
//   - NON-MUTATING builder methods (copy-on-write everywhere).
//   - Core constructors (Domain, Infra) plus a few semantic conveniences.
//   - Keep policy out (no logging/HTTP/JSON/retry policy here).
//
// Notes:
//   - The details map is cloned on every write and read (see details.go).
//   - cause holds the errkind-level causal chain; ext holds an optional
//     foreign error (set by From/Internal) visible only to errors.Is/As.
package errkind

import (
	"fmt"
	"time"
)

// panicEmptyReason is the message raised when a constructor receives an
// empty reason. An empty reason is a programmer error, never a runtime
// condition, so it fails loudly instead of returning an error.
const panicEmptyReason = "errkind: reason must be a non-empty identifier"

// errorValue is the single concrete implementation of Error. Both variants
// share it; kind is the discriminator. All fields are set at construction
// (or by clone-and-set builders) and never mutated afterwards.
type errorValue struct {
	kind    Kind
	reason  Reason
	details map[string]any // immutable once stored; nil means empty
	cause   Error          // errkind-level causal link
	ext     error          // foreign cause, stdlib traversal only
}

// compile-time guarantee that *errorValue implements Error
var _ Error = (*errorValue)(nil)

func newValue(kind Kind, reason Reason, details map[string]any) *errorValue {
	if reason == "" {
		panic(panicEmptyReason)
	}
	return &errorValue{
		kind:    kind,
		reason:  reason,
		details: cloneDetails(details),
	}
}

// Domain creates a Domain-kind error: a violated business rule.
// details may be nil for none; the map is defensively cloned.
// Panics if reason is empty.
func Domain(reason Reason, details map[string]any) Error {
	return newValue(KindDomain, reason, details)
}

// Infra creates an Infra-kind error: a failure of the execution substrate.
// Same contract as Domain.
func Infra(reason Reason, details map[string]any) Error {
	return newValue(KindInfra, reason, details)
}

// ------ standard error interface

func (e *errorValue) Error() string {
	switch {
	case e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.kind, e.reason, e.cause)
	case e.ext != nil:
		return fmt.Sprintf("%s: %s: %v", e.kind, e.reason, e.ext)
	default:
		return fmt.Sprintf("%s: %s", e.kind, e.reason)
	}
}

// Unwrap exposes the cause to errors.Is/As. The errkind chain takes
// precedence; a foreign cause recorded by From is exposed at the chain end.
func (e *errorValue) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	if e.ext != nil {
		return e.ext
	}
	return nil
}

// ------ accessors (total, pure)

func (e *errorValue) Kind() Kind     { return e.kind }
func (e *errorValue) Reason() Reason { return e.reason }

// Details returns a copy; never nil (absence is the empty map).
func (e *errorValue) Details() map[string]any {
	if len(e.details) == 0 {
		return map[string]any{}
	}
	return cloneDetails(e.details)
}

func (e *errorValue) CausedBy() (Error, bool) {
	if e.cause == nil {
		return nil, false
	}
	return e.cause, true
}

// ------ builders (copy-on-write)

// MapDetails hands fn a copy of the current details and stores a clone of
// the result on a new value. fn may add, remove, or update keys arbitrarily;
// a nil result normalizes to the empty map. Panics inside fn propagate.
func (e *errorValue) MapDetails(fn func(map[string]any) map[string]any) Error {
	n := e.clone()
	n.details = cloneDetails(fn(e.Details()))
	return n
}

func (e *errorValue) With(key string, val any) Error {
	n := e.clone()
	d := n.details
	if d == nil {
		d = make(map[string]any, 1)
	}
	d[key] = val
	n.details = d
	return n
}

// WithCause replaces any existing causal link with cause.
func (e *errorValue) WithCause(cause Error) Error {
	n := e.clone()
	n.cause = cause
	return n
}

func (e *errorValue) clone() *errorValue {
	n := *e
	// fresh details map so builders on the clone never alias the original
	n.details = cloneDetails(e.details)
	return &n
}

// -----------------------------------------------------------------------------
// Semantic constructors — Domain
// -----------------------------------------------------------------------------

// NotFound creates a Domain not_found error for a missing entity.
func NotFound(entity string, id any) Error {
	return Domain(ReasonNotFound, map[string]any{"entity": entity, "id": id})
}

// Invalid indicates syntactically or semantically invalid input.
func Invalid(field, why string) Error {
	return Domain(ReasonInvalid, map[string]any{"field": field, "why": why})
}

// -----------------------------------------------------------------------------
// Semantic constructors — Infra
// -----------------------------------------------------------------------------

// Unavailable indicates a transient dependency failure.
func Unavailable(service string) Error {
	return Infra(ReasonUnavailable, map[string]any{"service": service})
}

// Timeout indicates an operation exceeded its time budget. Records duration.
func Timeout(d time.Duration) Error {
	return Infra(ReasonTimeout, map[string]any{"timeout_ms": d.Milliseconds()})
}

// Internal wraps an arbitrary error as an Infra internal failure. An errkind
// cause joins the causal chain; a foreign one stays reachable via errors.Is.
// Internal(nil) is a plain internal error with no cause.
func Internal(err error) Error {
	v := newValue(KindInfra, ReasonInternal, nil)
	switch c := err.(type) {
	case nil:
	case Error:
		v.cause = c
	default:
		v.ext = c
	}
	return v
}
