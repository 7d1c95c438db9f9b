// Package errkind defines an immutable error value with two kinds (Domain,
// Infra), a symbolic reason, a details map, and an optional causal link.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As via Unwrap.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Non-mutating ergonomics: every builder returns a new value.
//   - Totality: accessors never fail; traversal always terminates.
package errkind

// Kind discriminates the two error variants.
//
// The zero Kind is reserved for "not an errkind error" (see KindOf); valid
// values are KindDomain and KindInfra, fixed at construction and never
// changed afterwards.
type Kind uint8

const (
	// KindDomain marks a violated business rule.
	KindDomain Kind = iota + 1
	// KindInfra marks a failure of the execution substrate
	// (e.g., a dependency being down).
	KindInfra
)

// String returns the stable lowercase name of the kind. It is the value
// emitted under the "kind" key by ToMap.
func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindInfra:
		return "infra"
	default:
		return "unknown"
	}
}

// Reason is a stable symbolic identifier naming a specific error condition.
//
// Reasons are stringly-typed for stability across serialization boundaries
// and to avoid a central enum with breaking changes. Projects define their
// own; snake_case by convention. The empty Reason is never valid.
type Reason string

// Error is the immutable error value contract.
//
// All builder methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and never alter the receiver. This guarantees thread
// safety for shared error values without synchronization, and makes causal
// chains acyclic by construction.
//
// The only implementation lives in this package; the interface exists so
// callers can branch on kind without depending on the concrete type.
type Error interface {
	// error provides the concise "kind: reason[: cause]" message string.
	// Rich export (JSON, structured logs) belongs to adapters built on ToMap.
	error

	// Kind returns the variant discriminator, set once at construction.
	Kind() Kind

	// Reason returns the symbolic identifier, set once at construction.
	Reason() Reason

	// Details returns a COPY of the details map. It is never nil: absence
	// of details is represented as an empty map. Callers may freely mutate
	// the returned map without affecting the stored details (copy-on-read).
	Details() map[string]any

	// MapDetails applies fn to a copy of the current details and returns a
	// new Error whose details are fn's result (cloned; nil normalizes to
	// empty). Kind, Reason, and the causal link are preserved unchanged.
	// A panic inside fn propagates to the caller; nothing is suppressed.
	MapDetails(fn func(map[string]any) map[string]any) Error

	// With returns a new Error with a single detail key set. Convenience
	// over MapDetails for the common one-key case.
	//
	// Example:
	//   err = err.With("retried_count", 5)
	With(key string, val any) Error

	// WithCause returns a new Error whose causal link is cause. An existing
	// cause is replaced, not appended; chains are built by repeatedly
	// wrapping each new outer error over the previous result.
	WithCause(cause Error) Error

	// CausedBy returns the recorded cause and whether one is present.
	// Absence is an explicit second return, never a sentinel value.
	CausedBy() (Error, bool)

	// Unwrap exposes the cause to stdlib traversal (errors.Is/As). Values
	// with no recorded cause return nil. Values adapted from foreign errors
	// via From expose the original error here even though it is not part of
	// the errkind-level chain.
	Unwrap() error
}
