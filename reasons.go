// reasons.go — minimal, reusable reason definitions for the errkind core.
//
// Intent:
//   - Provide a small set of widely useful, human-readable reasons.
//   - Keep semantics open-ended: no HTTP/status/retry policy in core.
//   - Allow projects to define their own reasons without a central registry.
//
// Conventions (documented, not enforced here):
//   - Reasons are lowercase snake_case ASCII.
//   - The empty string is never a valid reason; constructors reject it.
package errkind

// NOTE: the Reason type is declared in error.go.

// Domain / validation
const (
	ReasonInvalid   Reason = "invalid"
	ReasonNotFound  Reason = "not_found"
	ReasonConflict  Reason = "conflict"
	ReasonForbidden Reason = "forbidden"
)

// Availability / time
const (
	ReasonTimeout     Reason = "timeout"
	ReasonUnavailable Reason = "unavailable"
)

// Internal / meta
const (
	ReasonInternal Reason = "internal"
	ReasonExternal Reason = "external"
)

// allBuiltinReasons is the ordered set of reasons the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
var allBuiltinReasons = []Reason{
	// Domain / validation (4)
	ReasonInvalid,
	ReasonNotFound,
	ReasonConflict,
	ReasonForbidden,

	// Availability / time (2)
	ReasonTimeout,
	ReasonUnavailable,

	// Internal / meta (2)
	ReasonInternal,
	ReasonExternal,
}

// builtinReasonSet provides O(1) membership checks for built-ins.
var builtinReasonSet = map[Reason]struct{}{
	ReasonInvalid:     {},
	ReasonNotFound:    {},
	ReasonConflict:    {},
	ReasonForbidden:   {},
	ReasonTimeout:     {},
	ReasonUnavailable: {},
	ReasonInternal:    {},
	ReasonExternal:    {},
}

// BuiltinReasons returns a defensive copy of the built-in reasons in a
// stable order.
func BuiltinReasons() []Reason {
	out := make([]Reason, len(allBuiltinReasons))
	copy(out, allBuiltinReasons)
	return out
}

// IsBuiltin reports whether r is one of the built-in core reasons. This is
// ergonomics-only; projects may define and use custom reasons freely.
func (r Reason) IsBuiltin() bool {
	_, ok := builtinReasonSet[r]
	return ok
}
