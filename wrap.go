// wrap.go — causal wrapping and adapters for arbitrary errors.
//
// Purpose
//   - Build causal chains out of errkind values (Wrap/Unwrap).
//   - Adapt foreign errors into the model (From) without losing
//     errors.Is/As reachability to the original.
//   - Stay policy-free: no logging/HTTP/JSON opinions here.
package errkind

// Wrap returns a new value equal to outer except that its causal link is
// inner. Kinds may mismatch freely: a Domain error can wrap an Infra cause
// and vice versa. If outer already had a cause it is replaced, not appended;
// callers build chains by repeatedly wrapping each new outer error over the
// previous result.
//
// Nil handling: a nil outer yields inner unchanged; a nil inner yields outer
// unchanged.
func Wrap(inner, outer Error) Error {
	if outer == nil {
		return inner
	}
	if inner == nil {
		return outer
	}
	return outer.WithCause(inner)
}

// Unwrap returns the recorded cause of e and whether one is present.
// Identical to e.CausedBy(), with nil safety.
func Unwrap(e Error) (Error, bool) {
	if e == nil {
		return nil, false
	}
	return e.CausedBy()
}

// From adapts any error into an errkind Error.
//   - nil → nil
//   - errkind Error → returned as-is (same value)
//   - other error → Infra external value recording the message in details;
//     the original stays reachable through Unwrap() for errors.Is/As, but is
//     not part of the errkind-level chain seen by Flatten/RootCause/ToMap.
//
// From adapts the value it is given; it does not search %w-wrapped chains
// for a buried errkind value.
func From(err error) Error {
	if err == nil {
		return nil
	}
	if xe, ok := err.(Error); ok {
		return xe
	}
	v := newValue(KindInfra, ReasonExternal, map[string]any{"error": err.Error()})
	v.ext = err
	return v
}

// With attaches a single detail key to any error immutably, adapting foreign
// errors via From first. nil input yields nil.
func With(err error, key string, val any) Error {
	e := From(err)
	if e == nil {
		return nil
	}
	return e.With(key, val)
}
