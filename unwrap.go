// unwrap.go — causal chain traversal.
//
// The chain is a singly-linked list of immutable values: wrapping always
// creates a new outer value over an already-constructed inner one, so cycles
// are structurally impossible and every walk terminates. No seen-sets or
// depth caps are needed here, unlike traversal over arbitrary error graphs.
package errkind

// Flatten returns the causal chain of e as a slice: e first (outermost),
// each successive cause after it, the root cause last. An error with no
// cause yields a single-element slice. The result is a snapshot; each call
// walks the chain from scratch. Flatten(nil) returns nil.
func Flatten(e Error) []Error {
	if e == nil {
		return nil
	}

	out := make([]Error, 0, 4)
	for cur := e; ; {
		out = append(out, cur)
		next, ok := cur.CausedBy()
		if !ok {
			return out
		}
		cur = next
	}
}

// RootCause returns the innermost error of e's causal chain: the last
// element of Flatten(e). It is e itself when e has no cause, and nil only
// for nil input.
func RootCause(e Error) Error {
	if e == nil {
		return nil
	}
	for {
		next, ok := e.CausedBy()
		if !ok {
			return e
		}
		e = next
	}
}

// Walk visits each error in e's chain from outermost to root, stopping early
// if visit returns false. nil e or nil visit is a no-op.
func Walk(e Error, visit func(Error) bool) {
	if visit == nil {
		return
	}
	for cur := e; cur != nil; {
		if !visit(cur) {
			return
		}
		cur, _ = cur.CausedBy()
	}
}
