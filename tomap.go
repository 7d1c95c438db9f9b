// tomap.go — recursive conversion to a plain structured map.
package errkind

// Fixed keys of the ToMap representation. Key names are a compatibility
// contract with consumers (log/serialization adapters); never rename them.
const (
	keyKind     = "kind"
	keyReason   = "reason"
	keyDetails  = "details"
	keyCausedBy = "caused_by"
)

// ToMap converts e and its entire causal chain into a plain map with the
// fixed keys kind, reason, details, caused_by. The caused_by key is always
// present: nil marks an absent cause, otherwise it holds the recursively
// converted map of the inner error (a full materialization, never an Error
// reference). Kind is rendered via Kind.String and reason as a plain string
// so the result is directly consumable by generic encoders.
//
// Recursion terminates because chains are acyclic and finite by
// construction. ToMap(nil) returns nil.
func ToMap(e Error) map[string]any {
	if e == nil {
		return nil
	}

	m := map[string]any{
		keyKind:     e.Kind().String(),
		keyReason:   string(e.Reason()),
		keyDetails:  e.Details(),
		keyCausedBy: nil,
	}
	if cause, ok := e.CausedBy(); ok {
		m[keyCausedBy] = ToMap(cause)
	}
	return m
}
