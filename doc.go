// doc.go — package documentation for errkind
//
// Package errkind models application errors as immutable, inspectable data
// values. Every error carries three things: a Kind (Domain for violated
// business rules, Infra for failures of the execution substrate), a Reason
// (a stable symbolic identifier), and a Details map of supplementary
// diagnostic data. An error may additionally record the error that caused
// it, forming a linked causal history — a stack trace expressed in domain
// terms rather than call frames.
//
// # Immutability
//
// Values are never mutated after construction. Every "modifying" operation
// (With, MapDetails, WithCause, Wrap) is copy-on-write: it returns a NEW
// value and leaves the receiver untouched. Two consequences:
//
//   - Errors can be shared freely across goroutines without synchronization.
//   - Causal chains are acyclic by construction: wrapping always creates a
//     new outer value over an already-immutable inner one, so a cycle is
//     structurally impossible and traversal always terminates.
//
// Details follow the same discipline: the map is cloned on write and on
// read, so neither the caller's input map nor the map returned by Details()
// can alias internal state.
//
// # Typical usage
//
//	err := errkind.Infra("db_down", map[string]any{"retried_count": 5})
//	err = errkind.Wrap(err, errkind.Domain("checkout_failed", nil))
//
//	for _, e := range errkind.Flatten(err) { ... } // outermost → root
//	root := errkind.RootCause(err)                 // the db_down value
//	payload := errkind.ToMap(err)                  // hand-off to logs/encoders
//
// # Interop
//
// errkind values implement Unwrap() error, so errors.Is and errors.As
// traverse causal chains as usual. Foreign errors can be adapted with
// From(err), which keeps the original reachable for errors.Is/As while the
// errkind-level chain (Flatten, RootCause, ToMap) stays composed of errkind
// values only.
//
// # Policy-free core
//
// The core stays free of logging, HTTP status mapping, localization, and
// wire formats. ToMap and the %+v fmt verb are the hand-off points for
// adapters that own those concerns.
package errkind
