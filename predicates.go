// predicates.go — kind and reason guards over arbitrary errors.
//
// Scope:
//   - Zero-policy helpers that answer common classification questions.
//   - Interop-first: errors.As-based, so guards see through stdlib %w
//     wrapping as well as errkind causal links.
//
// Out of scope (by design): HTTP status mapping, retry policy, logging.
package errkind

import "errors"

// IsError reports whether err is, or wraps, an errkind error value.
func IsError(err error) bool {
	if err == nil {
		return false
	}
	var e Error
	return errors.As(err, &e)
}

// IsDomain reports whether err carries a Domain-kind errkind value.
func IsDomain(err error) bool { return KindOf(err) == KindDomain }

// IsInfra reports whether err carries an Infra-kind errkind value.
func IsInfra(err error) bool { return KindOf(err) == KindInfra }

// KindOf returns the kind of the first errkind value along err's chain, or
// the zero Kind if there is none.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}

// ReasonOf returns the reason of the first errkind value along err's chain,
// or "" if there is none.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	var e Error
	if errors.As(err, &e) {
		return e.Reason()
	}
	return ""
}

// HasReason reports whether any errkind value in err's chain carries the
// given reason.
func HasReason(err error, r Reason) bool {
	if err == nil || r == "" {
		return false
	}
	for err != nil {
		var e Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Reason() == r {
			return true
		}
		err = e.Unwrap()
	}
	return false
}
