// format.go — fmt.Formatter implementation for the error value.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             kind=<kind> reason=<reason>
//	             details: key1=val1 key2=val2 ...
//	             caused_by: <recursively formatted with %+v>
//	%q       → quoted Error().
//
// Detail keys are printed in sorted order: the store is a map, so sorting is
// what makes verbose output deterministic for logs and tests.
package errkind

import (
	"fmt"
	"io"
	"sort"
)

func (e *errorValue) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

func (e *errorValue) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "kind=%s reason=%s", e.kind, e.reason)

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		_, _ = io.WriteString(w, "\ndetails:")
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, " %s=%v", k, e.details[k])
		}
	}

	// Recurse with %+v so nested values render their own verbose form.
	if e.cause != nil {
		_, _ = fmt.Fprintf(w, "\ncaused_by: %+v", e.cause)
	} else if e.ext != nil {
		_, _ = fmt.Fprintf(w, "\ncaused_by: %+v", e.ext)
	}
}
