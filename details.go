// details.go — defensive cloning for the details map.
//
// The details store is a plain map[string]any treated as immutable once
// published: every write path stores a fresh clone, every read path hands
// out a fresh clone. Nested map[string]any values are cloned recursively so
// no internal reference ever leaks.
package errkind

// cloneDetails returns a deep copy of in, cloning nested map[string]any
// values recursively. Empty input yields nil; the internal representation
// of "no details" is a nil map, normalized back to an empty map at the
// public boundary (Details, ToMap).
func cloneDetails(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneDetails(mv)
			continue
		}
		out[k] = v
	}
	return out
}
