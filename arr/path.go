package arr

import (
	"strconv"
	"strings"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// Get returns the value at the dot-notation path and whether it exists.
//
//	Get(doc, "user.address.city") // "London", true
//	Get(doc, "user.tags.0")        // first tag
//	Get(doc, "user.tags.-1")       // last tag
func Get(obj any, path string) (any, bool) {
	current := obj
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// child resolves one path segment against a map or a list.
func child(v any, seg string) (any, bool) {
	switch node := v.(type) {
	case map[string]any:
		val, ok := node[seg]
		return val, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, false
		}
		pos, err := ranges.To(len(node)).Index(i)
		if err != nil {
			return nil, false
		}
		return node[pos], true
	default:
		return nil, false
	}
}

// Has reports whether the dot-notation path exists in obj.
func Has(obj any, path string) bool {
	_, ok := Get(obj, path)
	return ok
}

// Set writes value into m at the dot-notation path, creating intermediate
// maps as needed. Existing non-map values along the path are replaced.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	inner, ok := m[seg].(map[string]any)
	if !ok {
		inner = make(map[string]any)
		m[seg] = inner
	}
	Set(inner, rest, value)
}

// Dot flattens nested maps into a single-level map keyed by dot paths.
// Lists are kept as values.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Forget removes the value at the dot-notation path from m. Missing paths
// are ignored.
func Forget(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	if inner, ok := m[seg].(map[string]any); ok {
		Forget(inner, rest)
	}
}

// Undot expands a flat dot-keyed map back into nested maps. It is the
// inverse of [Dot].
func Undot(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range flat {
		Set(out, k, v)
	}
	return out
}
