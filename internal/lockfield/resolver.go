package lockfield

import (
	"github.com/jfmyers9/kavalock/pkg/kavita"
)

// NeedsLock reports whether a metadata update is required: true iff at
// least one selected field is currently unlocked (lock flag false or
// absent) and holds a non-empty value. Empty fields are never locked,
// even when unlocked.
func NeedsLock(meta kavita.Metadata, selection []Spec) bool {
	for _, spec := range selection {
		if !truthy(meta[spec.LockKey]) && truthy(meta[spec.DataKey]) {
			return true
		}
	}
	return false
}

// BuildUpdatePayload returns a shallow copy of meta with every selected
// lock flag set to true. No other key is touched: the update endpoint
// replaces the whole object, so everything the server sent must be
// echoed back.
func BuildUpdatePayload(meta kavita.Metadata, selection []Spec) kavita.Metadata {
	out := meta.Clone()
	for _, spec := range selection {
		out[spec.LockKey] = true
	}
	return out
}

// truthy reports whether a decoded JSON value is present and non-empty.
// nil, false, "", numeric zero, and empty arrays/objects all count as
// empty, so a series with releaseYear 0 is treated as having no release
// year.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
