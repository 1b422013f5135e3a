// Package match answers "does a record like this one already exist?" for
// remote collections returned by the panel API's list calls.
//
// Records arrive as loosely shaped nested maps whose exact layout differs
// per resource (a domain record embeds its subdomains, a website embeds its
// site apps). Rather than matching on exact shape, a record is reduced to
// the set of scalar values it contains anywhere, and a candidate matches
// when all of its own scalars appear in that set.
package match

import (
	"strconv"
	"strings"
	"time"
)

// Record is one entry from a remote list call, as decoded from XML-RPC.
type Record = map[string]any

// Options control how Flatten treats strings. The zero value keeps strings
// atomic, which is what the existence check uses.
type Options struct {
	// StringSep, when non-empty, splits string leaves on this separator.
	StringSep string

	// SplitWords further splits each string fragment into single runes.
	// Only meaningful together with StringSep.
	SplitWords bool
}

// Flatten reduces a nested value to its scalar leaves, in depth-first
// order. Map keys are ignored; only values descend. The supported input
// shapes are the closed set produced by the XML-RPC decoder: strings,
// integers, floats, booleans, nil, timestamps, byte slices, []any, and
// map[string]any. Anything else is returned as a leaf unchanged.
func Flatten(v any, opts Options) []any {
	var leaves []any
	flattenInto(&leaves, v, opts)
	return leaves
}

func flattenInto(leaves *[]any, v any, opts Options) {
	switch val := v.(type) {
	case map[string]any:
		for _, inner := range val {
			flattenInto(leaves, inner, opts)
		}
	case []any:
		for _, inner := range val {
			flattenInto(leaves, inner, opts)
		}
	case string:
		if opts.StringSep == "" {
			*leaves = append(*leaves, val)
			return
		}
		for _, word := range strings.Split(val, opts.StringSep) {
			if !opts.SplitWords {
				*leaves = append(*leaves, word)
				continue
			}
			for _, r := range word {
				*leaves = append(*leaves, string(r))
			}
		}
	default:
		*leaves = append(*leaves, val)
	}
}

// leafKey canonicalizes a scalar leaf into a type-tagged comparison key so
// that, for example, int64(1) and "1" remain distinct while int64(1) and
// float64(1) from differently typed replies compare equal.
func leafKey(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return "s:" + val
	case bool:
		return "b:" + strconv.FormatBool(val)
	case int:
		return "n:" + strconv.FormatInt(int64(val), 10)
	case int64:
		return "n:" + strconv.FormatInt(val, 10)
	case float64:
		if val == float64(int64(val)) {
			return "n:" + strconv.FormatInt(int64(val), 10)
		}
		return "n:" + strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return "t:" + val.UTC().Format(time.RFC3339Nano)
	case []byte:
		return "x:" + string(val)
	default:
		return "?"
	}
}

// leafSet builds the set of canonical leaf keys for a value.
func leafSet(v any) map[string]struct{} {
	set := make(map[string]struct{})
	for _, leaf := range Flatten(v, Options{}) {
		set[leafKey(leaf)] = struct{}{}
	}
	return set
}
