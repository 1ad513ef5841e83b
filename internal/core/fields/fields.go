package fields

import (
	"strings"
)

// Lookup resolves a dotted path against a decoded JSON document.
// Arrays along the path are searched element-wise and the first usable value wins,
// so "charges.bail_amount" finds the bail of the first charge that has one.
func Lookup(doc map[string]interface{}, path string) (interface{}, bool) {
	if doc == nil || path == "" {
		return nil, false
	}
	return walk(doc, strings.Split(path, "."))
}

func walk(node interface{}, parts []string) (interface{}, bool) {
	if len(parts) == 0 {
		if isBlank(node) {
			return nil, false
		}
		return node, true
	}

	switch n := node.(type) {
	case map[string]interface{}:
		child, ok := n[parts[0]]
		if !ok {
			return nil, false
		}
		return walk(child, parts[1:])
	case []interface{}:
		for _, item := range n {
			if v, ok := walk(item, parts); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// PickFirst returns the first non-blank value among the candidate paths.
func PickFirst(doc map[string]interface{}, paths []string) (interface{}, bool) {
	for _, p := range paths {
		if v, ok := Lookup(doc, p); ok {
			return v, true
		}
	}
	return nil, false
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}
