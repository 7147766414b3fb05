package state

import "strings"

// splitPath turns a dot-separated path into its key sequence. Empty
// segments are dropped so "a..b" and ".a.b" behave like "a.b".
func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	keys := parts[:0]
	for _, p := range parts {
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// lookup walks the tree along keys, stopping at the first missing key or
// the first intermediate value that is not a traversable map.
func lookup(tree map[string]any, keys []string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}

	var current any = tree
	for _, key := range keys {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// assign walks/creates intermediate maps along keys and sets the value at
// the final key. Non-map intermediates are overwritten with fresh maps.
func assign(tree map[string]any, keys []string, value any) {
	if len(keys) == 0 {
		return
	}

	node := tree
	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
}
