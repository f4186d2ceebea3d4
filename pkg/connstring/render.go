package connstring

import (
	"sort"
	"strings"
)

type pair struct {
	key   string
	value string
}

// renderPairs joins key=value pairs with delim. When terminated is true
// every pair is followed by delim, including the last one. Pairs with an
// empty value are skipped.
func renderPairs(pairs []pair, delim string, terminated bool) string {
	var b strings.Builder
	written := 0
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if written > 0 && !terminated {
			b.WriteString(delim)
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
		if terminated {
			b.WriteString(delim)
		}
		written++
	}
	return b.String()
}

// withExtras appends params, sorted by key, to fixed. A fixed pair whose key
// also appears in params is dropped so the extra value replaces it. Keys
// compare case-insensitively when foldCase is set.
func withExtras(fixed []pair, params map[string]string, foldCase bool) []pair {
	pairs := make([]pair, 0, len(fixed)+len(params))
	for _, p := range fixed {
		if !hasKey(params, p.key, foldCase) {
			pairs = append(pairs, p)
		}
	}
	return append(pairs, sortedPairs(params)...)
}

func hasKey(params map[string]string, key string, foldCase bool) bool {
	if _, ok := params[key]; ok || !foldCase {
		return ok
	}
	for k := range params {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// sortedPairs returns the entries of params ordered by key.
func sortedPairs(params map[string]string) []pair {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pair{key: k, value: params[k]})
	}
	return pairs
}
