package parser

import (
	"strings"

	"github.com/eduardofuncao/connstring/internal/styles"
)

// Pair is one key=value token of a rendered connection string.
type Pair struct {
	Key   string
	Value string
}

// SplitPairs cuts a rendered key/value string into pairs. A segment without
// '=' belongs to the previous value, since values are rendered unescaped
// and may contain the delimiter themselves.
func SplitPairs(s, delim string, terminated bool) []Pair {
	if terminated {
		s = strings.TrimSuffix(s, delim)
	}
	if s == "" {
		return nil
	}

	var pairs []Pair
	for _, segment := range strings.Split(s, delim) {
		key, value, found := strings.Cut(segment, "=")
		if found {
			pairs = append(pairs, Pair{Key: key, Value: value})
			continue
		}
		if len(pairs) == 0 {
			if segment != "" {
				pairs = append(pairs, Pair{Key: segment})
			}
			continue
		}
		pairs[len(pairs)-1].Value += delim + segment
	}
	return pairs
}

// HighlightConnString colors keys and values of a rendered key/value string.
func HighlightConnString(s, delim string, terminated bool) string {
	pairs := SplitPairs(s, delim, terminated)

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 && !terminated {
			b.WriteString(styles.Separator.Render(delim))
		}
		b.WriteString(styles.Key.Render(p.Key))
		b.WriteString(styles.Separator.Render("="))
		b.WriteString(styles.Value.Render(p.Value))
		if terminated {
			b.WriteString(styles.Separator.Render(delim))
		}
	}
	return b.String()
}
