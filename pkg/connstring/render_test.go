package connstring

import "testing"

func TestRenderPairs(t *testing.T) {
	pairs := []pair{{"a", "1"}, {"b", ""}, {"c", "3"}}

	tests := []struct {
		name       string
		delim      string
		terminated bool
		want       string
	}{
		{"space separated", " ", false, "a=1 c=3"},
		{"semicolon terminated", ";", true, "a=1;c=3;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderPairs(pairs, tt.delim, tt.terminated); got != tt.want {
				t.Errorf("renderPairs() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := renderPairs(nil, ";", true); got != "" {
		t.Errorf("renderPairs(nil) = %q, want empty", got)
	}
}
