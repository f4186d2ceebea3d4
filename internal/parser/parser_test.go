package parser

import (
	"reflect"
	"testing"
)

func TestSplitPairs(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		delim      string
		terminated bool
		want       []Pair
	}{
		{
			name:  "postgres",
			in:    "host=localhost port=5432 dbname=db_name",
			delim: " ",
			want:  []Pair{{"host", "localhost"}, {"port", "5432"}, {"dbname", "db_name"}},
		},
		{
			name:  "postgres value with space and equals",
			in:    "user=us er password=p=w",
			delim: " ",
			want:  []Pair{{"user", "us er"}, {"password", "p=w"}},
		},
		{
			name:       "sqlserver",
			in:         "Server=sql.test.com,1433;User Id=user;Encrypt=yes;",
			delim:      ";",
			terminated: true,
			want:       []Pair{{"Server", "sql.test.com,1433"}, {"User Id", "user"}, {"Encrypt", "yes"}},
		},
		{
			name:       "sqlserver value with semicolon",
			in:         "Password= pa;ss;Database=db;",
			delim:      ";",
			terminated: true,
			want:       []Pair{{"Password", " pa;ss"}, {"Database", "db"}},
		},
		{
			name:       "empty",
			in:         "",
			delim:      ";",
			terminated: true,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPairs(tt.in, tt.delim, tt.terminated)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPairs(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHighlightConnString_Empty(t *testing.T) {
	if got := HighlightConnString("", " ", false); got != "" {
		t.Errorf("HighlightConnString(\"\") = %q, want empty", got)
	}
}
