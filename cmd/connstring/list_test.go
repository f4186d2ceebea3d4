package main

import (
	"testing"

	"github.com/eduardofuncao/connstring/internal/config"
)

func testProfiles() map[string]*config.ProfileYAML {
	return map[string]*config.ProfileYAML{
		"prod":  {Name: "prod", Engine: "sqlserver", Host: "sql.test.com", Database: "db_name", User: "user"},
		"dev":   {Name: "dev", Engine: "postgres", Host: "localhost", Database: "app"},
		"cache": {Name: "cache", Engine: "mysql", Host: "10.0.0.5", Port: 3307},
	}
}

func names(profiles []*config.ProfileYAML) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

func TestFilterProfiles(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"cache", "dev", "prod"}},
		{"PROD", []string{"prod"}},
		{"postgres", []string{"dev"}},
		{"test.com", []string{"prod"}},
		{"a", []string{"cache", "dev", "prod"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		got := names(filterProfiles(testProfiles(), tt.search))
		if len(got) != len(tt.want) {
			t.Errorf("filterProfiles(%q) = %v, want %v", tt.search, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("filterProfiles(%q) = %v, want %v", tt.search, got, tt.want)
				break
			}
		}
	}
}

func TestDescribeProfile(t *testing.T) {
	profiles := testProfiles()
	tests := []struct {
		name string
		want string
	}{
		{"prod", "user@sql.test.com:1433/db_name"},
		{"dev", "localhost:5432/app"},
		{"cache", "10.0.0.5:3307"},
	}

	for _, tt := range tests {
		if got := describeProfile(profiles[tt.name]); got != tt.want {
			t.Errorf("describeProfile(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 4, "  "},
		{"abcd", 4, ""},
		{"toolong", 4, ""},
		{"日本", 6, "  "},
	}

	for _, tt := range tests {
		if got := padding(tt.s, tt.width); got != tt.want {
			t.Errorf("padding(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	nameWidth, engineWidth := columnWidths(filterProfiles(testProfiles(), ""))
	if nameWidth != 5 || engineWidth != 9 {
		t.Errorf("columnWidths() = %d, %d, want 5, 9", nameWidth, engineWidth)
	}
}

func TestHighlightMatches_NoSearch(t *testing.T) {
	if got := highlightMatches("prod", ""); got != "prod" {
		t.Errorf("highlightMatches(%q, \"\") = %q, want unchanged", "prod", got)
	}
}
