package main

import (
	"reflect"
	"testing"

	"github.com/eduardofuncao/connstring/internal/engine"
)

func TestParseInitFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want initFlags
	}{
		{
			name: "no arguments",
			args: nil,
			want: initFlags{},
		},
		{
			name: "positional only",
			args: []string{"dev", "pg"},
			want: initFlags{name: "dev", engine: "pg"},
		},
		{
			name: "separate values",
			args: []string{"prod", "sqlserver", "--host", "sql.test.com", "--port", "1434", "--database", "db_name", "--user", "user", "--timeout", "30"},
			want: initFlags{
				name:   "prod",
				engine: "sqlserver",
				params: engine.Params{Host: "sql.test.com", Port: 1434, Database: "db_name", User: "user", ConnectTimeout: 30},
			},
		},
		{
			name: "inline values and flags before positionals",
			args: []string{"--host=localhost", "--db=app", "dev", "postgres", "--sslmode=disable"},
			want: initFlags{
				name:   "dev",
				engine: "postgres",
				params: engine.Params{Host: "localhost", Database: "app", SSLMode: "disable"},
			},
		},
		{
			name: "trust-cert implies encrypt",
			args: []string{"x", "mssql", "--trust-cert"},
			want: initFlags{
				name:   "x",
				engine: "mssql",
				params: engine.Params{Encrypt: true, TrustServerCertificate: true},
			},
		},
		{
			name: "repeated params, value may contain '='",
			args: []string{"--param", "ApplicationIntent=ReadOnly", "--param=options=-c search_path=app"},
			want: initFlags{
				params: engine.Params{Extra: map[string]string{
					"ApplicationIntent": "ReadOnly",
					"options":           "-c search_path=app",
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInitFlags(tt.args)
			if err != nil {
				t.Fatalf("parseInitFlags(%q) error = %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseInitFlags(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseInitFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"port out of range", []string{"--port", "70000"}},
		{"port not a number", []string{"--port=abc"}},
		{"negative timeout", []string{"--timeout", "-1"}},
		{"missing value", []string{"--host"}},
		{"param without equals", []string{"--param", "novalue"}},
		{"param without key", []string{"--param", "=v"}},
		{"unknown flag", []string{"--password", "secret"}},
		{"too many positionals", []string{"a", "postgres", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseInitFlags(tt.args); err == nil {
				t.Errorf("parseInitFlags(%q) expected error, got nil", tt.args)
			}
		})
	}
}
