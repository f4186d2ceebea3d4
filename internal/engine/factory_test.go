package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/eduardofuncao/connstring/pkg/connstring"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"postgres", Postgres, false},
		{"PostgreSQL", Postgres, false},
		{" pg ", Postgres, false},
		{"mssql", SQLServer, false},
		{"sqlserver", SQLServer, false},
		{"mariadb", MySQL, false},
		{"oracle", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Normalize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedEngine) {
			t.Errorf("Normalize(%q) error = %v, want ErrUnsupportedEngine", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	params := Params{
		Host:           "db.internal",
		Database:       "app",
		User:           "svc",
		ConnectTimeout: 30,
	}

	tests := []struct {
		name     string
		engine   string
		params   Params
		password string
		want     string
	}{
		{
			name:     "postgres default port",
			engine:   "postgresql",
			params:   params,
			password: "secret",
			want:     "host=db.internal dbname=app user=svc password=secret connect_timeout=30",
		},
		{
			name:   "postgres explicit port and sslmode",
			engine: Postgres,
			params: Params{Host: "db", Port: 6432, SSLMode: "require"},
			want:   "host=db port=6432 sslmode=require",
		},
		{
			name:     "sqlserver default port",
			engine:   "mssql",
			params:   params,
			password: "secret",
			want:     "Server=db.internal,1433;Database=app;User Id=svc;Password=secret;Connect Timeout=30;",
		},
		{
			name:   "sqlserver trust implies encrypt",
			engine: SQLServer,
			params: Params{Host: "sql", Port: 14330, TrustServerCertificate: true},
			want:   "Server=sql,14330;Encrypt=yes;TrustServerCertificate=yes;",
		},
		{
			name:   "sqlserver encrypt only",
			engine: SQLServer,
			params: Params{Encrypt: true, Extra: map[string]string{"ApplicationIntent": "ReadOnly"}},
			want:   "Encrypt=yes;ApplicationIntent=ReadOnly;",
		},
		{
			name:   "postgres encrypt maps to verify-full",
			engine: Postgres,
			params: Params{Host: "db", Encrypt: true},
			want:   "host=db sslmode=verify-full",
		},
		{
			name:   "postgres trust maps to require",
			engine: Postgres,
			params: Params{Host: "db", Encrypt: true, TrustServerCertificate: true},
			want:   "host=db sslmode=require",
		},
		{
			name:   "postgres explicit sslmode wins",
			engine: Postgres,
			params: Params{Host: "db", Encrypt: true, SSLMode: "prefer"},
			want:   "host=db sslmode=prefer",
		},
		{
			name:     "postgres password without user",
			engine:   Postgres,
			params:   Params{Host: "db"},
			password: "secret",
			want:     "host=db password=secret",
		},
		{
			name:     "sqlserver password without user",
			engine:   SQLServer,
			params:   Params{Host: "db"},
			password: "secret",
			want:     "Server=db,1433;Password=secret;",
		},
		{
			name:   "postgres without user or password",
			engine: Postgres,
			params: Params{Database: "app"},
			want:   "dbname=app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Build(tt.engine, tt.params, tt.password)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("Build().String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_MySQLPasswordWithoutUser(t *testing.T) {
	b, err := Build(MySQL, Params{Host: "db"}, "secret")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := b.String(), ":secret@tcp(db:3306)/"; got != want {
		t.Errorf("Build().String() = %q, want %q", got, want)
	}
}

func TestBuild_MySQL(t *testing.T) {
	b, err := Build("mariadb", Params{Host: "db", User: "svc", Database: "app", Encrypt: true}, "pw")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := b.(*connstring.MySQLConnectionString); !ok {
		t.Fatalf("Build() returned %T, want *connstring.MySQLConnectionString", b)
	}
	got := b.String()
	if !strings.HasPrefix(got, "svc:pw@tcp(db:3306)/app") {
		t.Errorf("Build().String() = %q, want prefix %q", got, "svc:pw@tcp(db:3306)/app")
	}
	if !strings.Contains(got, "tls=true") {
		t.Errorf("Build().String() = %q, want tls=true", got)
	}
}

func TestBuild_MySQLSkipVerify(t *testing.T) {
	b, err := Build(MySQL, Params{Host: "db", TrustServerCertificate: true}, "")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := b.String(); !strings.Contains(got, "tls=skip-verify") {
		t.Errorf("Build().String() = %q, want tls=skip-verify", got)
	}
}

func TestBuild_Unsupported(t *testing.T) {
	_, err := Build("oracle", Params{}, "")
	if !errors.Is(err, ErrUnsupportedEngine) {
		t.Errorf("Build(oracle) error = %v, want ErrUnsupportedEngine", err)
	}
}

func TestDefaultPort(t *testing.T) {
	for _, name := range GetSupportedEngines() {
		if DefaultPort(name) == 0 {
			t.Errorf("DefaultPort(%q) = 0, want engine default", name)
		}
	}
	if got := DefaultPort("oracle"); got != 0 {
		t.Errorf("DefaultPort(oracle) = %d, want 0", got)
	}
}
