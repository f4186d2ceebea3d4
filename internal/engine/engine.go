package engine

import (
	"fmt"
	"strings"

	"github.com/eduardofuncao/connstring/pkg/connstring"
)

const (
	Postgres  = "postgres"
	SQLServer = "sqlserver"
	MySQL     = "mysql"
)

// Normalize maps an engine name or one of its aliases onto the canonical
// engine name.
func Normalize(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "sqlserver", "mssql", "sql-server":
		return SQLServer, nil
	case "mysql", "mariadb":
		return MySQL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEngine, name)
	}
}

// GetSupportedEngines returns the canonical names of all supported engines.
func GetSupportedEngines() []string {
	return []string{
		Postgres,
		SQLServer,
		MySQL,
	}
}

// DefaultPort returns the port an engine uses when a profile leaves it at 0.
func DefaultPort(name string) uint16 {
	switch name {
	case Postgres:
		return connstring.DefaultPostgresPort
	case SQLServer:
		return connstring.DefaultSQLServerPort
	case MySQL:
		return connstring.DefaultMySQLPort
	default:
		return 0
	}
}
