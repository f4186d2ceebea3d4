package engine

import (
	"errors"
	"fmt"

	"github.com/eduardofuncao/connstring/pkg/connstring"
)

var ErrUnsupportedEngine = errors.New("unsupported engine")

// Params holds everything needed to render a connection string except the
// password, which is never stored.
//
// Zero values mean "not set": Port 0 selects the engine default and
// ConnectTimeout 0 leaves the timeout out of the output. Encrypt and
// TrustServerCertificate map onto each engine's TLS settings; an explicit
// SSLMode wins for PostgreSQL.
type Params struct {
	Host                   string
	Port                   uint16
	Database               string
	User                   string
	ConnectTimeout         uint
	SSLMode                string
	Encrypt                bool
	TrustServerCertificate bool
	Extra                  map[string]string
}

// Build returns the engine's builder filled from p and password.
func Build(engineName string, p Params, password string) (fmt.Stringer, error) {
	name, err := Normalize(engineName)
	if err != nil {
		return nil, err
	}

	switch name {
	case Postgres:
		return buildPostgres(p, password), nil
	case SQLServer:
		return buildSQLServer(p, password), nil
	case MySQL:
		return buildMySQL(p, password), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, engineName)
	}
}

func buildPostgres(p Params, password string) *connstring.PostgresConnectionString {
	b := connstring.NewPostgresConnectionString()
	if p.User != "" || password != "" {
		b.SetUsernameAndPassword(p.User, password)
	}
	if p.Host != "" {
		if p.Port != 0 {
			b.SetHostWithPort(p.Host, p.Port)
		} else {
			b.SetHostWithDefaultPort(p.Host)
		}
	}
	if p.Database != "" {
		b.SetDatabaseName(p.Database)
	}
	if p.ConnectTimeout > 0 {
		b.SetConnectTimeout(p.ConnectTimeout)
	}
	switch {
	case p.SSLMode != "":
		b.SetSSLMode(p.SSLMode)
	case p.TrustServerCertificate:
		b.SetSSLMode("require")
	case p.Encrypt:
		b.SetSSLMode("verify-full")
	}
	for k, v := range p.Extra {
		b.DangerouslySetParameter(k, v)
	}
	return b
}

// trust_server_certificate implies encryption, since the two can only be
// enabled together.
func buildSQLServer(p Params, password string) *connstring.SQLServerConnectionString {
	b := connstring.NewSQLServerConnectionString()
	if p.User != "" || password != "" {
		b.SetUsernameAndPassword(p.User, password)
	}
	if p.Host != "" {
		if p.Port != 0 {
			b.SetHostWithPort(p.Host, p.Port)
		} else {
			b.SetHostWithDefaultPort(p.Host)
		}
	}
	if p.Database != "" {
		b.SetDatabaseName(p.Database)
	}
	if p.ConnectTimeout > 0 {
		b.SetConnectTimeout(p.ConnectTimeout)
	}
	switch {
	case p.TrustServerCertificate:
		b.EnableEncryptionAndTrustServerCertificate()
	case p.Encrypt:
		b.EnableEncryption()
	}
	for k, v := range p.Extra {
		b.DangerouslySetParameter(k, v)
	}
	return b
}

func buildMySQL(p Params, password string) *connstring.MySQLConnectionString {
	b := connstring.NewMySQLConnectionString()
	if p.User != "" || password != "" {
		b.SetUsernameAndPassword(p.User, password)
	}
	if p.Host != "" {
		if p.Port != 0 {
			b.SetHostWithPort(p.Host, p.Port)
		} else {
			b.SetHostWithDefaultPort(p.Host)
		}
	}
	if p.Database != "" {
		b.SetDatabaseName(p.Database)
	}
	if p.ConnectTimeout > 0 {
		b.SetConnectTimeout(p.ConnectTimeout)
	}
	switch {
	case p.TrustServerCertificate:
		b.EnableTLSWithoutVerification()
	case p.Encrypt:
		b.EnableTLS()
	}
	for k, v := range p.Extra {
		b.DangerouslySetParameter(k, v)
	}
	return b
}
