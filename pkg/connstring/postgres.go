package connstring

import (
	"strconv"
	"strings"
)

// DefaultPostgresPort is the port libpq uses when none is given.
const DefaultPostgresPort uint16 = 5432

// PostgresConnectionString builds a libpq keyword/value connection string.
//
// The zero value is an empty builder; NewPostgresConnectionString is
// provided for symmetry with the other engines.
type PostgresConnectionString struct {
	host           string
	port           *uint16
	database       string
	user           string
	password       string
	connectTimeout *uint
	sslMode        string
	params         map[string]string
}

// NewPostgresConnectionString returns an empty builder. Rendering it
// without calling any setter yields an empty string.
func NewPostgresConnectionString() *PostgresConnectionString {
	return &PostgresConnectionString{}
}

// SetUsernameAndPassword sets/replaces both the user and the password.
func (p *PostgresConnectionString) SetUsernameAndPassword(user, password string) *PostgresConnectionString {
	p.user = user
	p.password = password
	return p
}

// SetUsernameWithoutPassword sets/replaces the user and drops any
// previously set password.
func (p *PostgresConnectionString) SetUsernameWithoutPassword(user string) *PostgresConnectionString {
	p.user = user
	p.password = ""
	return p
}

// SetHostWithPort sets/replaces the host and an explicit port.
func (p *PostgresConnectionString) SetHostWithPort(host string, port uint16) *PostgresConnectionString {
	p.host = host
	p.port = &port
	return p
}

// SetHostWithDefaultPort sets/replaces the host and omits the port, so the
// client falls back to DefaultPostgresPort.
func (p *PostgresConnectionString) SetHostWithDefaultPort(host string) *PostgresConnectionString {
	p.host = host
	p.port = nil
	return p
}

// SetDatabaseName sets/replaces dbname.
func (p *PostgresConnectionString) SetDatabaseName(name string) *PostgresConnectionString {
	p.database = name
	return p
}

// SetConnectTimeout sets/replaces connect_timeout, in seconds.
func (p *PostgresConnectionString) SetConnectTimeout(seconds uint) *PostgresConnectionString {
	p.connectTimeout = &seconds
	return p
}

// SetSSLMode sets/replaces sslmode (disable, require, verify-full, ...).
func (p *PostgresConnectionString) SetSSLMode(mode string) *PostgresConnectionString {
	p.sslMode = mode
	return p
}

// DangerouslySetParameter sets/replaces any keyword, including ones this
// builder knows nothing about. Extra keywords render after the known ones,
// sorted by key. A known keyword set this way replaces the field.
func (p *PostgresConnectionString) DangerouslySetParameter(key, value string) *PostgresConnectionString {
	if p.params == nil {
		p.params = make(map[string]string)
	}
	p.params[key] = value
	return p
}

func (p *PostgresConnectionString) pairs() []pair {
	pairs := []pair{
		{"host", p.host},
		{"port", formatPort(p.port)},
		{"dbname", p.database},
		{"user", p.user},
		{"password", p.password},
		{"connect_timeout", formatUint(p.connectTimeout)},
		{"sslmode", p.sslMode},
	}
	return withExtras(pairs, p.params, false)
}

// String renders space separated key=value tokens in the order host, port,
// dbname, user, password, connect_timeout, sslmode followed by extra
// parameters.
func (p *PostgresConnectionString) String() string {
	return renderPairs(p.pairs(), " ", false)
}

// URL renders the same parameters as a postgres:// URI. Reserved characters
// in every component are percent-encoded.
func (p *PostgresConnectionString) URL() string {
	user, password := p.field("user", p.user), p.field("password", p.password)
	host, database := p.field("host", p.host), p.field("dbname", p.database)
	port := formatPort(p.port)
	if _, ok := p.params["port"]; ok {
		port = ""
	}

	var b strings.Builder
	b.WriteString("postgres://")

	if user != "" || password != "" {
		b.WriteString(percentEncode(user))
		if password != "" {
			b.WriteByte(':')
			b.WriteString(percentEncode(password))
		}
		b.WriteByte('@')
	}

	b.WriteString(percentEncode(host))
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}

	if database != "" {
		b.WriteByte('/')
		b.WriteString(percentEncode(database))
	}

	query := withExtras([]pair{
		{"connect_timeout", formatUint(p.connectTimeout)},
		{"sslmode", p.sslMode},
	}, p.params, false)
	for i := range query {
		query[i].key = percentEncode(query[i].key)
		query[i].value = percentEncode(query[i].value)
	}
	if params := renderPairs(query, "&", false); params != "" {
		b.WriteByte('?')
		b.WriteString(params)
	}

	return b.String()
}

// reservedEncoder covers the RFC 3986 reserved set. Unreserved and other
// characters pass through untouched.
var reservedEncoder = strings.NewReplacer(
	"!", "%21",
	"#", "%23",
	"$", "%24",
	"&", "%26",
	"'", "%27",
	"(", "%28",
	")", "%29",
	"*", "%2A",
	"+", "%2B",
	",", "%2C",
	"/", "%2F",
	":", "%3A",
	";", "%3B",
	"=", "%3D",
	"?", "%3F",
	"@", "%40",
	"[", "%5B",
	"]", "%5D",
)

// field returns value unless an extra parameter replaces key, in which case
// the extra renders in the query instead.
func (p *PostgresConnectionString) field(key, value string) string {
	if _, ok := p.params[key]; ok {
		return ""
	}
	return value
}

func percentEncode(s string) string {
	return reservedEncoder.Replace(s)
}

func formatPort(port *uint16) string {
	if port == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*port), 10)
}

func formatUint(v *uint) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}
