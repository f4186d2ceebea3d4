package connstring

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultSQLServerPort is the TCP port of a default SQL Server instance.
const DefaultSQLServerPort uint16 = 1433

const (
	minConnectRetryInterval uint8 = 1
	maxConnectRetryInterval uint8 = 60
)

// SQLServerConnectionString builds an ADO/ODBC style connection string of
// semicolon terminated Key=Value pairs. Boolean flags render as "yes".
type SQLServerConnectionString struct {
	host                 string
	port                 uint16
	database             string
	user                 string
	password             string
	connectTimeout       *uint
	commandTimeout       *uint
	connectRetryCount    *uint8
	connectRetryInterval *uint8
	encrypt              bool
	trustServerCert      bool
	params               map[string]string
}

// NewSQLServerConnectionString returns an empty builder. Rendering it
// without calling any setter yields an empty string.
func NewSQLServerConnectionString() *SQLServerConnectionString {
	return &SQLServerConnectionString{}
}

// SetUsernameAndPassword sets/replaces User Id and Password.
func (s *SQLServerConnectionString) SetUsernameAndPassword(user, password string) *SQLServerConnectionString {
	s.user = user
	s.password = password
	return s
}

// SetUsernameWithoutPassword sets/replaces User Id and removes a password
// set earlier.
func (s *SQLServerConnectionString) SetUsernameWithoutPassword(user string) *SQLServerConnectionString {
	s.user = user
	s.password = ""
	return s
}

// SetHostWithPort sets/replaces the server as "host,port".
func (s *SQLServerConnectionString) SetHostWithPort(host string, port uint16) *SQLServerConnectionString {
	s.host = host
	s.port = port
	return s
}

// SetHostWithDefaultPort sets/replaces the server using DefaultSQLServerPort.
func (s *SQLServerConnectionString) SetHostWithDefaultPort(host string) *SQLServerConnectionString {
	return s.SetHostWithPort(host, DefaultSQLServerPort)
}

// SetDatabaseName sets/replaces Database.
func (s *SQLServerConnectionString) SetDatabaseName(name string) *SQLServerConnectionString {
	s.database = name
	return s
}

// SetConnectTimeout sets/replaces Connect Timeout, in seconds.
func (s *SQLServerConnectionString) SetConnectTimeout(seconds uint) *SQLServerConnectionString {
	s.connectTimeout = &seconds
	return s
}

// SetCommandTimeout sets/replaces Command Timeout, in seconds.
func (s *SQLServerConnectionString) SetCommandTimeout(seconds uint) *SQLServerConnectionString {
	s.commandTimeout = &seconds
	return s
}

// SetConnectRetryCount sets/replaces ConnectRetryCount.
func (s *SQLServerConnectionString) SetConnectRetryCount(count uint8) *SQLServerConnectionString {
	s.connectRetryCount = &count
	return s
}

// SetConnectRetryInterval sets/replaces ConnectRetryInterval, in seconds.
// Values outside 1..60 are clamped into that range.
func (s *SQLServerConnectionString) SetConnectRetryInterval(seconds uint8) *SQLServerConnectionString {
	seconds = min(max(seconds, minConnectRetryInterval), maxConnectRetryInterval)
	s.connectRetryInterval = &seconds
	return s
}

// EnableEncryption turns on Encrypt.
func (s *SQLServerConnectionString) EnableEncryption() *SQLServerConnectionString {
	s.encrypt = true
	return s
}

// EnableEncryptionAndTrustServerCertificate turns on Encrypt and
// TrustServerCertificate together. The server certificate is then accepted
// even when it does not chain to a trusted root.
func (s *SQLServerConnectionString) EnableEncryptionAndTrustServerCertificate() *SQLServerConnectionString {
	s.encrypt = true
	s.trustServerCert = true
	return s
}

// DangerouslySetParameter sets/replaces any keyword. Extra keywords render
// after the known ones, sorted by key. A keyword matching a known one
// (compared case-insensitively) replaces it. The value is not quoted.
func (s *SQLServerConnectionString) DangerouslySetParameter(key, value string) *SQLServerConnectionString {
	if s.params == nil {
		s.params = make(map[string]string)
	}
	s.params[key] = value
	return s
}

func (s *SQLServerConnectionString) server() string {
	if s.host == "" {
		return ""
	}
	return s.host + "," + strconv.FormatUint(uint64(s.port), 10)
}

func (s *SQLServerConnectionString) pairs() []pair {
	pairs := []pair{
		{"Server", s.server()},
		{"Database", s.database},
		{"User Id", s.user},
		{"Password", s.password},
		{"Connect Timeout", formatUint(s.connectTimeout)},
		{"Command Timeout", formatUint(s.commandTimeout)},
		{"ConnectRetryCount", formatUint8(s.connectRetryCount)},
		{"ConnectRetryInterval", formatUint8(s.connectRetryInterval)},
		{"Encrypt", formatFlag(s.encrypt)},
		{"TrustServerCertificate", formatFlag(s.trustServerCert)},
	}
	return withExtras(pairs, s.params, true)
}

// String renders Key=Value; pairs in the order Server, Database, User Id,
// Password, Connect Timeout, Command Timeout, ConnectRetryCount,
// ConnectRetryInterval, Encrypt, TrustServerCertificate followed by extra
// parameters.
func (s *SQLServerConnectionString) String() string {
	return renderPairs(s.pairs(), ";", true)
}

func formatUint8(v *uint8) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func formatFlag(enabled bool) string {
	if !enabled {
		return ""
	}
	return "yes"
}

// QuoteSQLServerValue quotes s the way ADO.NET expects when it contains a
// semicolon, a control character, or leading or trailing space. Double
// quotes are preferred; single quotes are used when s contains only double
// quotes; when s contains both, embedded double quotes are doubled.
// Other values are returned unchanged.
func QuoteSQLServerValue(s string) string {
	needsQuotes := strings.ContainsFunc(s, unicode.IsControl) ||
		strings.HasPrefix(s, " ") ||
		strings.HasSuffix(s, " ") ||
		strings.Contains(s, ";")
	if !needsQuotes {
		return s
	}

	hasDouble := strings.Contains(s, `"`)
	hasSingle := strings.Contains(s, `'`)

	switch {
	case !hasDouble:
		return `"` + s + `"`
	case !hasSingle:
		return `'` + s + `'`
	default:
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
}
