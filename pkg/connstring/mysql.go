package connstring

import (
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DefaultMySQLPort is the TCP port MySQL and MariaDB listen on by default.
const DefaultMySQLPort uint16 = 3306

// MySQLConnectionString builds a go-sql-driver/mysql DSN of the form
// user:password@tcp(host:port)/dbname?param=value.
type MySQLConnectionString struct {
	cfg *mysql.Config
}

// NewMySQLConnectionString returns an empty builder.
func NewMySQLConnectionString() *MySQLConnectionString {
	return &MySQLConnectionString{cfg: mysql.NewConfig()}
}

// SetUsernameAndPassword sets/replaces both the user and the password.
func (m *MySQLConnectionString) SetUsernameAndPassword(user, password string) *MySQLConnectionString {
	m.cfg.User = user
	m.cfg.Passwd = password
	return m
}

// SetUsernameWithoutPassword sets/replaces the user and drops the password.
func (m *MySQLConnectionString) SetUsernameWithoutPassword(user string) *MySQLConnectionString {
	m.cfg.User = user
	m.cfg.Passwd = ""
	return m
}

// SetHostWithPort sets/replaces the TCP address.
func (m *MySQLConnectionString) SetHostWithPort(host string, port uint16) *MySQLConnectionString {
	m.cfg.Net = "tcp"
	m.cfg.Addr = net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
	return m
}

// SetHostWithDefaultPort sets/replaces the TCP address using DefaultMySQLPort.
func (m *MySQLConnectionString) SetHostWithDefaultPort(host string) *MySQLConnectionString {
	return m.SetHostWithPort(host, DefaultMySQLPort)
}

// SetDatabaseName sets/replaces the database path segment.
func (m *MySQLConnectionString) SetDatabaseName(name string) *MySQLConnectionString {
	m.cfg.DBName = name
	return m
}

// SetConnectTimeout sets/replaces the dial timeout, in seconds.
func (m *MySQLConnectionString) SetConnectTimeout(seconds uint) *MySQLConnectionString {
	m.cfg.Timeout = time.Duration(seconds) * time.Second
	return m
}

// EnableTLS requests TLS with the system root CAs (tls=true).
func (m *MySQLConnectionString) EnableTLS() *MySQLConnectionString {
	m.cfg.TLSConfig = "true"
	return m
}

// EnableTLSWithoutVerification requests TLS but accepts any server
// certificate (tls=skip-verify).
func (m *MySQLConnectionString) EnableTLSWithoutVerification() *MySQLConnectionString {
	m.cfg.TLSConfig = "skip-verify"
	return m
}

// DangerouslySetParameter sets/replaces a DSN parameter. Keys the driver
// does not recognise are sent to the server as system variables; driver
// options such as charset are taken over by the driver itself.
func (m *MySQLConnectionString) DangerouslySetParameter(key, value string) *MySQLConnectionString {
	if m.cfg.Params == nil {
		m.cfg.Params = make(map[string]string)
	}
	m.cfg.Params[key] = value
	return m
}

// String renders the DSN through the driver's own formatter, so parameters
// left at their driver defaults are omitted.
func (m *MySQLConnectionString) String() string {
	return m.cfg.FormatDSN()
}
