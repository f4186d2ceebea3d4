package config

import (
	"fmt"

	"github.com/eduardofuncao/connstring/internal/engine"
)

// ProfileYAML is a named set of connection string inputs. Passwords are
// deliberately absent; they are supplied per invocation.
type ProfileYAML struct {
	Name                   string            `yaml:"name"`
	Engine                 string            `yaml:"engine"`
	Host                   string            `yaml:"host,omitempty"`
	Port                   uint16            `yaml:"port,omitempty"`
	Database               string            `yaml:"database,omitempty"`
	User                   string            `yaml:"user,omitempty"`
	ConnectTimeout         uint              `yaml:"connect_timeout,omitempty"`
	SSLMode                string            `yaml:"sslmode,omitempty"`
	Encrypt                bool              `yaml:"encrypt,omitempty"`
	TrustServerCertificate bool              `yaml:"trust_server_certificate,omitempty"`
	Params                 map[string]string `yaml:"params,omitempty"`
}

func ToProfileYAML(name, engineName string, p engine.Params) *ProfileYAML {
	return &ProfileYAML{
		Name:                   name,
		Engine:                 engineName,
		Host:                   p.Host,
		Port:                   p.Port,
		Database:               p.Database,
		User:                   p.User,
		ConnectTimeout:         p.ConnectTimeout,
		SSLMode:                p.SSLMode,
		Encrypt:                p.Encrypt,
		TrustServerCertificate: p.TrustServerCertificate,
		Params:                 p.Extra,
	}
}

func (p *ProfileYAML) EngineParams() engine.Params {
	return engine.Params{
		Host:                   p.Host,
		Port:                   p.Port,
		Database:               p.Database,
		User:                   p.User,
		ConnectTimeout:         p.ConnectTimeout,
		SSLMode:                p.SSLMode,
		Encrypt:                p.Encrypt,
		TrustServerCertificate: p.TrustServerCertificate,
		Extra:                  p.Params,
	}
}

// Render builds the profile's connection string with the given password.
func (p *ProfileYAML) Render(password string) (string, error) {
	b, err := engine.Build(p.Engine, p.EngineParams(), password)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Address returns host:port for display, resolving a zero port to the
// engine default.
func (p *ProfileYAML) Address() string {
	if p.Host == "" {
		return ""
	}
	port := p.Port
	if port == 0 {
		if name, err := engine.Normalize(p.Engine); err == nil {
			port = engine.DefaultPort(name)
		}
	}
	if port == 0 {
		return p.Host
	}
	return fmt.Sprintf("%s:%d", p.Host, port)
}
