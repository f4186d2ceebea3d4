package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduardofuncao/connstring/internal/styles"
	"gopkg.in/yaml.v2"
)

var CfgPath = os.ExpandEnv("$HOME/.config/connstring/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

var ErrProfileNotFound = errors.New("profile not found")

type Config struct {
	CurrentProfile string                  `yaml:"current_profile"`
	Profiles       map[string]*ProfileYAML `yaml:"profiles"`
	Style          Style                   `yaml:"style"`

	path string
}

type Style struct {
	ColorScheme  string              `yaml:"color_scheme"`
	CustomColors *styles.ColorScheme `yaml:"custom_colors,omitempty"`
}

// LoadConfig reads the config at path. A missing file is created blank.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Creating blank config file at", path)
			cfg := &Config{
				CurrentProfile: "",
				Profiles:       make(map[string]*ProfileYAML),
				Style:          Style{},
				path:           path,
			}
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*ProfileYAML)
	}
	cfg.path = path
	return &cfg, nil
}

func (c *Config) Path() string {
	if c.path == "" {
		return CfgFile
	}
	return c.path
}

func (c *Config) Save() error {
	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	// profiles carry hosts and user names
	return os.WriteFile(path, data, 0600)
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (*ProfileYAML, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return p, nil
}

// Current returns the active profile.
func (c *Config) Current() (*ProfileYAML, error) {
	if c.CurrentProfile == "" {
		return nil, fmt.Errorf("%w: no active profile", ErrProfileNotFound)
	}
	return c.Profile(c.CurrentProfile)
}

// PutProfile stores p under its name, replacing an existing profile, and
// makes it the active one.
func (c *Config) PutProfile(p *ProfileYAML) {
	if c.Profiles == nil {
		c.Profiles = make(map[string]*ProfileYAML)
	}
	c.Profiles[p.Name] = p
	c.CurrentProfile = p.Name
}

func (c *Config) SwitchTo(name string) error {
	if _, err := c.Profile(name); err != nil {
		return err
	}
	c.CurrentProfile = name
	return nil
}

// RemoveProfile deletes the named profile. Removing the active profile
// leaves no profile active.
func (c *Config) RemoveProfile(name string) error {
	if _, err := c.Profile(name); err != nil {
		return err
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return nil
}
