package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"passvault/internal/domain"
	"passvault/internal/services/generator"
)

// ConfigFile is the name of the optional YAML file inside the home directory.
const ConfigFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home                string        `yaml:"-"`
	VaultPath           string        `yaml:"vault_path"`
	FormatVersion       int           `yaml:"format_version"`
	LogLevel            string        `yaml:"log_level"`
	Lock                bool          `yaml:"lock"`
	GeneratorLength     int           `yaml:"generator_length"`
	ClipboardClearAfter time.Duration `yaml:"clipboard_clear_after"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig(home string) *Config {
	return &Config{
		Home:            home,
		VaultPath:       filepath.Join(home, "vault.dat"),
		FormatVersion:   int(domain.FormatV1),
		LogLevel:        "warn",
		Lock:            true,
		GeneratorLength: generator.DefaultLength,
	}
}

// LoadConfig builds a Config for home. Values come from, in increasing
// precedence: defaults, the YAML file at path (or <home>/config.yaml when
// path is empty; only an explicit path must exist), and the environment:
// PASSVAULT_VAULT, PASSVAULT_FORMAT_VERSION, PASSVAULT_LOG_LEVEL,
// PASSVAULT_LOCK, PASSVAULT_GENERATOR_LENGTH, PASSVAULT_CLIPBOARD_CLEAR_AFTER.
func LoadConfig(home, path string) (*Config, error) {
	cfg := DefaultConfig(home)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, ConfigFile)
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "cannot parse config %s", path)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, errors.Wrapf(err, "cannot read config %s", path)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.VaultPath) {
		cfg.VaultPath = filepath.Join(home, cfg.VaultPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PASSVAULT_VAULT"); ok && v != "" {
		c.VaultPath = v
	}
	if v, ok := os.LookupEnv("PASSVAULT_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("PASSVAULT_FORMAT_VERSION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf("PASSVAULT_FORMAT_VERSION has invalid value %q", v)
		}
		c.FormatVersion = n
	}
	if v, ok := os.LookupEnv("PASSVAULT_LOCK"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Errorf("PASSVAULT_LOCK has invalid value %q", v)
		}
		c.Lock = b
	}
	if v, ok := os.LookupEnv("PASSVAULT_GENERATOR_LENGTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf("PASSVAULT_GENERATOR_LENGTH has invalid value %q", v)
		}
		c.GeneratorLength = n
	}
	if v, ok := os.LookupEnv("PASSVAULT_CLIPBOARD_CLEAR_AFTER"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "PASSVAULT_CLIPBOARD_CLEAR_AFTER has invalid duration %q", v)
		}
		c.ClipboardClearAfter = d
	}
	return nil
}

// Validate rejects values the app cannot run with.
func (c *Config) Validate() error {
	if c.VaultPath == "" {
		return errors.New("vault_path must not be empty")
	}
	if c.FormatVersion < 0 || c.FormatVersion > 255 || !domain.FormatVersion(c.FormatVersion).Valid() {
		return errors.Errorf("unsupported format_version %d", c.FormatVersion)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.GeneratorLength < generator.MinLength {
		return errors.Errorf("generator_length must be at least %d, got %d", generator.MinLength, c.GeneratorLength)
	}
	if c.ClipboardClearAfter < 0 {
		return errors.Errorf("clipboard_clear_after must not be negative, got %s", c.ClipboardClearAfter)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, errors.Errorf("invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Format returns the configured vault layout.
func (c *Config) Format() domain.FormatVersion {
	return domain.FormatVersion(c.FormatVersion)
}
