// Package config handles persistent user configuration for loopia.
//
// Configuration is stored as JSON at ~/.config/loopia/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Values from the
// file are layered over built-in defaults and may be overridden by
// LOOPIA_* environment variables, e.g. LOOPIA_ENDPOINT=sandbox.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"nathanbeddoewebdev/loopia/pkg/loopia"
)

const (
	appDir    = "loopia"
	fileName  = "config.json"
	envPrefix = "LOOPIA_"

	// EndpointProduction and EndpointSandbox are the symbolic endpoint values.
	EndpointProduction = "production"
	EndpointSandbox    = "sandbox"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	// Endpoint is "production", "sandbox" or an explicit RPC URL.
	Endpoint string `json:"endpoint,omitempty" koanf:"endpoint" validate:"omitempty,endpoint"`

	// LogLevel controls stderr log verbosity.
	LogLevel string `json:"log_level,omitempty" koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// CustomerNumber is the default reseller customer for domain orders.
	CustomerNumber string `json:"customer_number,omitempty" koanf:"customer_number"`
}

// Defaults are applied below the config file and environment.
var Defaults = Config{
	Endpoint: EndpointProduction,
	LogLevel: "warn",
}

// EndpointURL resolves the symbolic endpoint names to RPC URLs.
func (c *Config) EndpointURL() string {
	switch strings.ToLower(c.Endpoint) {
	case "", EndpointProduction:
		return loopia.ProductionEndpoint
	case EndpointSandbox:
		return loopia.SandboxEndpoint
	default:
		return c.Endpoint
	}
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load returns the effective configuration: defaults, then the config file,
// then LOOPIA_* environment variables. The result is validated.
func Load() (*Config, error) {
	return loadFrom("")
}

// envLoader loads LOOPIA_* variables; LOOPIA_LOG_LEVEL becomes log_level.
// It is a variable so tests can replace it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// registerValidation adds the "endpoint" tag: a symbolic name or an http(s) URL.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("endpoint", func(fl validator.FieldLevel) bool {
		value := strings.ToLower(fl.Field().String())
		if value == EndpointProduction || value == EndpointSandbox {
			return true
		}
		u, err := url.Parse(value)
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("config: failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return fmt.Errorf("config: failed to register validation: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}

// LoadFile reads only the config file, without defaults or environment
// overrides. It is what `config set` edits. A missing file yields a zero
// Config.
func LoadFile() (*Config, error) {
	return loadFileFrom("")
}

func loadFileFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// LoadFrom returns the effective config using the file at path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// LoadFileFrom reads only the file at path. Intended for testing.
func LoadFileFrom(path string) (*Config, error) {
	return loadFileFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
