// Package client builds the *loopia.API used by CLI commands from the
// config file, the keychain and the global flags.
package client

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/loopia/internal/config"
	"nathanbeddoewebdev/loopia/internal/logging"
	"nathanbeddoewebdev/loopia/internal/services/auth"
	"nathanbeddoewebdev/loopia/pkg/loopia"
)

// Options are the per-invocation overrides taken from global flags.
type Options struct {
	Endpoint string
	Sandbox  bool
	LogLevel string
}

// Factory builds an API for a command.
type Factory func(store auth.Store, opts Options) (*loopia.API, error)

var (
	mu      sync.RWMutex
	factory Factory = Default
)

// SetFactory replaces the factory. Intended for use in tests only.
func SetFactory(f Factory) {
	if f == nil {
		panic("client: nil factory")
	}
	mu.Lock()
	defer mu.Unlock()
	factory = f
}

// Reset restores the default factory. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	factory = Default
}

// Get builds an API with the current factory.
func Get(store auth.Store, opts Options) (*loopia.API, error) {
	mu.RLock()
	f := factory
	mu.RUnlock()
	return f(store, opts)
}

// ForCommand is Get with the options read from cmd's global flags.
func ForCommand(cmd *cobra.Command) (*loopia.API, error) {
	return Get(auth.DefaultStore(), OptionsFromCommand(cmd))
}

// OptionsFromCommand reads --endpoint, --sandbox and --log-level. Flags that
// are not registered (e.g. a subcommand run on its own) are left empty.
func OptionsFromCommand(cmd *cobra.Command) Options {
	var opts Options
	opts.Endpoint, _ = cmd.Flags().GetString("endpoint")
	opts.Sandbox, _ = cmd.Flags().GetBool("sandbox")
	opts.LogLevel, _ = cmd.Flags().GetString("log-level")
	return opts
}

// Default loads the config and credentials and returns an API whose calls
// go over XML-RPC through a logging decorator.
func Default(store auth.Store, opts Options) (*loopia.API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	username, password, err := auth.LoadCredentials(store)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	endpoint := ResolveEndpoint(cfg, opts)
	caller := logging.NewCaller(loopia.NewXMLRPCTransport(endpoint), logger)

	return loopia.New(username, password,
		loopia.WithEndpoint(endpoint),
		loopia.WithCaller(caller),
	), nil
}

// ResolveEndpoint picks the RPC URL: --sandbox, then --endpoint, then the
// configured endpoint.
func ResolveEndpoint(cfg *config.Config, opts Options) string {
	if opts.Sandbox {
		return loopia.SandboxEndpoint
	}
	if opts.Endpoint != "" {
		override := config.Config{Endpoint: opts.Endpoint}
		return override.EndpointURL()
	}
	return cfg.EndpointURL()
}

// CustomerNumber returns the configured reseller customer number, or "" if
// the config cannot be read.
func CustomerNumber() string {
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.CustomerNumber
}

// Describe formats an endpoint for status output.
func Describe(endpoint string) string {
	switch endpoint {
	case loopia.ProductionEndpoint:
		return fmt.Sprintf("production (%s)", endpoint)
	case loopia.SandboxEndpoint:
		return fmt.Sprintf("sandbox (%s)", endpoint)
	default:
		return endpoint
	}
}
