package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "log-level").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
var Keys = []KeySpec{
	{
		Name:        "endpoint",
		Description: "API endpoint: production, sandbox or an RPC URL",
		Get:         func(cfg *Config) string { return cfg.Endpoint },
		Set:         func(cfg *Config, v string) { cfg.Endpoint = v },
	},
	{
		Name:        "log-level",
		Description: "Log verbosity: debug, info, warn or error",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = strings.ToLower(v) },
	},
	{
		Name:        "customer-number",
		Description: "Reseller customer number used by 'domain order'",
		Get:         func(cfg *Config) string { return cfg.CustomerNumber },
		Set:         func(cfg *Config, v string) { cfg.CustomerNumber = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	b.WriteString("\nEnvironment variables LOOPIA_ENDPOINT, LOOPIA_LOG_LEVEL and\nLOOPIA_CUSTOMER_NUMBER override the file.\n")
	return b.String()
}
