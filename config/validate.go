package config

import (
	"fmt"
)

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	switch c.Network {
	case Mainnet, Testnet:
	default:
		return fmt.Errorf("unknown network: %q", c.Network)
	}

	switch c.Keystore.Backend {
	case BackendBadger, BackendMemory:
	default:
		return fmt.Errorf("unknown keystore backend: %q", c.Keystore.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}

	return nil
}
