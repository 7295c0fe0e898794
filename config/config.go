// Package config holds the karst client configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/karstchain/karst-ledger/pkg/types"
)

// NetworkType identifies which network the client targets.
type NetworkType string

// Supported networks.
const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// KeystoreBackend selects the storage backend for the keystore.
type KeystoreBackend string

// Supported keystore backends.
const (
	// BackendBadger persists the keystore on disk.
	BackendBadger KeystoreBackend = "badger"
	// BackendMemory keeps the keystore in memory; used by tests and
	// throwaway sessions.
	BackendMemory KeystoreBackend = "memory"
)

// Config is the client configuration.
type Config struct {
	Network  NetworkType
	DataDir  string
	Keystore KeystoreConfig
	Log      LogConfig
}

// KeystoreConfig configures the keystore.
type KeystoreConfig struct {
	Backend KeystoreBackend
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

// DefaultDataDir returns the default data directory (~/.karst).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".karst"
	}
	return filepath.Join(home, ".karst")
}

// KeystoreDir returns the keystore database path:
// <datadir>/<network>/keystore
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, string(c.Network), "keystore")
}

// AddressPrefix returns the address display prefix for the configured
// network.
func (c *Config) AddressPrefix() string {
	if c.Network == Testnet {
		return types.TestnetPrefix
	}
	return types.MainnetPrefix
}
