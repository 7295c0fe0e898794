package config

import (
	"path/filepath"
	"testing"

	"github.com/karstchain/karst-ledger/pkg/types"
)

func TestDefaults(t *testing.T) {
	for _, network := range []NetworkType{Mainnet, Testnet} {
		cfg := Default(network)
		if cfg.Network != network {
			t.Errorf("Default(%s).Network = %s", network, cfg.Network)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Default(%s) should validate: %v", network, err)
		}
	}
}

func TestKeystoreDir(t *testing.T) {
	cfg := DefaultMainnet()
	cfg.DataDir = "/data"

	want := filepath.Join("/data", "mainnet", "keystore")
	if got := cfg.KeystoreDir(); got != want {
		t.Errorf("KeystoreDir() = %q, want %q", got, want)
	}
}

func TestAddressPrefix(t *testing.T) {
	if got := DefaultMainnet().AddressPrefix(); got != types.MainnetPrefix {
		t.Errorf("mainnet prefix = %q, want %q", got, types.MainnetPrefix)
	}
	if got := DefaultTestnet().AddressPrefix(); got != types.TestnetPrefix {
		t.Errorf("testnet prefix = %q, want %q", got, types.TestnetPrefix)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad network", func(c *Config) { c.Network = "devnet" }},
		{"bad backend", func(c *Config) { c.Keystore.Backend = "sqlite" }},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }},
		{"empty datadir", func(c *Config) { c.DataDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMainnet()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
