// Package keystore stores password-encrypted wallet seeds in the storage
// layer. Each wallet is a versioned JSON record holding the Argon2id +
// XChaCha20-Poly1305 encrypted seed bytes.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/karstchain/karst-ledger/internal/storage"
)

// recordVersion is the current wallet record format version.
const recordVersion = 1

// namespace isolates keystore records within a shared database.
var namespace = []byte("keystore/wallet/")

var (
	// ErrWalletExists is returned by Create when the wallet name is taken.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrWalletNotFound is returned when no wallet has the given name.
	ErrWalletNotFound = errors.New("wallet not found")
)

// walletRecord is the stored JSON format for an encrypted wallet.
type walletRecord struct {
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	EncryptedSeed []byte    `json:"encrypted_seed"`
}

// Keystore manages encrypted seed storage over a key-value database.
type Keystore struct {
	db storage.DB
}

// New creates a keystore over the given database. Records are kept under a
// keystore-specific key prefix, so the database may be shared.
func New(db storage.DB) *Keystore {
	return &Keystore{db: storage.NewPrefixDB(db, namespace)}
}

// Create encrypts seed with password and stores it as a new wallet record.
func (ks *Keystore) Create(name string, seed, password []byte, params EncryptionParams) error {
	if name == "" {
		return fmt.Errorf("wallet name must not be empty")
	}
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet %q: %w", name, err)
	}
	if exists {
		return fmt.Errorf("wallet %q: %w", name, ErrWalletExists)
	}

	encrypted, err := Encrypt(seed, password, params)
	if err != nil {
		return fmt.Errorf("encrypt seed: %w", err)
	}

	record := walletRecord{
		Version:       recordVersion,
		CreatedAt:     time.Now().UTC(),
		EncryptedSeed: encrypted,
	}
	data, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := ks.db.Put([]byte(name), data); err != nil {
		return fmt.Errorf("store wallet %q: %w", name, err)
	}
	return nil
}

// Load decrypts a wallet and returns the seed bytes.
func (ks *Keystore) Load(name string, password []byte) ([]byte, error) {
	record, err := ks.read(name)
	if err != nil {
		return nil, err
	}
	seed, err := Decrypt(record.EncryptedSeed, password)
	if err != nil {
		return nil, fmt.Errorf("decrypt wallet %q: %w", name, err)
	}
	return seed, nil
}

// Has reports whether a wallet with the given name exists.
func (ks *Keystore) Has(name string) (bool, error) {
	return ks.db.Has([]byte(name))
}

// List returns the names of all stored wallets, sorted.
func (ks *Keystore) List() ([]string, error) {
	var names []string
	err := ks.db.ForEach(nil, func(key, value []byte) error {
		names = append(names, string(key))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// CreatedAt returns the creation time recorded for a wallet.
func (ks *Keystore) CreatedAt(name string) (time.Time, error) {
	record, err := ks.read(name)
	if err != nil {
		return time.Time{}, err
	}
	return record.CreatedAt, nil
}

// Delete removes a wallet record.
func (ks *Keystore) Delete(name string) error {
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet %q: %w", name, err)
	}
	if !exists {
		return fmt.Errorf("wallet %q: %w", name, ErrWalletNotFound)
	}
	return ks.db.Delete([]byte(name))
}

func (ks *Keystore) read(name string) (*walletRecord, error) {
	data, err := ks.db.Get([]byte(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("wallet %q: %w", name, ErrWalletNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read wallet %q: %w", name, err)
	}
	var record walletRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse wallet %q: %w", name, err)
	}
	if record.Version != recordVersion {
		return nil, fmt.Errorf("unsupported wallet version: %d", record.Version)
	}
	return &record, nil
}
