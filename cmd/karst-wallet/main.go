// karst-wallet is a command-line key and mnemonic tool for the karst ledger.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/karstchain/karst-ledger/config"
	"github.com/karstchain/karst-ledger/internal/keystore"
	"github.com/karstchain/karst-ledger/internal/log"
	"github.com/karstchain/karst-ledger/internal/storage"
	"github.com/karstchain/karst-ledger/pkg/crypto"
	"github.com/karstchain/karst-ledger/pkg/curve"
	"github.com/karstchain/karst-ledger/pkg/mnemonic"
	"github.com/karstchain/karst-ledger/pkg/types"
	"golang.org/x/term"
)

func main() {
	cfg := config.DefaultMainnet()

	// Parse global flags that appear before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			cfg.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			cfg.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--network" && len(args) > 1:
			cfg.Network = config.NetworkType(args[1])
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			cfg.Network = config.NetworkType(args[0][len("--network="):])
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--memory":
			cfg.Keystore.Backend = config.BackendMemory
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if err := cfg.Validate(); err != nil {
		fatalf("invalid configuration: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatalf("init logging: %v", err)
	}
	types.SetAddressPrefix(cfg.AddressPrefix())

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "mnemonic":
		cmdMnemonic(cmdArgs)
	case "wallet":
		cmdWallet(cfg, cmdArgs)
	case "key":
		cmdKey(cmdArgs)
	case "point":
		cmdPoint(cmdArgs)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: karst-wallet [global flags] <command> [args]

Global flags:
  --datadir <dir>      data directory (default ~/.karst)
  --network <name>     mainnet or testnet (default mainnet)
  --log-level <level>  debug, info, warn, error (default info)
  --memory             use an in-memory keystore (testing only)

Commands:
  mnemonic new [words]          generate a phrase (12, 15, 18, 21, or 24 words)
  mnemonic check <phrase>       validate a phrase
  mnemonic seed <phrase>        derive the 64-byte seed from a phrase
  wallet create <name>          generate a phrase and store its encrypted seed
  wallet restore <name> <phrase>  store the encrypted seed of an existing phrase
  wallet list                   list stored wallets
  wallet show <name>            show the address of a stored wallet
  wallet delete <name>          remove a stored wallet
  key derive <phrase>           derive the account key address from a phrase
  point compress <x> <y>        compress hex point coordinates
  point decompress <hex>        expand a 33-byte compressed point
`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// readPassword prompts on stderr and reads without echo.
func readPassword(prompt string) []byte {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fatalf("read password: %v", err)
	}
	return pw
}

func readNewPassword() []byte {
	pw := readPassword("New password: ")
	confirm := readPassword("Confirm password: ")
	if !bytes.Equal(pw, confirm) {
		fatalf("passwords do not match")
	}
	if len(pw) == 0 {
		fatalf("password must not be empty")
	}
	return pw
}

func openKeystore(cfg *config.Config) (*keystore.Keystore, func()) {
	var db storage.DB
	switch cfg.Keystore.Backend {
	case config.BackendMemory:
		db = storage.NewMemory()
	default:
		var err error
		db, err = storage.NewBadger(cfg.KeystoreDir())
		if err != nil {
			fatalf("open keystore: %v", err)
		}
	}
	return keystore.New(db), func() {
		if err := db.Close(); err != nil {
			log.Storage.Error().Err(err).Msg("close keystore database")
		}
	}
}

func cmdMnemonic(args []string) {
	if len(args) == 0 {
		fatalf("mnemonic requires a subcommand: new, check, seed")
	}

	switch args[0] {
	case "new":
		bits := mnemonic.DefaultEntropyBits
		if len(args) > 1 {
			words, err := strconv.Atoi(args[1])
			if err != nil {
				fatalf("invalid word count: %s", args[1])
			}
			// 3 words per 32 entropy bits.
			bits = words * 32 / 3
		}
		m, err := mnemonic.Generate(bits, nil)
		if err != nil {
			fatalf("generate mnemonic: %v", err)
		}
		fmt.Println(m.Phrase())

	case "check":
		phrase := strings.Join(args[1:], " ")
		if mnemonic.IsValid(phrase, nil) {
			fmt.Println("valid")
		} else {
			fmt.Println("invalid")
			os.Exit(1)
		}

	case "seed":
		phrase := strings.Join(args[1:], " ")
		m, err := mnemonic.FromPhrase(phrase, nil)
		if err != nil {
			fatalf("invalid phrase: %v", err)
		}
		passphrase := readPassword("Passphrase (empty for none): ")
		fmt.Println(hex.EncodeToString(m.Seed(string(passphrase))))

	default:
		fatalf("unknown mnemonic subcommand: %s", args[0])
	}
}

func cmdWallet(cfg *config.Config, args []string) {
	if len(args) == 0 {
		fatalf("wallet requires a subcommand: create, restore, list, show, delete")
	}

	ks, closeKS := openKeystore(cfg)
	defer closeKS()

	switch args[0] {
	case "create":
		if len(args) < 2 {
			fatalf("usage: wallet create <name>")
		}
		name := args[1]
		m, err := mnemonic.Generate(256, nil)
		if err != nil {
			fatalf("generate mnemonic: %v", err)
		}
		password := readNewPassword()
		seed := m.Seed("")
		if err := ks.Create(name, seed, password, keystore.DefaultParams()); err != nil {
			fatalf("create wallet: %v", err)
		}
		log.Wallet.Info().Str("wallet", name).Msg("wallet created")
		fmt.Println("Recovery phrase (write it down, it is shown only once):")
		fmt.Println()
		fmt.Println("  " + m.Phrase())
		fmt.Println()
		fmt.Printf("Address: %s\n", walletAddress(seed))

	case "restore":
		if len(args) < 3 {
			fatalf("usage: wallet restore <name> <phrase>")
		}
		name := args[1]
		m, err := mnemonic.FromPhrase(strings.Join(args[2:], " "), nil)
		if err != nil {
			fatalf("invalid phrase: %v", err)
		}
		password := readNewPassword()
		seed := m.Seed("")
		if err := ks.Create(name, seed, password, keystore.DefaultParams()); err != nil {
			fatalf("restore wallet: %v", err)
		}
		log.Wallet.Info().Str("wallet", name).Msg("wallet restored")
		fmt.Printf("Address: %s\n", walletAddress(seed))

	case "list":
		names, err := ks.List()
		if err != nil {
			fatalf("list wallets: %v", err)
		}
		if len(names) == 0 {
			fmt.Println("no wallets")
			return
		}
		for _, name := range names {
			created, err := ks.CreatedAt(name)
			if err != nil {
				fatalf("read wallet %q: %v", name, err)
			}
			fmt.Printf("%s\t(created %s)\n", name, created.Format("2006-01-02"))
		}

	case "show":
		if len(args) < 2 {
			fatalf("usage: wallet show <name>")
		}
		name := args[1]
		password := readPassword("Password: ")
		seed, err := ks.Load(name, password)
		if err != nil {
			fatalf("load wallet: %v", err)
		}
		key := seedKey(seed)
		defer key.Zero()
		fmt.Printf("Address: %s\n", key.Address())
		fmt.Printf("Public key: %s\n", hex.EncodeToString(key.PublicKey()))

	case "delete":
		if len(args) < 2 {
			fatalf("usage: wallet delete <name>")
		}
		if err := ks.Delete(args[1]); err != nil {
			fatalf("delete wallet: %v", err)
		}
		log.Wallet.Info().Str("wallet", args[1]).Msg("wallet deleted")

	default:
		fatalf("unknown wallet subcommand: %s", args[0])
	}
}

// walletAddress derives the display address for a freshly stored seed.
func walletAddress(seed []byte) types.Address {
	key := seedKey(seed)
	defer key.Zero()
	return key.Address()
}

// seedKey builds the account signing key from the leading seed bytes.
func seedKey(seed []byte) *crypto.PrivateKey {
	if len(seed) < crypto.PrivateKeySize {
		fatalf("seed too short: %d bytes", len(seed))
	}
	key, err := crypto.PrivateKeyFromBytes(seed[:crypto.PrivateKeySize])
	if err != nil {
		fatalf("derive key: %v", err)
	}
	return key
}

func cmdKey(args []string) {
	if len(args) == 0 || args[0] != "derive" {
		fatalf("key requires the derive subcommand")
	}
	if len(args) < 2 {
		fatalf("usage: key derive <phrase>")
	}
	m, err := mnemonic.FromPhrase(strings.Join(args[1:], " "), nil)
	if err != nil {
		fatalf("invalid phrase: %v", err)
	}
	passphrase := readPassword("Passphrase (empty for none): ")
	key := seedKey(m.Seed(string(passphrase)))
	defer key.Zero()

	fp := crypto.Fingerprint(key.PublicKey())
	fmt.Printf("Address: %s\n", key.Address())
	fmt.Printf("Public key: %s\n", hex.EncodeToString(key.PublicKey()))
	fmt.Printf("Fingerprint: %s\n", hex.EncodeToString(fp[:]))
}

func cmdPoint(args []string) {
	if len(args) == 0 {
		fatalf("point requires a subcommand: compress, decompress")
	}

	switch args[0] {
	case "compress":
		if len(args) < 3 {
			fatalf("usage: point compress <x-hex> <y-hex>")
		}
		x, okX := new(big.Int).SetString(strings.TrimPrefix(args[1], "0x"), 16)
		y, okY := new(big.Int).SetString(strings.TrimPrefix(args[2], "0x"), 16)
		if !okX || !okY {
			fatalf("coordinates must be hex integers")
		}
		p, err := curve.NewPoint(x, y)
		if err != nil {
			fatalf("invalid point: %v", err)
		}
		h, err := p.Hex()
		if err != nil {
			fatalf("serialize point: %v", err)
		}
		fmt.Println(h)

	case "decompress":
		if len(args) < 2 {
			fatalf("usage: point decompress <hex>")
		}
		p, err := curve.ParseHex(strings.TrimPrefix(args[1], "0x"))
		if err != nil {
			fatalf("invalid point: %v", err)
		}
		fmt.Printf("x: %064x\n", p.X())
		fmt.Printf("y: %064x\n", p.Y())

	default:
		fatalf("unknown point subcommand: %s", args[0])
	}
}
