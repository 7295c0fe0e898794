// Package mnemonic implements BIP39-style mnemonic phrases: entropy is
// extended with a SHA-256 checksum, split into 11-bit groups, and mapped
// through a 2048-word table. A phrase plus an optional passphrase derives a
// 64-byte seed via PBKDF2-HMAC-SHA512.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// MinEntropyBits and MaxEntropyBits bound the supported entropy sizes.
	// Valid sizes are multiples of 32 in this range, giving phrases of
	// 12, 15, 18, 21, or 24 words.
	MinEntropyBits = 128
	MaxEntropyBits = 256

	// DefaultEntropyBits is the entropy size used when none is requested.
	DefaultEntropyBits = 128

	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	// seedIterations is the PBKDF2 iteration count fixed by the scheme.
	seedIterations = 2048

	// seedSaltPrefix is prepended to the passphrase to form the PBKDF2 salt.
	seedSaltPrefix = "mnemonic"
)

// Mnemonic is a validated phrase together with the wordlist it was encoded
// against. Instances are immutable and safe for concurrent use.
type Mnemonic struct {
	phrase   string
	wordlist *Wordlist
}

// New generates a fresh mnemonic with the default entropy size and the
// English wordlist.
func New() (*Mnemonic, error) {
	return Generate(DefaultEntropyBits, nil)
}

// FromWordlist generates a fresh mnemonic with the default entropy size
// against an explicit wordlist.
func FromWordlist(wl *Wordlist) (*Mnemonic, error) {
	return Generate(DefaultEntropyBits, wl)
}

// Generate creates a mnemonic from fresh random entropy of the given bit
// length. A nil wordlist selects English.
func Generate(bits int, wl *Wordlist) (*Mnemonic, error) {
	if !validEntropyBits(bits) {
		return nil, ErrEntropyLength
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	return FromEntropy(entropy, wl)
}

// FromEntropy derives the mnemonic encoding the given entropy bytes. A nil
// wordlist selects English.
func FromEntropy(entropy []byte, wl *Wordlist) (*Mnemonic, error) {
	if !validEntropyBits(len(entropy) * 8) {
		return nil, ErrEntropyLength
	}
	if wl == nil {
		wl = English()
	}
	return &Mnemonic{phrase: encodeEntropy(entropy, wl), wordlist: wl}, nil
}

// FromPhrase validates an existing phrase. The phrase is NFKD-normalized
// before any lookup. A nil wordlist triggers auto-detection across the
// known wordlists (ErrUnknownWordlist when none matches); a phrase that
// fails word-membership or checksum validation against the resolved
// wordlist returns ErrInvalidMnemonic.
func FromPhrase(phrase string, wl *Wordlist) (*Mnemonic, error) {
	words := strings.Fields(norm.NFKD.String(phrase))
	if wl == nil {
		wl = detectWordlist(words)
		if wl == nil {
			return nil, ErrUnknownWordlist
		}
	}
	if !validWordCount(len(words)) {
		return nil, ErrInvalidMnemonic
	}
	indices, ok := wordIndices(words, wl)
	if !ok {
		return nil, ErrInvalidMnemonic
	}
	if !checksumMatches(indices) {
		return nil, ErrInvalidMnemonic
	}
	return &Mnemonic{phrase: strings.Join(words, " "), wordlist: wl}, nil
}

// Phrase returns the space-joined phrase.
func (m *Mnemonic) Phrase() string {
	return m.phrase
}

// Words returns the phrase as an ordered word slice.
func (m *Mnemonic) Words() []string {
	return strings.Fields(m.phrase)
}

// Wordlist returns the shared wordlist the phrase was encoded against.
func (m *Mnemonic) Wordlist() *Wordlist {
	return m.wordlist
}

// Seed derives the 64-byte binary seed for the phrase and passphrase using
// PBKDF2-HMAC-SHA512 with 2048 iterations. The password is the normalized
// phrase and the salt is "mnemonic" plus the normalized passphrase. The
// derivation is deterministic and returns a fresh buffer on every call.
func (m *Mnemonic) Seed(passphrase string) []byte {
	password := []byte(norm.NFKD.String(m.phrase))
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// IsValid reports whether phrase is a well-formed mnemonic. A nil wordlist
// triggers auto-detection. Unlike FromPhrase this is a predicate: every
// failure, including malformed input, yields false rather than an error.
func IsValid(phrase string, wl *Wordlist) bool {
	words := strings.Fields(norm.NFKD.String(phrase))
	if wl == nil {
		wl = detectWordlist(words)
		if wl == nil {
			return false
		}
	}
	if !validWordCount(len(words)) {
		return false
	}
	indices, ok := wordIndices(words, wl)
	if !ok {
		return false
	}
	return checksumMatches(indices)
}

func validEntropyBits(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%32 == 0
}

// validWordCount accepts the phrase lengths produced by the supported
// entropy sizes: 12, 15, 18, 21, or 24 words.
func validWordCount(n int) bool {
	return n >= 12 && n <= 24 && n%3 == 0
}

// detectWordlist returns the first known wordlist containing every word,
// or nil. An empty phrase matches nothing.
func detectWordlist(words []string) *Wordlist {
	if len(words) == 0 {
		return nil
	}
next:
	for _, wl := range knownWordlists() {
		for _, word := range words {
			if !wl.Contains(word) {
				continue next
			}
		}
		return wl
	}
	return nil
}

// wordIndices maps every word to its wordlist index, failing closed on the
// first unknown word.
func wordIndices(words []string, wl *Wordlist) ([]int, bool) {
	indices := make([]int, len(words))
	for i, word := range words {
		idx, ok := wl.Index(word)
		if !ok {
			return nil, false
		}
		indices[i] = idx
	}
	return indices, true
}

// encodeEntropy expands the entropy bytes to bits, appends the checksum
// (one bit per 32 entropy bits, taken from the front of the SHA-256
// digest), and maps consecutive 11-bit groups to words.
func encodeEntropy(entropy []byte, wl *Wordlist) string {
	entropyBits := len(entropy) * 8
	checksum := sha256.Sum256(entropy)
	totalBits := entropyBits + entropyBits/32

	bitAt := func(i int) int {
		if i < entropyBits {
			return int(entropy[i/8]>>(7-i%8)) & 1
		}
		i -= entropyBits
		return int(checksum[i/8]>>(7-i%8)) & 1
	}

	words := make([]string, 0, totalBits/11)
	for w := 0; w < totalBits/11; w++ {
		idx := 0
		for b := 0; b < 11; b++ {
			idx = idx<<1 | bitAt(w*11+b)
		}
		words = append(words, wl.Word(idx))
	}
	return strings.Join(words, " ")
}

// checksumMatches reconstructs the bit string from word indices, splits off
// the trailing totalBits/33 checksum bits, and compares them against the
// checksum recomputed over the entropy portion.
func checksumMatches(indices []int) bool {
	totalBits := len(indices) * 11
	checksumBits := totalBits / 33
	entropyBits := totalBits - checksumBits

	entropy := make([]byte, entropyBits/8)
	embedded := 0
	pos := 0
	for _, idx := range indices {
		for b := 10; b >= 0; b-- {
			bit := (idx >> b) & 1
			if pos < entropyBits {
				if bit == 1 {
					entropy[pos/8] |= 1 << (7 - pos%8)
				}
			} else {
				embedded = embedded<<1 | bit
			}
			pos++
		}
	}

	digest := sha256.Sum256(entropy)
	want := int(digest[0]) >> (8 - checksumBits)
	return embedded == want
}
