// Package crypto provides the signing and hashing primitives for the karst
// ledger client: Schnorr signatures over secp256k1 and BLAKE3 hashing.
package crypto

import (
	"github.com/karstchain/karst-ledger/pkg/types"
	"github.com/zeebo/blake3"
)

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// AddressFromPubKey derives an address from a compressed public key.
// Address = BLAKE3(compressed_pubkey)[:20].
func AddressFromPubKey(pubKey []byte) types.Address {
	h := Hash(pubKey)
	var addr types.Address
	copy(addr[:], h[:types.AddressSize])
	return addr
}

// Fingerprint returns a short identifier for a compressed public key,
// used to label keystore entries.
func Fingerprint(pubKey []byte) [4]byte {
	h := Hash(pubKey)
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}
