package mnemonic

import (
	"errors"
)

var (
	// ErrEntropyLength is returned when a requested or supplied entropy size
	// is below 128 bits, above 256 bits, or not a multiple of 32 bits.
	ErrEntropyLength = errors.New("entropy length must be 128-256 bits and a multiple of 32")

	// ErrUnknownWordlist is returned when a phrase cannot be matched against
	// any known wordlist.
	ErrUnknownWordlist = errors.New("phrase does not match any known wordlist")

	// ErrInvalidMnemonic is returned when a phrase fails word-membership or
	// checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	// ErrWordlistSize is returned when a wordlist does not contain exactly
	// 2048 words.
	ErrWordlistSize = errors.New("wordlist must contain exactly 2048 words")
)
