package mnemonic

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordlistSize is the required number of words in a wordlist. Phrase words
// encode 11-bit indices, so the table must have exactly 2^11 entries.
const WordlistSize = 2048

// Wordlist is a read-only 2048-word table shared by any number of Mnemonic
// instances. It exposes no mutating accessor, so a caller can never alter
// the table another instance is validating against.
type Wordlist struct {
	name  string
	words []string
	index map[string]int
}

// NewWordlist builds a wordlist from an ordered word table. The words are
// copied, so later changes to the input slice do not affect the wordlist.
func NewWordlist(name string, words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, ErrWordlistSize
	}
	w := &Wordlist{
		name:  name,
		words: make([]string, WordlistSize),
		index: make(map[string]int, WordlistSize),
	}
	copy(w.words, words)
	for i, word := range w.words {
		w.index[word] = i
	}
	return w, nil
}

// english is built once at startup from the standard table and shared.
var english = func() *Wordlist {
	w, err := NewWordlist("english", wordlists.English)
	if err != nil {
		panic("mnemonic: english wordlist: " + err.Error())
	}
	return w
}()

// English returns the standard English wordlist.
func English() *Wordlist {
	return english
}

// knownWordlists returns the wordlists tried during auto-detection, in
// order. Currently only English; additional languages slot in here.
func knownWordlists() []*Wordlist {
	return []*Wordlist{english}
}

// Name returns the wordlist's language name.
func (w *Wordlist) Name() string {
	return w.name
}

// Word returns the word at index i, or the empty string when i is out of
// range.
func (w *Wordlist) Word(i int) string {
	if i < 0 || i >= len(w.words) {
		return ""
	}
	return w.words[i]
}

// Index returns the position of word in the table.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Contains reports whether word is in the table.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Words returns a fresh copy of the word table.
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}
