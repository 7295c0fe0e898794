package mnemonic

import (
	"errors"
	"testing"
)

func TestEnglishWordlist(t *testing.T) {
	wl := English()
	if got := len(wl.Words()); got != WordlistSize {
		t.Fatalf("wordlist size = %d, want %d", got, WordlistSize)
	}
	if wl.Name() != "english" {
		t.Errorf("Name() = %q, want %q", wl.Name(), "english")
	}

	if got := wl.Word(0); got != "abandon" {
		t.Errorf("Word(0) = %q, want %q", got, "abandon")
	}
	if got := wl.Word(2047); got != "zoo" {
		t.Errorf("Word(2047) = %q, want %q", got, "zoo")
	}
	if got := wl.Word(2048); got != "" {
		t.Errorf("Word(2048) = %q, want empty string", got)
	}

	idx, ok := wl.Index("abandon")
	if !ok || idx != 0 {
		t.Errorf("Index(abandon) = %d, %v, want 0, true", idx, ok)
	}
	if wl.Contains("zzzzzz") {
		t.Error("Contains() should be false for an unknown word")
	}
}

func TestEnglishWordlist_Shared(t *testing.T) {
	if English() != English() {
		t.Error("English() should return the shared instance")
	}
}

func TestWordlist_WordsIsACopy(t *testing.T) {
	words := English().Words()
	words[0] = "tampered"
	if got := English().Word(0); got != "abandon" {
		t.Errorf("Word(0) after mutating copy = %q, want %q", got, "abandon")
	}
}

func TestNewWordlist_Size(t *testing.T) {
	if _, err := NewWordlist("short", make([]string, 100)); !errors.Is(err, ErrWordlistSize) {
		t.Errorf("NewWordlist() error = %v, want %v", err, ErrWordlistSize)
	}
}

func TestNewWordlist_CopiesInput(t *testing.T) {
	words := English().Words()
	wl, err := NewWordlist("clone", words)
	if err != nil {
		t.Fatalf("NewWordlist() error: %v", err)
	}
	words[0] = "tampered"
	if got := wl.Word(0); got != "abandon" {
		t.Errorf("Word(0) after mutating input = %q, want %q", got, "abandon")
	}
}
