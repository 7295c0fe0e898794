package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestHashRoundTrip(t *testing.T) {
	h, err := HexToHash(strings.Repeat("ab", HashSize))
	if err != nil {
		t.Fatalf("HexToHash() error: %v", err)
	}
	if h.IsZero() {
		t.Error("hash should not be zero")
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back Hash
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != h {
		t.Errorf("round trip = %v, want %v", back, h)
	}
}

func TestHexToHash_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not hex", "zz"},
		{"too short", "abcd"},
		{"too long", strings.Repeat("ab", HashSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := HexToHash(tt.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAddressString(t *testing.T) {
	SetAddressPrefix(MainnetPrefix)

	var a Address
	copy(a[:], bytes.Repeat([]byte{0x12}, AddressSize))

	want := MainnetPrefix + strings.Repeat("12", AddressSize)
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	parsed, err := ParseAddress(a.String())
	if err != nil {
		t.Fatalf("ParseAddress() error: %v", err)
	}
	if parsed != a {
		t.Error("parsed address should equal original")
	}
}

func TestParseAddress(t *testing.T) {
	raw := strings.Repeat("34", AddressSize)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"raw hex", raw, false},
		{"mainnet prefix", MainnetPrefix + raw, false},
		{"testnet prefix", TestnetPrefix + raw, false},
		{"empty", "", true},
		{"bad hex", MainnetPrefix + "zz", true},
		{"wrong length", raw[:10], true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAddress(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	var a Address
	a[0] = 0xff

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back Address
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != a {
		t.Errorf("round trip = %v, want %v", back, a)
	}
}
