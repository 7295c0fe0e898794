package curve

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
)

// Known secp256k1 multiples of the base point.
const (
	gXHex  = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gYHex  = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	g2XHex = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	g2YHex = "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
	g3XHex = "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
	g3YHex = "388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("invalid hex integer %q", s)
	}
	return v
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(hexInt(t, gXHex), hexInt(t, gYHex))
	if err != nil {
		t.Fatalf("NewPoint() error: %v", err)
	}
	if p.IsInfinity() {
		t.Error("constructed point should not be infinity")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if p.X().Cmp(hexInt(t, gXHex)) != 0 {
		t.Errorf("X() = %x, want %s", p.X(), gXHex)
	}
	if p.Y().Cmp(hexInt(t, gYHex)) != 0 {
		t.Errorf("Y() = %x, want %s", p.Y(), gYHex)
	}
}

func TestNewPoint_Invalid(t *testing.T) {
	fieldPrime := P()

	tests := []struct {
		name string
		x, y *big.Int
	}{
		{"origin", big.NewInt(0), big.NewInt(0)},
		{"both missing", nil, nil},
		{"x missing", nil, hexInt(t, gYHex)},
		{"y missing", hexInt(t, gXHex), nil},
		{"off curve", big.NewInt(1), big.NewInt(1)},
		{"wrong y for x", hexInt(t, gXHex), new(big.Int).Add(hexInt(t, gYHex), big.NewInt(1))},
		{"x out of field", fieldPrime, hexInt(t, gYHex)},
		{"negative x", big.NewInt(-1), hexInt(t, gYHex)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoint(tt.x, tt.y)
			if !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("NewPoint() error = %v, want kind %v", err, ErrInvalidPoint)
			}
		})
	}
}

func TestGenerator(t *testing.T) {
	g := Generator()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if g.X().Cmp(hexInt(t, gXHex)) != 0 {
		t.Errorf("generator x = %x, want %s", g.X(), gXHex)
	}
	if g.Y().Cmp(hexInt(t, gYHex)) != 0 {
		t.Errorf("generator y = %x, want %s", g.Y(), gYHex)
	}
}

func TestPointMul(t *testing.T) {
	g := Generator()

	tests := []struct {
		name  string
		k     *big.Int
		wantX string
		wantY string
	}{
		{"one", big.NewInt(1), gXHex, gYHex},
		{"two", big.NewInt(2), g2XHex, g2YHex},
		{"three", big.NewInt(3), g3XHex, g3YHex},
		{"order plus one wraps", new(big.Int).Add(N(), big.NewInt(1)), gXHex, gYHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := g.Mul(tt.k)
			if err != nil {
				t.Fatalf("Mul() error: %v", err)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if p.X().Cmp(hexInt(t, tt.wantX)) != 0 {
				t.Errorf("x = %x, want %s", p.X(), tt.wantX)
			}
			if p.Y().Cmp(hexInt(t, tt.wantY)) != 0 {
				t.Errorf("y = %x, want %s", p.Y(), tt.wantY)
			}
		})
	}
}

func TestPointMul_NilScalar(t *testing.T) {
	_, err := Generator().Mul(nil)
	if !errors.Is(err, ErrScalarType) {
		t.Errorf("Mul(nil) error = %v, want kind %v", err, ErrScalarType)
	}
}

func TestPointMul_Infinity(t *testing.T) {
	p, err := Generator().Mul(N())
	if err != nil {
		t.Fatalf("Mul(N) error: %v", err)
	}
	if !p.IsInfinity() {
		t.Fatal("Mul(N) should yield the point at infinity")
	}

	if p.X() != nil || p.Y() != nil {
		t.Error("infinity point should have no coordinates")
	}
	if err := p.Validate(); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("Validate() error = %v, want kind %v", err, ErrInvalidPoint)
	}
	if _, err := p.SerializeCompressed(); !errors.Is(err, ErrInfinity) {
		t.Errorf("SerializeCompressed() error = %v, want kind %v", err, ErrInfinity)
	}
	if _, err := p.Hex(); !errors.Is(err, ErrInfinity) {
		t.Errorf("Hex() error = %v, want kind %v", err, ErrInfinity)
	}
	if _, err := p.Mul(big.NewInt(2)); !errors.Is(err, ErrInfinity) {
		t.Errorf("Mul() on infinity error = %v, want kind %v", err, ErrInfinity)
	}
}

func TestSerializeCompressed(t *testing.T) {
	g := Generator()

	b, err := g.SerializeCompressed()
	if err != nil {
		t.Fatalf("SerializeCompressed() error: %v", err)
	}
	if len(b) != CompressedPointSize {
		t.Fatalf("serialized length = %d, want %d", len(b), CompressedPointSize)
	}
	if b[0] != 0x02 {
		t.Errorf("format byte = %#02x, want 0x02 (even y)", b[0])
	}

	h, err := g.Hex()
	if err != nil {
		t.Fatalf("Hex() error: %v", err)
	}
	if want := "02" + gXHex; h != want {
		t.Errorf("Hex() = %s, want %s", h, want)
	}
}

func TestParsePoint_RoundTrip(t *testing.T) {
	g := Generator()

	for _, k := range []int64{1, 2, 3, 7, 1000, 987654321} {
		p, err := g.Mul(big.NewInt(k))
		if err != nil {
			t.Fatalf("Mul(%d) error: %v", k, err)
		}
		b, err := p.SerializeCompressed()
		if err != nil {
			t.Fatalf("SerializeCompressed() error: %v", err)
		}
		back, err := ParsePoint(b)
		if err != nil {
			t.Fatalf("ParsePoint() error: %v", err)
		}
		if back.X().Cmp(p.X()) != 0 || back.Y().Cmp(p.Y()) != 0 {
			t.Errorf("k=%d: round trip changed coordinates", k)
		}

		b2, err := back.SerializeCompressed()
		if err != nil {
			t.Fatalf("SerializeCompressed() error: %v", err)
		}
		if !bytes.Equal(b, b2) {
			t.Errorf("k=%d: re-serialization differs", k)
		}
	}
}

func TestParsePoint_Invalid(t *testing.T) {
	valid, err := Generator().SerializeCompressed()
	if err != nil {
		t.Fatalf("SerializeCompressed() error: %v", err)
	}

	uncompressedPrefix := append([]byte{0x04}, valid[1:]...)
	noPointX := append([]byte{0x02}, make([]byte, 32)...)

	tests := []struct {
		name     string
		input    []byte
		wantKind ErrorKind
	}{
		{"empty", nil, ErrInvalidLength},
		{"32 bytes", valid[:32], ErrInvalidLength},
		{"34 bytes", append(valid, 0x00), ErrInvalidLength},
		{"uncompressed prefix", uncompressedPrefix, ErrInvalidPrefix},
		{"zero prefix", append([]byte{0x00}, valid[1:]...), ErrInvalidPrefix},
		{"no point for x", noPointX, ErrInvalidX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoint(tt.input)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("ParsePoint() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	h, err := Generator().Hex()
	if err != nil {
		t.Fatalf("Hex() error: %v", err)
	}
	p, err := ParseHex(h)
	if err != nil {
		t.Fatalf("ParseHex() error: %v", err)
	}
	if p.X().Cmp(Generator().X()) != 0 {
		t.Error("ParseHex() round trip changed x coordinate")
	}

	if _, err := ParseHex("not hex"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("ParseHex() error = %v, want kind %v", err, ErrInvalidHex)
	}
	if _, err := ParseHex(strings.Repeat("ab", 32)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("ParseHex() error = %v, want kind %v", err, ErrInvalidLength)
	}
}

func TestFromX(t *testing.T) {
	// Both parities of the generator's x coordinate are valid points.
	even, err := FromX(false, hexInt(t, gXHex))
	if err != nil {
		t.Fatalf("FromX(even) error: %v", err)
	}
	if even.Y().Cmp(hexInt(t, gYHex)) != 0 {
		t.Errorf("FromX(even) y = %x, want %s", even.Y(), gYHex)
	}

	odd, err := FromX(true, hexInt(t, gXHex))
	if err != nil {
		t.Fatalf("FromX(odd) error: %v", err)
	}
	// The odd solution is p - y.
	wantOddY := new(big.Int).Sub(P(), hexInt(t, gYHex))
	if odd.Y().Cmp(wantOddY) != 0 {
		t.Errorf("FromX(odd) y = %x, want %x", odd.Y(), wantOddY)
	}
}

func TestFromX_Invalid(t *testing.T) {
	tests := []struct {
		name string
		x    *big.Int
	}{
		// x^3+7 is not a quadratic residue for x=0 and x=5, so no curve
		// point has those x coordinates.
		{"zero", big.NewInt(0)},
		{"five", big.NewInt(5)},
		{"missing", nil},
		{"out of field", P()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromX(false, tt.x)
			if !errors.Is(err, ErrInvalidX) {
				t.Errorf("FromX() error = %v, want kind %v", err, ErrInvalidX)
			}
		})
	}
}

func TestErrorKindMatching(t *testing.T) {
	err := pointError(ErrInvalidPoint, "test")
	if !errors.Is(err, ErrInvalidPoint) {
		t.Error("Error should match its kind with errors.Is")
	}
	if errors.Is(err, ErrInvalidLength) {
		t.Error("Error should not match a different kind")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrInvalidPoint {
		t.Errorf("errors.As kind = %v, want %v", kind, ErrInvalidPoint)
	}
}
