package shared

import (
	"encoding/hex"
	"testing"
)

func TestMakeRandHexString(t *testing.T) {
	for _, n := range []int{0, 1, 12, 32} {
		s, err := MakeRandHexString(n)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", n, err)
		}
		if len(s) != n*2 {
			t.Fatalf("size %d: expected hex length %d, got %d", n, n*2, len(s))
		}
		if _, err := hex.DecodeString(s); err != nil {
			t.Fatalf("size %d: not valid hex: %v", n, err)
		}
	}
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		s, err := MakeRandHexString(12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[s] {
			t.Fatalf("duplicate value %q", s)
		}
		seen[s] = true
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("password123")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}

	WipeByteArray(nil)
}
