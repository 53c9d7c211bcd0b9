package wasmfixture

import "testing"

func TestModuleStartsWithMagicAndVersion(t *testing.T) {
	bin := Module(Export{Name: "main"})
	want := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if len(bin) < len(want) {
		t.Fatalf("module too short: %d bytes", len(bin))
	}
	for i, b := range want {
		if bin[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, bin[i], b)
		}
	}
}

func TestModuleIsSmall(t *testing.T) {
	bin := Module(Export{Name: "main"}, Export{Name: "other"})
	if len(bin) > 128 {
		t.Fatalf("two-export module is %d bytes, expected a few dozen", len(bin))
	}
}
