package errors

import "testing"

func TestKindIsComparableSentinel(t *testing.T) {
	var err error = BadMagic
	if err != BadMagic {
		t.Fatalf("Kind value does not compare equal to itself through the error interface")
	}
	if err == Truncated {
		t.Fatalf("distinct Kind values must not compare equal")
	}
}

func TestKindErrorStringIsVerbatim(t *testing.T) {
	if BadVersion.Error() != string(BadVersion) {
		t.Fatalf("Error() must return the Kind's underlying string unchanged")
	}
}

func TestKindZeroAllocation(t *testing.T) {
	n := testing.AllocsPerRun(100, func() {
		var err error = Misaligned
		_ = err.Error()
	})
	if n != 0 {
		t.Fatalf("constructing and formatting a Kind allocated %v times, want 0", n)
	}
}
