package outcome

import "testing"

func TestUnit_AllInstancesEqual(t *testing.T) {
	t.Parallel()
	if UnitValue() != UnitValue() {
		t.Fatalf("unit instances must compare equal")
	}
	if (Unit{}) != UnitValue() {
		t.Fatalf("the zero value is the canonical instance")
	}
}

func TestUnit_SingleMapKey(t *testing.T) {
	t.Parallel()

	// every Unit hashes to the same bucket entry
	seen := map[Unit]int{}
	seen[UnitValue()]++
	seen[Unit{}]++

	if len(seen) != 1 || seen[UnitValue()] != 2 {
		t.Fatalf("expected a single map entry, got: %v", seen)
	}
}
