package automaton

import "testing"

func TestCuratedPool(t *testing.T) {
	pool := Curated()
	if len(pool) != 85 {
		t.Fatalf("curated pool: got %d rules, want 85", len(pool))
	}
	seen := map[int]bool{}
	for _, index := range pool {
		if index < 0 || index > 255 {
			t.Fatalf("curated pool holds out-of-range rule %d", index)
		}
		if seen[index] {
			t.Fatalf("curated pool holds rule %d twice", index)
		}
		seen[index] = true
	}
}

func TestCuratedReturnsCopy(t *testing.T) {
	a := Curated()
	a[0] = 999
	if b := Curated(); b[0] == 999 {
		t.Fatal("Curated exposes shared backing storage")
	}
}

func TestAllPool(t *testing.T) {
	pool := All()
	if len(pool) != 256 {
		t.Fatalf("all pool: got %d rules, want 256", len(pool))
	}
	for i, index := range pool {
		if index != i {
			t.Fatalf("all pool entry %d: got %d", i, index)
		}
	}
}
