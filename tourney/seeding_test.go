package tourney

import "testing"

func TestSeeds_LastGameOfRound1(t *testing.T) {
	a, b := Seeds(3, 4)
	if a != 7 || b != 2 {
		t.Fatalf("Seeds(3, 4) = (%d, %d), want (7, 2)", a, b)
	}
}

func TestSeeds_DuelExpectedProperty(t *testing.T) {
	for p := 1; p <= 8; p++ {
		for i := 1; i <= 1<<(p-1); i++ {
			a, b := Seeds(p, i)
			if !DuelExpected(p, [2]int{a, b}) {
				t.Errorf("Seeds(%d, %d) = (%d, %d) fails DuelExpected", p, i, a, b)
			}
		}
	}
}

func TestSeeds_Bijection(t *testing.T) {
	for p := 1; p <= 8; p++ {
		seen := make(map[int]bool)
		for i := 1; i <= 1<<(p-1); i++ {
			a, b := Seeds(p, i)
			for _, s := range []int{a, b} {
				if s < 1 || s > 1<<p {
					t.Fatalf("p=%d i=%d: seed %d out of range", p, i, s)
				}
				if seen[s] {
					t.Fatalf("p=%d i=%d: seed %d already used", p, i, s)
				}
				seen[s] = true
			}
		}
		if len(seen) != 1<<p {
			t.Errorf("p=%d: expected %d distinct seeds, saw %d", p, 1<<p, len(seen))
		}
	}
}
