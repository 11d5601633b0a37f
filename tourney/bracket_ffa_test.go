package tourney

import "testing"

func TestNewTournament_FFAValidation(t *testing.T) {
	tests := []struct {
		name string
		gs   int
		adv  int
		np   int
		kind ErrorKind
	}{
		{"too few players", 4, 2, 2, ErrTooFewPlayers},
		{"group too small", 2, 1, 10, ErrGroupTooSmall},
		{"too few groups", 8, 2, 6, ErrTooFewGroups},
		{"advance too large", 4, 4, 10, ErrAdvanceTooLarge},
		{"advance too small", 4, 0, 10, ErrAdvanceTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTournament(FFARules{GroupSize: tt.gs, Advance: tt.adv}, tt.np)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestNewTournament_FFAShape(t *testing.T) {
	tour, err := NewTournament(FFARules{GroupSize: 4, Advance: 2}, 16)
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}

	roundCounts := map[int]int{}
	for _, mid := range tour.Keys() {
		roundCounts[mid.Round]++
	}
	want := map[int]int{1: 4, 2: 2, 3: 1}
	for round, n := range want {
		if roundCounts[round] != n {
			t.Errorf("round %d: got %d matches, want %d", round, roundCounts[round], n)
		}
	}
	if len(roundCounts) != len(want) {
		t.Errorf("got %d rounds, want %d", len(roundCounts), len(want))
	}

	final, ok := tour.Match(MatchID{Bracket: WB, Round: 3, Game: 1})
	if !ok || len(final.Players) != 4 {
		t.Fatalf("final round: players = %v, want 4 placeholders", final.Players)
	}
}
