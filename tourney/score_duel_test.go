package tourney

import "testing"

func TestScore_DuelSingle4_FullTrace(t *testing.T) {
	tour, err := NewTournament(DuelRules{Elimination: Single}, 4)
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}

	tour, err = Score(MatchID{Bracket: WB, Round: 1, Game: 1}, []int{1, 0}, tour)
	if err != nil {
		t.Fatalf("Score (WB,1,1): %v", err)
	}
	tour, err = Score(MatchID{Bracket: WB, Round: 1, Game: 2}, []int{1, 0}, tour)
	if err != nil {
		t.Fatalf("Score (WB,1,2): %v", err)
	}

	final, ok := tour.Match(MatchID{Bracket: WB, Round: 2, Game: 1})
	if !ok || final.Players[0] != 1 || final.Players[1] != 3 {
		t.Fatalf("(WB,2,1) players = %v, want (1, 3)", final.Players)
	}

	tour, err = Score(MatchID{Bracket: WB, Round: 2, Game: 1}, []int{1, 0}, tour)
	if err != nil {
		t.Fatalf("Score (WB,2,1): %v", err)
	}

	results, ok := tour.Results()
	if !ok {
		t.Fatalf("expected results to be present")
	}
	byPlayer := make(map[int]PlayerResult, len(results))
	for _, r := range results {
		byPlayer[r.Player] = r
	}
	if byPlayer[1].Placement != 1 {
		t.Errorf("player 1: placement = %d, want 1", byPlayer[1].Placement)
	}
	if byPlayer[3].Placement != 2 {
		t.Errorf("player 3: placement = %d, want 2", byPlayer[3].Placement)
	}
	if byPlayer[2].Placement != byPlayer[4].Placement {
		t.Errorf("players 2 and 4 should tie: %d vs %d", byPlayer[2].Placement, byPlayer[4].Placement)
	}
}

func TestScore_Errors(t *testing.T) {
	tour, err := NewTournament(DuelRules{Elimination: Single}, 4)
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}

	_, err = Score(MatchID{Bracket: WB, Round: 9, Game: 9}, []int{1, 0}, tour)
	assertKind(t, err, ErrUnknownMatch)

	_, err = Score(MatchID{Bracket: WB, Round: 2, Game: 1}, []int{1, 0}, tour)
	assertKind(t, err, ErrMatchNotReady)

	_, err = Score(MatchID{Bracket: WB, Round: 1, Game: 1}, []int{1, 0, 0}, tour)
	assertKind(t, err, ErrScoreArityMismatch)

	_, err = Score(MatchID{Bracket: WB, Round: 1, Game: 1}, []int{1, 1}, tour)
	assertKind(t, err, ErrTieNotPermitted)
}

func TestScore_ImmutableReceiver(t *testing.T) {
	tour, _ := NewTournament(DuelRules{Elimination: Single}, 4)
	before, _ := tour.Match(MatchID{Bracket: WB, Round: 1, Game: 1})

	if _, err := Score(MatchID{Bracket: WB, Round: 1, Game: 1}, []int{1, 0}, tour); err != nil {
		t.Fatalf("Score: %v", err)
	}

	after, _ := tour.Match(MatchID{Bracket: WB, Round: 1, Game: 1})
	if after.Scores != nil {
		t.Fatalf("original tournament was mutated by Score: %v (was %v)", after, before)
	}
}

func TestScore_ScorabilityProperty(t *testing.T) {
	for _, elim := range []Elimination{Single, Double} {
		for p := 2; p <= 8; p++ {
			np := 1 << p
			tour, err := NewTournament(DuelRules{Elimination: elim}, np)
			if err != nil {
				t.Fatalf("p=%d elim=%v: NewTournament: %v", p, elim, err)
			}
			tour = playAllLeftWins(t, tour)
			results, ok := tour.Results()
			if !ok {
				t.Fatalf("p=%d elim=%v: expected results", p, elim)
			}
			if len(results) != np {
				t.Errorf("p=%d elim=%v: got %d results, want %d", p, elim, len(results), np)
			}
		}
	}
}

func TestScore_ScorabilityWithWalkoversProperty(t *testing.T) {
	for _, elim := range []Elimination{Single, Double} {
		// p starts at 3: p=2 would give np=3, below the duel minimum of 4.
		for p := 3; p <= 8; p++ {
			np := 1<<(p-1) + 1
			tour, err := NewTournament(DuelRules{Elimination: elim}, np)
			if err != nil {
				t.Fatalf("p=%d elim=%v: NewTournament: %v", p, elim, err)
			}
			tour = playAllLeftWins(t, tour)
			results, ok := tour.Results()
			if !ok {
				t.Fatalf("p=%d elim=%v np=%d: expected results", p, elim, np)
			}
			if len(results) != np {
				t.Errorf("p=%d elim=%v np=%d: got %d results, want %d", p, elim, np, len(results), np)
			}
		}
	}
}

// playAllLeftWins drives a duel tournament to completion by scoring every
// currently-scorable, not-yet-played match 1-0 in natural key order, in
// repeated passes until nothing changes.
func playAllLeftWins(t *testing.T, tour Tournament) Tournament {
	t.Helper()
	for progressed := true; progressed; {
		progressed = false
		for _, mid := range tour.Keys() {
			m, ok := tour.Match(mid)
			if !ok || !m.scorable() || m.Scores != nil {
				continue
			}
			next, err := Score(mid, []int{1, 0}, tour)
			if err != nil {
				t.Fatalf("Score(%v): %v", mid, err)
			}
			tour = next
			progressed = true
		}
	}
	return tour
}
