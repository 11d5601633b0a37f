package tourney

import "sort"

// duelTerminal reports whether a duel tournament has reached the terminal
// state required before results can be produced.
func duelTerminal(t *Tournament, rules DuelRules, p int) bool {
	if rules.Elimination == Single {
		final, ok := t.matches[MatchID{Bracket: WB, Round: p, Game: 1}]
		return ok && final.Scores != nil
	}
	gf1, ok := t.matches[MatchID{Bracket: LB, Round: 2*p - 1, Game: 1}]
	if !ok || gf1.Scores == nil {
		return false
	}
	if gf1.Scores[0] > gf1.Scores[1] {
		return true
	}
	gf2, ok := t.matches[MatchID{Bracket: LB, Round: 2 * p, Game: 1}]
	return ok && gf2.Scores != nil
}

// duelChampion returns the winner of the deciding match once a duel
// tournament has terminated.
func duelChampion(t *Tournament, rules DuelRules, p int) int {
	if rules.Elimination == Single {
		final := t.matches[MatchID{Bracket: WB, Round: p, Game: 1}]
		return final.winner()
	}
	gf2, ok := t.matches[MatchID{Bracket: LB, Round: 2 * p, Game: 1}]
	if ok && gf2.Scores != nil {
		return gf2.winner()
	}
	gf1 := t.matches[MatchID{Bracket: LB, Round: 2*p - 1, Game: 1}]
	return gf1.winner()
}

// placementSingle derives a single-elimination placement from a player's
// last round of appearance in WB.
func placementSingle(p, maxR int) int {
	metric := p + 1 - maxR
	if metric <= 1 {
		return metric
	}
	return (1 << (metric - 1)) + 1
}

// placementDouble derives a double-elimination placement from a player's
// last round of appearance in LB.
func placementDouble(p, maxR int) int {
	metric := 2*p + 1 - maxR
	if metric <= 4 {
		return metric
	}
	rp := metric - 4
	k := ceilDiv(rp+1, 2)
	oddExtra := 0
	if rp%2 == 0 {
		oddExtra = 1 << k
	}
	return (1 << (k + 1)) + 1 + oddExtra
}

type playerTally struct {
	wins     int
	scoreSum int
	maxR     int
}

// computeDuelResults derives final standings for a duel tournament once it
// has terminated, or returns nil if it has not. Wins and score sums
// only count matches where every player slot is a genuine seed (no
// placeholders, no walkover markers); placement is derived from each
// player's last round of appearance in the terminal bracket, with the
// champion/runner-up ambiguity of the raw formula fixed up afterward.
func computeDuelResults(t *Tournament, rules DuelRules, p int) []PlayerResult {
	if !duelTerminal(t, rules, p) {
		return nil
	}

	terminalBracket := WB
	if rules.Elimination == Double {
		terminalBracket = LB
	}

	tallies := make(map[int]*playerTally, t.Size)
	for pl := 1; pl <= t.Size; pl++ {
		tallies[pl] = &playerTally{}
	}

	for mid, m := range t.matches {
		for _, pl := range m.Players {
			if pl > 0 {
				if tl := tallies[pl]; tl != nil && mid.Bracket == terminalBracket && mid.Round > tl.maxR {
					tl.maxR = mid.Round
				}
			}
		}
		if !m.scorable() || m.Scores == nil {
			continue
		}
		w := m.winner()
		for idx, pl := range m.Players {
			tallies[pl].scoreSum += m.Scores[idx]
		}
		tallies[w].wins++
	}

	results := make([]PlayerResult, 0, t.Size)
	for pl := 1; pl <= t.Size; pl++ {
		tl := tallies[pl]
		var placement int
		if rules.Elimination == Single {
			placement = placementSingle(p, tl.maxR)
		} else {
			placement = placementDouble(p, tl.maxR)
		}
		results = append(results, PlayerResult{Player: pl, Placement: placement, Wins: tl.wins, ScoreSum: tl.scoreSum})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Placement != results[j].Placement {
			return results[i].Placement < results[j].Placement
		}
		return results[i].Player < results[j].Player
	})

	// The raw formula cannot tell the two finalists apart. NewTournament's
	// np >= 4 check for Duel means the deciding match always holds two
	// genuine seeds by now, so the first two entries are those finalists.
	champion := duelChampion(t, rules, p)
	if len(results) >= 2 {
		if results[0].Player != champion {
			results[0], results[1] = results[1], results[0]
		}
		results[0].Placement = 1
		results[1].Placement = 2
	}

	return results
}
