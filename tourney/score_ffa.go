package tourney

import "sort"

// scoreFFA writes the scores, and once every match in the round has
// scores, activates the next round by binding each group's top
// finishers onto that round's already-materialized placeholder slots,
// overwriting the placeholder identities directly rather than keeping a
// side mapping.
func scoreFFA(mid MatchID, scores []int, t Tournament) (Tournament, error) {
	rules := t.Rules.(FFARules)
	nt := t.clone()

	m, _ := nt.matches[mid]
	m.Scores = append([]int(nil), scores...)
	nt.set(mid, m)

	roundIDs := matchIDsInRound(&nt, mid.Round)
	allScored := true
	for _, id := range roundIDs {
		if nt.matches[id].Scores == nil {
			allScored = false
			break
		}
	}

	if allScored {
		activateFFANextRound(&nt, rules, mid.Round, roundIDs)
	}

	nt.results = computeFFAResults(&nt)
	return nt, nil
}

func matchIDsInRound(t *Tournament, round int) []MatchID {
	var ids []MatchID
	for _, id := range t.order {
		if id.Bracket == WB && id.Round == round {
			ids = append(ids, id)
		}
	}
	return ids
}

func activateFFANextRound(nt *Tournament, rules FFARules, round int, roundIDs []MatchID) {
	nextIDs := matchIDsInRound(nt, round+1)
	if len(nextIDs) == 0 {
		return // round was the final; nothing to activate
	}

	gs, adv := rules.GroupSize, rules.Advance
	minSize := len(nt.matches[roundIDs[0]].Players)
	for _, id := range roundIDs[1:] {
		if n := len(nt.matches[id].Players); n < minSize {
			minSize = n
		}
	}
	advPrime := adv - (gs - minSize)
	if advPrime < 1 {
		advPrime = 1
	}

	var advancers []int
	for _, id := range roundIDs {
		advancers = append(advancers, topFinishers(nt.matches[id], advPrime)...)
	}

	for _, id := range nextIDs {
		next := nt.matches[id]
		bound := make([]int, len(next.Players))
		for i, placeholder := range next.Players {
			if placeholder >= 1 && placeholder <= len(advancers) {
				bound[i] = advancers[placeholder-1]
			} else {
				bound[i] = placeholder
			}
		}
		nt.set(id, Match{Players: bound})
	}
}

// topFinishers returns up to n player ids from m, ranked by descending
// score.
func topFinishers(m Match, n int) []int {
	type ranked struct{ player, score int }
	rs := make([]ranked, len(m.Players))
	for i, pl := range m.Players {
		rs[i] = ranked{pl, m.Scores[i]}
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].score > rs[j].score })
	if n > len(rs) {
		n = len(rs)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = rs[i].player
	}
	return out
}

// computeFFAResults produces a degenerate standings list once the final
// group has been scored: the final group is ranked by score, every
// earlier-eliminated player ties for the next placement down.
func computeFFAResults(t *Tournament) []PlayerResult {
	finalRound := 0
	for _, id := range t.order {
		if id.Bracket == WB && id.Round > finalRound {
			finalRound = id.Round
		}
	}
	final, ok := t.matches[MatchID{Bracket: WB, Round: finalRound, Game: 1}]
	if !ok || final.Scores == nil {
		return nil
	}

	tallies := make(map[int]*playerTally, t.Size)
	for pl := 1; pl <= t.Size; pl++ {
		tallies[pl] = &playerTally{}
	}
	for _, m := range t.matches {
		if m.Scores == nil {
			continue
		}
		w := m.winner()
		for idx, pl := range m.Players {
			tallies[pl].scoreSum += m.Scores[idx]
		}
		tallies[w].wins++
	}

	ranked := topFinishers(final, len(final.Players))
	placement := make(map[int]int, len(ranked))
	for i, pl := range ranked {
		placement[pl] = i + 1
	}
	degenerate := len(ranked) + 1

	results := make([]PlayerResult, 0, t.Size)
	for pl := 1; pl <= t.Size; pl++ {
		pos, ok := placement[pl]
		if !ok {
			pos = degenerate
		}
		results = append(results, PlayerResult{Player: pl, Placement: pos, Wins: tallies[pl].wins, ScoreSum: tallies[pl].scoreSum})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Placement != results[j].Placement {
			return results[i].Placement < results[j].Placement
		}
		return results[i].Player < results[j].Player
	})
	return results
}
