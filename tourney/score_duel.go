package tourney

// rightTarget names a slot that a match winner advances into.
type rightTarget struct {
	mid MatchID
	pos int
}

// mRight computes the match (and slot) a winner advances into. A
// nil target with a nil error means the match is terminal: nobody advances.
// inhibitGF1 suppresses the "WB side already won GF1" termination rule;
// cascading recursive calls set it so a walkover that lands on GF1 still
// propagates into GF2.
func mRight(rules DuelRules, p int, mid MatchID, m Match, inhibitGF1 bool) (*rightTarget, error) {
	r, g := mid.Round, mid.Game
	if r < 1 || g < 1 {
		return nil, newErr(ErrBadMatchID, "invalid match id %v", mid)
	}

	if r >= 2*p {
		return nil, nil
	}
	if mid.Bracket == WB && r > p {
		return nil, nil
	}
	if mid.Bracket == WB && rules.Elimination == Single && r == p {
		return nil, nil
	}
	if mid.Bracket == LB && r == 2*p-1 && !inhibitGF1 {
		if m.Scores[0] >= m.Scores[1] {
			return nil, nil
		}
	}

	var target MatchID
	switch {
	case mid.Bracket == LB && r%2 == 1:
		// Odd LB rounds feed an even round with the same number of games.
		target = MatchID{Bracket: LB, Round: r + 1, Game: g}
	case mid.Bracket == LB:
		target = MatchID{Bracket: LB, Round: r + 1, Game: ceilDiv(g, 2)}
	case mid.Bracket == WB && r == p:
		target = MatchID{Bracket: LB, Round: 2*p - 1, Game: ceilDiv(g, 2)}
	default:
		target = MatchID{Bracket: WB, Round: r + 1, Game: ceilDiv(g, 2)}
	}

	return &rightTarget{mid: target, pos: rightPosition(p, mid)}, nil
}

func rightPosition(p int, mid MatchID) int {
	r, g := mid.Round, mid.Game
	if mid.Bracket == WB {
		if g%2 == 1 {
			return 0
		}
		return 1
	}
	switch {
	case r == 2*p-2:
		return 1
	case r == 2*p-1:
		return 0
	case r == 1:
		// Mirrors the LB round-2 layout buildDuel pre-fills: [0, w] for odd
		// games, [w, 0] for even ones.
		if g%2 == 1 {
			return 1
		}
		return 0
	case r%2 == 1:
		return 1
	case g%2 == 1:
		return 0
	default:
		return 1
	}
}

// mDown computes the match (and slot) a loser drops into, or reports there
// is none. Single elimination never drops losers anywhere.
func mDown(rules DuelRules, p int, mid MatchID) (*rightTarget, bool) {
	if rules.Elimination == Single {
		return nil, false
	}
	r, g := mid.Round, mid.Game
	if r == 2*p-1 {
		return &rightTarget{mid: MatchID{Bracket: LB, Round: 2 * p, Game: 1}, pos: 1}, true
	}
	if mid.Bracket == LB || r > p {
		return nil, false
	}

	var target MatchID
	if r == 1 {
		target = MatchID{Bracket: LB, Round: 1, Game: ceilDiv(g, 2)}
	} else {
		target = MatchID{Bracket: LB, Round: 2 * (r - 1), Game: g}
	}

	pos := 1
	if r > 2 || g%2 == 1 {
		pos = 0
	}
	return &rightTarget{mid: target, pos: pos}, true
}

// scoreDuel writes the score, advances the winner right, drops the
// loser down, cascades any walkovers those writes trigger, then regenerates
// results.
func scoreDuel(mid MatchID, scores []int, t Tournament) (Tournament, error) {
	rules := t.Rules.(DuelRules)
	p := ceilLog2(t.Size)

	nt := t.clone()
	m, _ := nt.matches[mid]
	m.Scores = append([]int(nil), scores...)
	nt.set(mid, m)

	rt, err := mRight(rules, p, mid, m, false)
	if err != nil {
		return Tournament{}, err
	}
	if rt != nil {
		advanceRight(&nt, rules, p, rt.mid, rt.pos, m.winner())
	}

	if dt, ok := mDown(rules, p, mid); ok {
		advanceDown(&nt, rules, p, dt.mid, dt.pos, m.loser())
	}

	nt.results = computeDuelResults(&nt, rules, p)
	return nt, nil
}

// advanceRight writes value into target's pos slot, re-applies walkover
// scoring, and — if that decides the match by walkover — cascades the new
// winner further right.
func advanceRight(nt *Tournament, rules DuelRules, p int, target MatchID, pos, value int) {
	cur, ok := nt.matches[target]
	if !ok {
		cur = Match{Players: []int{0, 0}}
	}
	players := append([]int(nil), cur.Players...)
	players[pos] = value
	nm := applyWalkoverScoring(Match{Players: players})
	nt.set(target, nm)

	if nm.Scores == nil {
		return
	}
	rt, err := mRight(rules, p, target, nm, true)
	if err == nil && rt != nil {
		advanceRight(nt, rules, p, rt.mid, rt.pos, nm.winner())
	}
}

// advanceDown writes value into target's pos slot and, if that decides the
// match by walkover, cascades the winner right (never down again).
func advanceDown(nt *Tournament, rules DuelRules, p int, target MatchID, pos, value int) {
	cur, ok := nt.matches[target]
	if !ok {
		cur = Match{Players: []int{0, 0}}
	}
	players := append([]int(nil), cur.Players...)
	players[pos] = value
	nm := applyWalkoverScoring(Match{Players: players})
	nt.set(target, nm)

	if nm.Scores == nil {
		return
	}
	rt, err := mRight(rules, p, target, nm, true)
	if err == nil && rt != nil {
		advanceRight(nt, rules, p, rt.mid, rt.pos, nm.winner())
	}
}
