// Package tourney is a pure, synchronous bracket engine: seeding, balanced
// group partitioning, round-robin scheduling, and the duel (single/double
// elimination) and free-for-all tournament kinds built on top of them.
//
// Every operation is a total function from (input, Tournament) to
// (output, Tournament'). Tournament values are immutable snapshots — Score
// never mutates its receiver, it returns a new one. The package touches no
// files, sockets, or goroutines; callers needing persistence, transport, or
// concurrency build it around this package rather than inside it.
package tourney

// NewTournament materializes a Tournament of the requested kind and size.
// Rules must be a DuelRules or FFARules value; size is the entrant count.
func NewTournament(rules Rules, size int) (Tournament, error) {
	switch r := rules.(type) {
	case DuelRules:
		return buildDuel(r, size)
	case FFARules:
		return buildFFA(r, size)
	default:
		return Tournament{}, newErr(ErrBadMatchID, "unsupported rules type %T", rules)
	}
}

// Score records scores for the match at mid and returns the resulting
// Tournament, propagating winners/losers and regenerating results as
// needed. t is left untouched; errors leave the caller with no
// usable partial result.
func Score(mid MatchID, scores []int, t Tournament) (Tournament, error) {
	m, ok := t.matches[mid]
	if !ok {
		return Tournament{}, newErr(ErrUnknownMatch, "no match %v in this tournament", mid)
	}
	if !m.scorable() {
		return Tournament{}, newErr(ErrMatchNotReady, "match %v is not yet fully seeded", mid)
	}
	if len(scores) != len(m.Players) {
		return Tournament{}, newErr(ErrScoreArityMismatch, "match %v has %d players, got %d scores", mid, len(m.Players), len(scores))
	}
	if _, isDuel := t.Rules.(DuelRules); isDuel && len(scores) == 2 && scores[0] == scores[1] {
		return Tournament{}, newErr(ErrTieNotPermitted, "match %v: duel matches cannot tie", mid)
	}

	switch t.Rules.(type) {
	case DuelRules:
		return scoreDuel(mid, scores, t)
	case FFARules:
		return scoreFFA(mid, scores, t)
	default:
		return Tournament{}, newErr(ErrBadMatchID, "unsupported rules type %T", t.Rules)
	}
}
