package tourney

import (
	"encoding/json"
	"fmt"
)

// jsonMatch is the wire shape of a single match in a Tournament snapshot.
type jsonMatch struct {
	Bracket string `json:"bracket"`
	Round   int    `json:"round"`
	Game    int    `json:"game"`
	Players []int  `json:"players"`
	Scores  []int  `json:"scores,omitempty"`
}

// jsonRules is the wire shape of a Rules value, tagged by kind since Rules
// has two unrelated concrete shapes.
type jsonRules struct {
	Kind        string `json:"kind"`
	Elimination string `json:"elimination,omitempty"`
	GroupSize   int    `json:"group_size,omitempty"`
	Advance     int    `json:"advance,omitempty"`
}

type jsonTournament struct {
	Size    int            `json:"size"`
	Rules   jsonRules      `json:"rules"`
	Matches []jsonMatch    `json:"matches"`
	Results []PlayerResult `json:"results,omitempty"`
}

// MarshalJSON lets a Tournament snapshot be persisted or transmitted by a
// caller outside this package without exposing its internal map/slice
// representation.
func (t Tournament) MarshalJSON() ([]byte, error) {
	jt := jsonTournament{Size: t.Size, Results: t.results}

	switch r := t.Rules.(type) {
	case DuelRules:
		jt.Rules = jsonRules{Kind: "duel", Elimination: r.Elimination.String()}
	case FFARules:
		jt.Rules = jsonRules{Kind: "ffa", GroupSize: r.GroupSize, Advance: r.Advance}
	default:
		return nil, fmt.Errorf("tourney: cannot marshal unknown rules type %T", t.Rules)
	}

	jt.Matches = make([]jsonMatch, len(t.order))
	for i, mid := range t.order {
		m := t.matches[mid]
		jt.Matches[i] = jsonMatch{
			Bracket: mid.Bracket.String(),
			Round:   mid.Round,
			Game:    mid.Game,
			Players: m.Players,
			Scores:  m.Scores,
		}
	}

	return json.Marshal(jt)
}

// UnmarshalJSON restores a Tournament snapshot previously produced by
// MarshalJSON.
func (t *Tournament) UnmarshalJSON(data []byte) error {
	var jt jsonTournament
	if err := json.Unmarshal(data, &jt); err != nil {
		return err
	}

	switch jt.Rules.Kind {
	case "duel":
		e := Single
		if jt.Rules.Elimination == "Double" {
			e = Double
		}
		t.Rules = DuelRules{Elimination: e}
	case "ffa":
		t.Rules = FFARules{GroupSize: jt.Rules.GroupSize, Advance: jt.Rules.Advance}
	default:
		return fmt.Errorf("tourney: unknown rules kind %q", jt.Rules.Kind)
	}

	t.Size = jt.Size
	t.matches = make(map[MatchID]Match, len(jt.Matches))
	t.order = make([]MatchID, 0, len(jt.Matches))
	for _, jm := range jt.Matches {
		b := WB
		if jm.Bracket == "LB" {
			b = LB
		}
		mid := MatchID{Bracket: b, Round: jm.Round, Game: jm.Game}
		t.matches[mid] = Match{Players: jm.Players, Scores: jm.Scores}
		t.order = append(t.order, mid)
	}
	sortMatchIDs(t.order)
	t.results = jt.Results

	return nil
}
