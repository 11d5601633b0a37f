package storedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bracketforge/bracketforge/tourney"
)

// ErrNotFound is returned by Get when no tournament is stored under the
// requested id.
var ErrNotFound = errors.New("storedb: tournament not found")

// Store is the domain-facing persistence surface httpapi depends on: it
// speaks tourney.Tournament in and out, and hides the row/query shape
// behind Querier and TxManager.
type Store struct {
	q   Querier
	txm TxManager
}

func NewStore(q Querier, txm TxManager) *Store {
	return &Store{q: q, txm: txm}
}

func rulesSummary(rules tourney.Rules) (json.RawMessage, error) {
	switch r := rules.(type) {
	case tourney.DuelRules:
		return json.Marshal(struct {
			Kind        string `json:"kind"`
			Elimination string `json:"elimination"`
		}{"duel", r.Elimination.String()})
	case tourney.FFARules:
		return json.Marshal(struct {
			Kind      string `json:"kind"`
			GroupSize int    `json:"group_size"`
			Advance   int    `json:"advance"`
		}{"ffa", r.GroupSize, r.Advance})
	default:
		return nil, fmt.Errorf("storedb: unknown rules type %T", rules)
	}
}

// Create builds a new Tournament from rules and size, persists it, and
// returns both the generated row id and the freshly built snapshot.
func (s *Store) Create(ctx context.Context, rules tourney.Rules, size int) (int64, tourney.Tournament, error) {
	tour, err := tourney.NewTournament(rules, size)
	if err != nil {
		return 0, tourney.Tournament{}, err
	}

	state, err := tour.MarshalJSON()
	if err != nil {
		return 0, tourney.Tournament{}, err
	}
	rulesJSON, err := rulesSummary(rules)
	if err != nil {
		return 0, tourney.Tournament{}, err
	}

	var id int64
	err = s.txm.RunInTx(ctx, func(q Querier) error {
		rec, err := q.CreateTournament(ctx, CreateTournamentParams{
			Rules: rulesJSON,
			Size:  int32(size),
			State: state,
		})
		if err != nil {
			return err
		}
		id = rec.ID
		return nil
	})
	if err != nil {
		return 0, tourney.Tournament{}, err
	}
	return id, tour, nil
}

// Get loads the Tournament snapshot stored under id.
func (s *Store) Get(ctx context.Context, id int64) (tourney.Tournament, error) {
	rec, err := s.q.GetTournamentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tourney.Tournament{}, ErrNotFound
		}
		return tourney.Tournament{}, err
	}
	var tour tourney.Tournament
	if err := tour.UnmarshalJSON(rec.State); err != nil {
		return tourney.Tournament{}, err
	}
	return tour, nil
}

// Save overwrites the stored snapshot for id with tour, inside its own
// transaction so a failed write never leaves a half-updated row.
func (s *Store) Save(ctx context.Context, id int64, tour tourney.Tournament) error {
	state, err := tour.MarshalJSON()
	if err != nil {
		return err
	}
	return s.txm.RunInTx(ctx, func(q Querier) error {
		_, err := q.UpdateTournamentState(ctx, UpdateTournamentStateParams{ID: id, State: state})
		return err
	})
}

// SaveResults upserts one tournament_results row per entry in results,
// all inside a single transaction.
func (s *Store) SaveResults(ctx context.Context, tournamentID int64, results []tourney.PlayerResult) error {
	return s.txm.RunInTx(ctx, func(q Querier) error {
		for _, r := range results {
			if err := q.UpsertTournamentResult(ctx, UpsertTournamentResultParams{
				TournamentID: tournamentID,
				PlayerID:     int32(r.Player),
				Placement:    int32(r.Placement),
				Wins:         int32(r.Wins),
				ScoreSum:     int32(r.ScoreSum),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the ids of every stored tournament, in creation order.
func (s *Store) List(ctx context.Context) ([]int64, error) {
	recs, err := s.q.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids, nil
}
