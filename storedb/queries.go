// Package storedb persists tournament snapshots to Postgres behind a
// sqlc-shaped Querier/Queries pair, the generated-code silhouette sqlc
// would produce for these tables.
package storedb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Record is one row of the tournaments table: a denormalized rules/size
// pair for querying, plus the full tourney.Tournament snapshot as State.
type Record struct {
	ID        int64
	Rules     json.RawMessage
	Size      int32
	State     json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTournamentParams struct {
	Rules json.RawMessage
	Size  int32
	State json.RawMessage
}

type UpdateTournamentStateParams struct {
	ID    int64
	State json.RawMessage
}

// UpsertTournamentResultParams is one row of the denormalized
// tournament_results summary a finalize task writes once a tournament
// reaches a terminal state.
type UpsertTournamentResultParams struct {
	TournamentID int64
	PlayerID     int32
	Placement    int32
	Wins         int32
	ScoreSum     int32
}

// Querier is the interface Queries implements, so callers (and tests) can
// swap in a fake instead of a live Postgres connection.
type Querier interface {
	CreateTournament(ctx context.Context, arg CreateTournamentParams) (Record, error)
	GetTournamentByID(ctx context.Context, id int64) (Record, error)
	UpdateTournamentState(ctx context.Context, arg UpdateTournamentStateParams) (Record, error)
	ListTournaments(ctx context.Context) ([]Record, error)
	UpsertTournamentResult(ctx context.Context, arg UpsertTournamentResultParams) error
}

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, letting Queries run
// either directly against the pool or inside PgxTxManager's transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createTournamentSQL = `
INSERT INTO tournaments (rules, size, state)
VALUES ($1, $2, $3)
RETURNING id, rules, size, state, created_at, updated_at
`

func (q *Queries) CreateTournament(ctx context.Context, arg CreateTournamentParams) (Record, error) {
	var r Record
	err := q.db.QueryRow(ctx, createTournamentSQL, arg.Rules, arg.Size, arg.State).
		Scan(&r.ID, &r.Rules, &r.Size, &r.State, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const getTournamentByIDSQL = `
SELECT id, rules, size, state, created_at, updated_at
FROM tournaments
WHERE id = $1
`

func (q *Queries) GetTournamentByID(ctx context.Context, id int64) (Record, error) {
	var r Record
	err := q.db.QueryRow(ctx, getTournamentByIDSQL, id).
		Scan(&r.ID, &r.Rules, &r.Size, &r.State, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const updateTournamentStateSQL = `
UPDATE tournaments
SET state = $2, updated_at = now()
WHERE id = $1
RETURNING id, rules, size, state, created_at, updated_at
`

func (q *Queries) UpdateTournamentState(ctx context.Context, arg UpdateTournamentStateParams) (Record, error) {
	var r Record
	err := q.db.QueryRow(ctx, updateTournamentStateSQL, arg.ID, arg.State).
		Scan(&r.ID, &r.Rules, &r.Size, &r.State, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const listTournamentsSQL = `
SELECT id, rules, size, state, created_at, updated_at
FROM tournaments
ORDER BY id
`

func (q *Queries) ListTournaments(ctx context.Context) ([]Record, error) {
	rows, err := q.db.Query(ctx, listTournamentsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Rules, &r.Size, &r.State, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const upsertTournamentResultSQL = `
INSERT INTO tournament_results (tournament_id, player_id, placement, wins, score_sum)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tournament_id, player_id)
DO UPDATE SET placement = $3, wins = $4, score_sum = $5
`

func (q *Queries) UpsertTournamentResult(ctx context.Context, arg UpsertTournamentResultParams) error {
	_, err := q.db.Exec(ctx, upsertTournamentResultSQL,
		arg.TournamentID, arg.PlayerID, arg.Placement, arg.Wins, arg.ScoreSum)
	return err
}
