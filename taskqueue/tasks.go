// Package taskqueue enqueues and processes background finalization work:
// once a tournament's results become available, a worker re-derives them
// from the persisted snapshot and writes a denormalized summary row.
package taskqueue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

type TaskType string

const (
	TaskTypeFinalizeTournament TaskType = "finalize_tournament"
)

type TaskPayloadFinalizeTournament struct {
	TournamentID int64
}

func newTaskFinalizeTournament(tournamentID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(TaskPayloadFinalizeTournament{TournamentID: tournamentID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(
		string(TaskTypeFinalizeTournament),
		payload,
		asynq.MaxRetry(3),
	), nil
}
