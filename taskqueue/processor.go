package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/bracketforge/bracketforge/storedb"
)

type processor struct {
	store *storedb.Store
}

func newProcessor(store *storedb.Store) processor {
	return processor{store: store}
}

func (p *processor) doProcessFinalizeTournament(
	ctx context.Context,
	payload *TaskPayloadFinalizeTournament,
) error {
	tour, err := p.store.Get(ctx, payload.TournamentID)
	if err != nil {
		return fmt.Errorf("load tournament %d: %w", payload.TournamentID, err)
	}

	results, ok := tour.Results()
	if !ok {
		return fmt.Errorf("tournament %d has no results yet", payload.TournamentID)
	}

	if err := p.store.SaveResults(ctx, payload.TournamentID, results); err != nil {
		return fmt.Errorf("save results for tournament %d: %w", payload.TournamentID, err)
	}
	return nil
}

// ProcessTask implements asynq.Handler, dispatching by task type the way
// a generated task-registry switch would.
func (p *processor) ProcessTask(ctx context.Context, task *asynq.Task) error {
	switch task.Type() {
	case string(TaskTypeFinalizeTournament):
		var payload TaskPayloadFinalizeTournament
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal finalize payload: %w", err)
		}
		return p.doProcessFinalizeTournament(ctx, &payload)
	default:
		return fmt.Errorf("unknown task type %q", task.Type())
	}
}

// NewHandler builds the asynq.Handler the worker's ServeMux dispatches
// every task to.
func NewHandler(store *storedb.Store) asynq.Handler {
	p := newProcessor(store)
	return &p
}
