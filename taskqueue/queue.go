package taskqueue

import (
	"github.com/hibiken/asynq"
)

type Queue struct {
	client *asynq.Client
}

func NewQueue(redisAddr string) *Queue {
	return &Queue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr: redisAddr,
		}),
	}
}

func (q *Queue) Close() {
	q.client.Close()
}

func (q *Queue) EnqueueFinalizeTournament(tournamentID int64) error {
	task, err := newTaskFinalizeTournament(tournamentID)
	if err != nil {
		return err
	}
	_, err = q.client.Enqueue(task)
	return err
}
