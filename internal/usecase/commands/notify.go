package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

// emitNotification writes one outbox row inside the current transaction and
// returns its id so the caller can hand it to the dispatcher after commit.
func emitNotification(ctx context.Context, tx shared.Tx, recipientID uuid.UUID, event string, payload map[string]any, now time.Time) (uuid.UUID, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}

	job := shared.OutboxJob{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Event:       event,
		Payload:     body,
		RunAt:       now,
	}
	if err := tx.Outbox().Enqueue(ctx, tx.DB(), job); err != nil {
		return uuid.Nil, err
	}
	return job.ID, nil
}

// appendSystemChat adds a system message to the reservation's conversation if
// one exists. Reservations created before the chat flow rolled out have none.
func appendSystemChat(ctx context.Context, tx shared.Tx, conversationID *uuid.UUID, event string, payload map[string]any, now time.Time) error {
	if conversationID == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Conversations().AppendSystemMessage(ctx, tx.DB(), *conversationID, event, body, now)
}

// dispatchJobs enqueues the post-commit delivery tasks. Failures are logged
// and left for the outbox sweep; the state change has already committed.
func dispatchJobs(ctx context.Context, scheduler TaskScheduler, jobIDs []uuid.UUID) {
	for _, id := range jobIDs {
		if err := scheduler.EnqueueNotifyDispatch(ctx, id); err != nil {
			slog.Warn("failed to enqueue notification dispatch", "job_id", id, "error", err.Error())
		}
	}
}
