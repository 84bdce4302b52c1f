package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const appendSystemMessage = `
INSERT INTO conversation_messages (id, conversation_id, sender_id, type, event, payload, created_at)
VALUES ($1, $2, NULL, 'system', $3, $4, $5)
`

// AppendSystemMessage writes a system-authored message; sender is NULL for
// system messages and the payload is keyed by event name.
func (q *Queries) AppendSystemMessage(ctx context.Context, db DBTX, conversationID uuid.UUID, event string, payload []byte, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, appendSystemMessage, uuid.New(), conversationID, event, payload, now)
	return err
}
