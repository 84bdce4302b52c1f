package writerepo

import (
	"context"
	"time"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversationRepository struct {
	queries *sqlgen.Queries
}

func NewConversationRepository(queries *sqlgen.Queries) shared.ConversationRepository {
	return &ConversationRepository{queries: queries}
}

func (r *ConversationRepository) AppendSystemMessage(ctx context.Context, db sqlgen.DBTX, conversationID uuid.UUID, event string, payload []byte, now time.Time) error {
	if err := r.queries.AppendSystemMessage(ctx, db, conversationID, event, payload, pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to append system message", err)
	}
	return nil
}
