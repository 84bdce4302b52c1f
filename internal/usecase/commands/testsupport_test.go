//go:build unit

package commands_test

import (
	"context"
	"time"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/domain/review"
	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs every Within block against the same in-memory state, no real
// transaction semantics. Good enough for exercising the orchestration logic;
// locking and rollback behavior is covered by the repository layer.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reservations:  &fakeReservationRepo{byID: map[uuid.UUID]*reservation.Reservation{}},
		applications:  &fakeApplicationRepo{byID: map[uuid.UUID]*shared.ApplicationSnapshot{}},
		disputes:      &fakeDisputeRepo{byID: map[uuid.UUID]*dispute.Dispute{}},
		reviews:       &fakeReviewRepo{},
		ledger:        &fakeLedgerRepo{},
		outbox:        &fakeOutboxRepo{byID: map[uuid.UUID]*shared.OutboxJob{}},
		conversations: &fakeConversationRepo{},
		users:         &fakeUserRepo{byID: map[uuid.UUID]*shared.UserSnapshot{}},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlgen.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	reservations  *fakeReservationRepo
	applications  *fakeApplicationRepo
	disputes      *fakeDisputeRepo
	reviews       *fakeReviewRepo
	ledger        *fakeLedgerRepo
	outbox        *fakeOutboxRepo
	conversations *fakeConversationRepo
	users         *fakeUserRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *fakeTx) Applications() shared.ApplicationRepository   { return t.applications }
func (t *fakeTx) Disputes() shared.DisputeRepository           { return t.disputes }
func (t *fakeTx) Reviews() shared.ReviewRepository             { return t.reviews }
func (t *fakeTx) Ledger() shared.LedgerRepository              { return t.ledger }
func (t *fakeTx) Outbox() shared.OutboxRepository              { return t.outbox }
func (t *fakeTx) Conversations() shared.ConversationRepository { return t.conversations }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) DB() sqlgen.DBTX                              { return nil }

type fakeReservationRepo struct {
	byID map[uuid.UUID]*reservation.Reservation

	// createErr lets a test simulate losing the unique-index race.
	createErr error

	// pendingMisses makes FindPendingByApplication miss that many times,
	// mimicking a lookup that ran before a competitor's insert committed.
	pendingMisses int
}

// cloneReservation mimics reconstructing an entity from a fresh row read.
// Mutations on a returned entity only reach the store through Update, which
// is what the release dry-run relies on.
func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	c := *r
	return &c
}

func (r *fakeReservationRepo) Create(_ context.Context, _ sqlgen.DBTX, res *reservation.Reservation) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	r.byID[res.ID()] = cloneReservation(res)
	return nil
}

func (r *fakeReservationRepo) GetForUpdate(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r *fakeReservationRepo) GetByIntentForUpdate(_ context.Context, _ sqlgen.DBTX, intentID string) (*reservation.Reservation, error) {
	for _, res := range r.byID {
		if res.StripeIntentID() == intentID {
			return cloneReservation(res), nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (r *fakeReservationRepo) FindPendingByApplication(_ context.Context, _ sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error) {
	if r.pendingMisses > 0 {
		r.pendingMisses--
		return nil, infra.WrapRepoErr("no pending reservation", nil, infra.KindNotFound)
	}
	for _, res := range r.byID {
		if res.ApplicationID() == applicationID && res.Status() == reservation.StatusPendingPayment {
			return cloneReservation(res), nil
		}
	}
	return nil, infra.WrapRepoErr("no pending reservation", nil, infra.KindNotFound)
}

func (r *fakeReservationRepo) FindActiveByApplication(_ context.Context, _ sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error) {
	for _, res := range r.byID {
		if res.ApplicationID() != applicationID {
			continue
		}
		if res.Status().IsCancelled() || res.Status() == reservation.StatusCompleted {
			continue
		}
		return cloneReservation(res), nil
	}
	return nil, infra.WrapRepoErr("no active reservation", nil, infra.KindNotFound)
}

func (r *fakeReservationRepo) Update(_ context.Context, _ sqlgen.DBTX, res *reservation.Reservation) error {
	if _, ok := r.byID[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.byID[res.ID()] = cloneReservation(res)
	return nil
}

type fakeApplicationRepo struct {
	byID map[uuid.UUID]*shared.ApplicationSnapshot
}

func (r *fakeApplicationRepo) GetForUpdate(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("application not found", nil, infra.KindNotFound)
	}
	return app, nil
}

func (r *fakeApplicationRepo) MarkCancelled(_ context.Context, _ sqlgen.DBTX, id uuid.UUID, _ time.Time) error {
	app, ok := r.byID[id]
	if !ok {
		return infra.WrapRepoErr("application not found", nil, infra.KindNotFound)
	}
	app.Status = shared.ApplicationStatusCancelled
	return nil
}

type fakeDisputeRepo struct {
	byID map[uuid.UUID]*dispute.Dispute
}

func (r *fakeDisputeRepo) Create(_ context.Context, _ sqlgen.DBTX, d *dispute.Dispute) error {
	r.byID[d.ID()] = d
	return nil
}

func (r *fakeDisputeRepo) FindOpenByReservation(_ context.Context, _ sqlgen.DBTX, reservationID uuid.UUID) (*dispute.Dispute, error) {
	for _, d := range r.byID {
		if d.ReservationID() == reservationID && d.Status() != dispute.StatusResolved {
			return d, nil
		}
	}
	return nil, infra.WrapRepoErr("no open dispute", nil, infra.KindNotFound)
}

func (r *fakeDisputeRepo) GetForUpdate(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) (*dispute.Dispute, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("dispute not found", nil, infra.KindNotFound)
	}
	return d, nil
}

func (r *fakeDisputeRepo) Update(_ context.Context, _ sqlgen.DBTX, d *dispute.Dispute) error {
	r.byID[d.ID()] = d
	return nil
}

type fakeReviewRepo struct {
	created []*review.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, _ sqlgen.DBTX, rev *review.Review) error {
	for _, existing := range r.created {
		if existing.ReservationID() == rev.ReservationID() && existing.AuthorID() == rev.AuthorID() {
			return infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
		}
	}
	r.created = append(r.created, rev)
	return nil
}

type fakeLedgerRepo struct {
	entries []*ledger.Entry
}

func (r *fakeLedgerRepo) Append(_ context.Context, _ sqlgen.DBTX, entry *ledger.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLedgerRepo) byType(t ledger.EntryType) []*ledger.Entry {
	var out []*ledger.Entry
	for _, e := range r.entries {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

type fakeOutboxRepo struct {
	byID map[uuid.UUID]*shared.OutboxJob
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, _ sqlgen.DBTX, job shared.OutboxJob) error {
	r.byID[job.ID] = &job
	return nil
}

func (r *fakeOutboxRepo) GetPending(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) (*shared.OutboxJob, error) {
	job, ok := r.byID[id]
	if !ok || job.SentAt != nil {
		return nil, infra.WrapRepoErr("no pending job", nil, infra.KindNotFound)
	}
	return job, nil
}

func (r *fakeOutboxRepo) MarkSent(_ context.Context, _ sqlgen.DBTX, id uuid.UUID, now time.Time) error {
	job, ok := r.byID[id]
	if !ok {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	job.SentAt = &now
	return nil
}

func (r *fakeOutboxRepo) IncrementAttempts(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) error {
	job, ok := r.byID[id]
	if !ok {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	job.Attempts++
	return nil
}

func (r *fakeOutboxRepo) events() []string {
	var out []string
	for _, job := range r.byID {
		out = append(out, job.Event)
	}
	return out
}

type systemMessage struct {
	ConversationID uuid.UUID
	Event          string
}

type fakeConversationRepo struct {
	messages []systemMessage
}

func (r *fakeConversationRepo) AppendSystemMessage(_ context.Context, _ sqlgen.DBTX, conversationID uuid.UUID, event string, _ []byte, _ time.Time) error {
	r.messages = append(r.messages, systemMessage{ConversationID: conversationID, Event: event})
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*shared.UserSnapshot
}

func (r *fakeUserRepo) GetSnapshot(_ context.Context, _ sqlgen.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}
