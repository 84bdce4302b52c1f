//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/shared"
	commandsmock "sitlink/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHourlyRateCents = 2000

var (
	testFees       = reservation.NewFeeSchedule(200, 15)
	testHoldWindow = 24 * time.Hour
	testBase       = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

type reservationEnv struct {
	uow       *fakeUoW
	gateway   *commandsmock.MockPaymentGateway
	scheduler *commandsmock.MockTaskScheduler
	clk       *clock.MockClock
	uc        commands.ReservationCommands
}

func newReservationEnv(t *testing.T) *reservationEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &reservationEnv{
		uow:       newFakeUoW(),
		gateway:   commandsmock.NewMockPaymentGateway(ctrl),
		scheduler: commandsmock.NewMockTaskScheduler(ctrl),
		clk:       clock.NewMockClock(testBase),
	}
	env.uc = commands.NewReservationUseCase(env.uow, env.gateway, env.scheduler, testFees, testHoldWindow, env.clk)
	return env
}

func (e *reservationEnv) seedUser(id uuid.UUID, role string, customerID, accountID string) {
	snap := &shared.UserSnapshot{ID: id, Role: role, DisplayName: role}
	if customerID != "" {
		snap.StripeCustomerID = &customerID
	}
	if accountID != "" {
		snap.StripeAccountID = &accountID
	}
	e.uow.tx.users.byID[id] = snap
}

func (e *reservationEnv) seedApplication(parentID, sitterID uuid.UUID, serviceStartAt time.Time) *shared.ApplicationSnapshot {
	convID := uuid.New()
	app := &shared.ApplicationSnapshot{
		ID:              uuid.New(),
		AdID:            uuid.New(),
		ParentID:        parentID,
		SitterID:        sitterID,
		ConversationID:  &convID,
		HourlyRateCents: testHourlyRateCents,
		ServiceStartAt:  serviceStartAt,
		ServiceEndAt:    serviceStartAt.Add(3 * time.Hour),
		Status:          shared.ApplicationStatusAccepted,
	}
	e.uow.tx.applications.byID[app.ID] = app
	return app
}

// seedReservation stores a reservation built through the real domain
// transitions so the fixtures can never drift from the state machine.
func (e *reservationEnv) seedReservation(app *shared.ApplicationSnapshot, status reservation.Status) *reservation.Reservation {
	fees := testFees.Compute(reservation.NewMoney(app.HourlyRateCents))
	res := reservation.NewReservation(
		app.AdID, app.ID, app.ParentID, app.SitterID,
		app.ConversationID, app.ServiceStartAt, fees, "pi_test", testBase,
	)

	switch status {
	case reservation.StatusPendingPayment:
	case reservation.StatusPaid:
		mustNoErr(res.MarkPaid("pi_test", testBase))
	case reservation.StatusActive:
		mustNoErr(res.MarkPaid("pi_test", testBase))
		mustNoErr(res.StartService(app.SitterID, testBase))
	case reservation.StatusServiceCompleted:
		mustNoErr(res.MarkPaid("pi_test", testBase))
		mustNoErr(res.StartService(app.SitterID, testBase))
		mustNoErr(res.CompleteService(app.SitterID, testHoldWindow, testBase))
	default:
		panic("unsupported fixture status " + status.String())
	}

	e.uow.tx.reservations.byID[res.ID()] = res
	return res
}

// stored reads the current persisted state; entities held by the test go
// stale once the use case writes through Update.
func (e *reservationEnv) stored(id uuid.UUID) *reservation.Reservation {
	return e.uow.tx.reservations.byID[id]
}

func mustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

func TestCreateFromApplication_CreatesPendingReservation(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	env.seedUser(parentID, "parent", "cus_1", "")
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	env.gateway.EXPECT().
		CreateIntent(gomock.Any(), int64(2200), "cus_1", gomock.Any()).
		Return(&commands.PaymentIntent{ID: "pi_new", ClientSecret: "secret_1", Status: "requires_payment_method"}, nil)

	result, err := env.uc.CreateFromApplication(context.Background(), app.ID, parentID)
	require.NoError(t, err)
	assert.False(t, result.IsReplayed)
	assert.Equal(t, "secret_1", result.ClientSecret)
	assert.Equal(t, reservation.StatusPendingPayment, result.Reservation.Status())
	assert.Equal(t, int64(1700), result.Reservation.Fees().SitterPayout.Cents())

	stored, err := env.uow.tx.reservations.GetForUpdate(context.Background(), nil, result.Reservation.ID())
	require.NoError(t, err)
	assert.Equal(t, "pi_new", stored.StripeIntentID())
}

func TestCreateFromApplication_ReplaysExistingPending(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	env.seedUser(parentID, "parent", "cus_1", "")
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))
	existing := env.seedReservation(app, reservation.StatusPendingPayment)

	env.gateway.EXPECT().
		RetrieveIntent(gomock.Any(), "pi_test").
		Return(&commands.PaymentIntent{ID: "pi_test", ClientSecret: "secret_replay"}, nil)

	result, err := env.uc.CreateFromApplication(context.Background(), app.ID, parentID)
	require.NoError(t, err)
	assert.True(t, result.IsReplayed)
	assert.Equal(t, existing.ID(), result.Reservation.ID())
	assert.Equal(t, "secret_replay", result.ClientSecret)
}

func TestCreateFromApplication_RejectsWrongParent(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	_, err := env.uc.CreateFromApplication(context.Background(), app.ID, uuid.New())
	assert.ErrorIs(t, err, commands.ErrNotApplicationParent)
}

func TestCreateFromApplication_RejectsNonAcceptedApplication(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))
	app.Status = shared.ApplicationStatusCancelled

	_, err := env.uc.CreateFromApplication(context.Background(), app.ID, parentID)
	assert.ErrorIs(t, err, commands.ErrApplicationNotAccepted)
}

func TestCreateFromApplication_GatewayFailureLeavesNoRow(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	env.seedUser(parentID, "parent", "cus_1", "")
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	env.gateway.EXPECT().
		CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := env.uc.CreateFromApplication(context.Background(), app.ID, parentID)
	assert.ErrorIs(t, err, commands.ErrPaymentGatewayFailed)
	assert.Empty(t, env.uow.tx.reservations.byID)
}

func TestCreateFromApplication_LosingInsertRaceReplaysWinner(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	env.seedUser(parentID, "parent", "cus_1", "")
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	// The winner's row exists, but this request's first lookup ran before the
	// winner's insert committed, so it reaches Create and hits the unique
	// index. The fallback lookup then finds the winner and replays it.
	winner := env.seedReservation(app, reservation.StatusPendingPayment)
	env.uow.tx.reservations.pendingMisses = 1
	env.uow.tx.reservations.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

	env.gateway.EXPECT().
		CreateIntent(gomock.Any(), int64(2200), "cus_1", gomock.Any()).
		Return(&commands.PaymentIntent{ID: "pi_loser", ClientSecret: "secret_loser"}, nil)
	env.gateway.EXPECT().
		RetrieveIntent(gomock.Any(), "pi_test").
		Return(&commands.PaymentIntent{ID: "pi_test", ClientSecret: "secret_winner"}, nil)

	result, err := env.uc.CreateFromApplication(context.Background(), app.ID, parentID)
	require.NoError(t, err)
	assert.True(t, result.IsReplayed)
	assert.Equal(t, winner.ID(), result.Reservation.ID())
}

func TestStartService_BySitter(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, env.uc.StartService(context.Background(), res.ID(), sitterID))
	assert.Equal(t, reservation.StatusActive, env.stored(res.ID()).Status())
	assert.Contains(t, env.uow.tx.outbox.events(), commands.EventServiceStarted)
	require.Len(t, env.uow.tx.conversations.messages, 1)
	assert.Equal(t, commands.EventServiceStarted, env.uow.tx.conversations.messages[0].Event)
}

func TestStartService_ParentCannotStart(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	err := env.uc.StartService(context.Background(), res.ID(), parentID)
	assert.ErrorIs(t, err, commands.ErrNotParticipant)
	assert.Equal(t, reservation.StatusPaid, env.stored(res.ID()).Status())
}

func TestCompleteService_SchedulesRelease(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusActive)

	env.scheduler.EXPECT().
		ScheduleFundsRelease(gomock.Any(), res.ID(), testBase.Add(testHoldWindow)).
		Return(nil)
	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(t, env.uc.CompleteService(context.Background(), res.ID(), sitterID))
	stored := env.stored(res.ID())
	assert.Equal(t, reservation.StatusServiceCompleted, stored.Status())
	assert.Equal(t, reservation.FundsHeldForValidation, stored.Funds())
	require.NotNil(t, stored.FundsHoldUntil())
	assert.Equal(t, testBase.Add(testHoldWindow), *stored.FundsHoldUntil())

	events := env.uow.tx.outbox.events()
	assert.Contains(t, events, commands.EventServiceCompleted)
	// Reviews are permitted from service_completed on, so both parties get
	// the nudge with the completion, not with the payout.
	reviewNudges := 0
	for _, e := range events {
		if e == commands.EventReviewRequested {
			reviewNudges++
		}
	}
	assert.Equal(t, 2, reviewNudges)
}

func TestCancel_ParentWithNoticeRefundsMinusServiceFee(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(48*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2000)).
		Return("re_1", nil)

	result, err := env.uc.Cancel(context.Background(), res.ID(), parentID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusRefundedMinusFees, result.Status)
	assert.Equal(t, int64(2000), result.Refund.Cents())

	stored := env.stored(res.ID())
	assert.Equal(t, reservation.StatusRefundedMinusFees, stored.Status())
	assert.Equal(t, reservation.FundsRefunded, stored.Funds())

	refunds := env.uow.tx.ledger.byType(ledger.TypeRefund)
	require.Len(t, refunds, 1)
	assert.Equal(t, int64(2000), refunds[0].Amount().Cents())
	assert.Equal(t, "re_1", refunds[0].GatewayRef())

	deductions := env.uow.tx.ledger.byType(ledger.TypeDeduction)
	require.Len(t, deductions, 1)
	assert.Equal(t, int64(200), deductions[0].Amount().Cents())
}

func TestCancel_ParentLatePaysOutSitter(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	env.seedUser(sitterID, "babysitter", "", "acct_1")
	app := env.seedApplication(parentID, sitterID, testBase.Add(2*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateTransfer(gomock.Any(), "acct_1", int64(1700), res.ID()).
		Return("tr_1", nil)

	result, err := env.uc.Cancel(context.Background(), res.ID(), parentID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelledByParentLate, result.Status)
	assert.True(t, result.Refund.IsZero())

	stored := env.stored(res.ID())
	assert.Equal(t, reservation.StatusCancelledByParentLate, stored.Status())
	assert.Equal(t, reservation.FundsReleased, stored.Funds())
	require.NotNil(t, stored.StripeTransferID())
	assert.Equal(t, "tr_1", *stored.StripeTransferID())

	payouts := env.uow.tx.ledger.byType(ledger.TypePayout)
	require.Len(t, payouts, 1)
	assert.Equal(t, int64(1700), payouts[0].Amount().Cents())

	// The deduction line records the full forfeited deposit.
	deductions := env.uow.tx.ledger.byType(ledger.TypeDeduction)
	require.Len(t, deductions, 1)
	assert.Equal(t, int64(2200), deductions[0].Amount().Cents())
}

func TestCancel_SitterRefundsParentInFull(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(2*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2200)).
		Return("re_full", nil)

	result, err := env.uc.Cancel(context.Background(), res.ID(), sitterID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusRefundedSitterPenalty, result.Status)
	assert.Equal(t, int64(2200), result.Refund.Cents())
	assert.Equal(t, reservation.FundsRefunded, env.stored(res.ID()).Funds())
}

func TestCancel_BeforePaymentNeedsNoGateway(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(48*time.Hour))
	res := env.seedReservation(app, reservation.StatusPendingPayment)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)

	result, err := env.uc.Cancel(context.Background(), res.ID(), parentID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelledByParent, result.Status)
	assert.True(t, result.Refund.IsZero())
	assert.Equal(t, reservation.FundsCancelled, env.stored(res.ID()).Funds())
	assert.Empty(t, env.uow.tx.ledger.entries)
}

func TestCancel_GatewayFailureParksRefundPending(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(48*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2000)).
		Return("", assert.AnError)

	_, err := env.uc.Cancel(context.Background(), res.ID(), parentID)
	require.NoError(t, err)

	stored := env.stored(res.ID())
	assert.Equal(t, reservation.StatusParentRefundPending, stored.Status())
	require.NotNil(t, stored.GatewayError())
	assert.Empty(t, env.uow.tx.ledger.entries)
}

func TestCancel_CompletedServiceIsNotCancellable(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	_, err := env.uc.Cancel(context.Background(), res.ID(), parentID)
	assert.ErrorIs(t, err, commands.ErrNotCancellable)
}

func TestCancel_StrangerIsRejected(t *testing.T) {
	env := newReservationEnv(t)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(48*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	_, err := env.uc.Cancel(context.Background(), res.ID(), uuid.New())
	assert.ErrorIs(t, err, commands.ErrNotParticipant)
}
