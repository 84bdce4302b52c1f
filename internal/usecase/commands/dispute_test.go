//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDisputeUC(env *reservationEnv) commands.DisputeCommands {
	return commands.NewDisputeUseCase(env.uow, env.gateway, env.scheduler, env.clk)
}

func openDisputeReq(reservationID uuid.UUID) commands.OpenDisputeRequest {
	return commands.OpenDisputeRequest{
		ReservationID: reservationID,
		Reason:        string(dispute.ReasonServiceIncomplete),
		Description:   "the sitter left two hours early",
	}
}

func TestOpenDispute_FreezesHeldFunds(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)

	d, err := uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), parentID)
	require.NoError(t, err)
	assert.Equal(t, dispute.StatusPending, d.Status())
	assert.Equal(t, parentID, d.ReporterID())
	assert.Equal(t, sitterID, d.ReportedID())

	assert.Equal(t, reservation.FundsDisputed, env.stored(res.ID()).Funds())
	assert.Contains(t, env.uow.tx.outbox.events(), commands.EventDisputeCreated)
}

func TestOpenDispute_SitterReportsParent(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)

	d, err := uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), sitterID)
	require.NoError(t, err)
	assert.Equal(t, sitterID, d.ReporterID())
	assert.Equal(t, parentID, d.ReportedID())
}

func TestOpenDispute_SecondOpenDisputeRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), parentID)
	require.NoError(t, err)

	_, err = uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), sitterID)
	assert.ErrorIs(t, err, commands.ErrDisputeExists)
}

func TestOpenDispute_AfterReleaseRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)
	env.clk.Advance(testHoldWindow)
	mustNoErr(res.ReleaseFunds("tr_done", env.clk.Now()))

	_, err := uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), parentID)
	assert.ErrorIs(t, err, commands.ErrFundsAlreadyReleased)
}

func TestOpenDispute_InvalidReasonRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	req := openDisputeReq(res.ID())
	req.Reason = "vibes"
	_, err := uc.OpenDispute(context.Background(), req, parentID)
	assert.ErrorIs(t, err, commands.ErrInvalidDisputeInput)
}

func TestOpenDispute_StrangerRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	_, err := uc.OpenDispute(context.Background(), openDisputeReq(res.ID()), uuid.New())
	assert.ErrorIs(t, err, commands.ErrNotParticipant)
}

func seedOpenDispute(env *reservationEnv, res *reservation.Reservation, reporterID, reportedID uuid.UUID) *dispute.Dispute {
	mustNoErr(res.MarkDisputed(testBase))
	d, err := dispute.NewDispute(res.ID(), reporterID, reportedID, dispute.ReasonServiceIncomplete, "left early", testBase)
	mustNoErr(err)
	env.uow.tx.disputes.byID[d.ID()] = d
	return d
}

func TestResolveDispute_ReleaseFundsReschedulesRelease(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)
	d := seedOpenDispute(env, res, parentID, sitterID)

	// Both parties are notified of the resolution.
	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	// The hold window has not elapsed yet, so the release lands on holdUntil.
	env.scheduler.EXPECT().
		ScheduleFundsRelease(gomock.Any(), res.ID(), testBase.Add(testHoldWindow)).
		Return(nil)

	require.NoError(t, uc.ResolveDispute(context.Background(), d.ID(), dispute.ResolutionReleaseFunds))
	assert.Equal(t, dispute.StatusResolved, d.Status())
	assert.Equal(t, reservation.FundsHeldForValidation, env.stored(res.ID()).Funds())
}

func TestResolveDispute_RefundParentReturnsFullDeposit(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)
	d := seedOpenDispute(env, res, parentID, sitterID)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2200)).
		Return("re_dispute", nil)

	require.NoError(t, uc.ResolveDispute(context.Background(), d.ID(), dispute.ResolutionRefundParent))
	stored := env.stored(res.ID())
	assert.Equal(t, reservation.StatusRefundedSitterPenalty, stored.Status())
	assert.Equal(t, reservation.FundsRefunded, stored.Funds())

	refunds := env.uow.tx.ledger.byType(ledger.TypeRefund)
	require.Len(t, refunds, 1)
	assert.Equal(t, int64(2200), refunds[0].Amount().Cents())
	assert.Equal(t, "re_dispute", refunds[0].GatewayRef())
}

func TestResolveDispute_RefundGatewayFailureParksReservation(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)
	d := seedOpenDispute(env, res, parentID, sitterID)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", gomock.Any()).
		Return("", assert.AnError)

	require.NoError(t, uc.ResolveDispute(context.Background(), d.ID(), dispute.ResolutionRefundParent))
	assert.Equal(t, dispute.StatusResolved, d.Status())
	assert.Equal(t, reservation.StatusParentRefundPending, env.stored(res.ID()).Status())
	assert.Empty(t, env.uow.tx.ledger.entries)
}

func TestResolveDispute_AlreadyResolvedRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)
	d := seedOpenDispute(env, res, parentID, sitterID)
	mustNoErr(d.Resolve(dispute.ResolutionReleaseFunds, testBase))

	err := uc.ResolveDispute(context.Background(), d.ID(), dispute.ResolutionRefundParent)
	assert.ErrorIs(t, err, commands.ErrDisputeClosed)
}

func TestResolveDispute_UnknownDispute(t *testing.T) {
	env := newReservationEnv(t)
	uc := newDisputeUC(env)

	err := uc.ResolveDispute(context.Background(), uuid.New(), dispute.ResolutionReleaseFunds)
	assert.ErrorIs(t, err, commands.ErrDisputeNotFound)
}
