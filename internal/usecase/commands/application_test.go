//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sitlink/internal/domain/reservation"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApplicationUC(env *reservationEnv) commands.ApplicationCommands {
	return commands.NewApplicationUseCase(env.uow, env.gateway, env.scheduler, env.clk)
}

func TestCancelApplication_WithoutReservation(t *testing.T) {
	env := newReservationEnv(t)
	uc := newApplicationUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	result, err := uc.CancelApplication(context.Background(), app.ID, sitterID)
	require.NoError(t, err)
	assert.Nil(t, result.ReservationID)
	assert.Nil(t, result.Status)
	assert.False(t, result.PenaltyReviewed)
	assert.Equal(t, shared.ApplicationStatusCancelled, app.Status)
}

func TestCancelApplication_LateWithdrawalAddsPenaltyReview(t *testing.T) {
	env := newReservationEnv(t)
	uc := newApplicationUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(24*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2200)).
		Return("re_penalty", nil)

	result, err := uc.CancelApplication(context.Background(), app.ID, sitterID)
	require.NoError(t, err)
	require.NotNil(t, result.ReservationID)
	assert.Equal(t, res.ID(), *result.ReservationID)
	require.NotNil(t, result.Status)
	assert.Equal(t, reservation.StatusRefundedSitterPenalty, *result.Status)
	assert.Equal(t, int64(2200), result.Refund.Cents())
	assert.True(t, result.PenaltyReviewed)

	assert.Equal(t, shared.ApplicationStatusCancelled, app.Status)
	assert.Equal(t, reservation.FundsRefunded, env.stored(res.ID()).Funds())

	require.Len(t, env.uow.tx.reviews.created, 1)
	penalty := env.uow.tx.reviews.created[0]
	assert.True(t, penalty.IsSystem())
	assert.Equal(t, 1, penalty.Rating().Value())
	assert.Equal(t, parentID, penalty.AuthorID())
	assert.Equal(t, sitterID, penalty.SubjectID())
}

func TestCancelApplication_EnoughNoticeSkipsPenalty(t *testing.T) {
	env := newReservationEnv(t)
	uc := newApplicationUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))
	res := env.seedReservation(app, reservation.StatusPaid)

	env.scheduler.EXPECT().EnqueueNotifyDispatch(gomock.Any(), gomock.Any()).Return(nil)
	env.gateway.EXPECT().
		CreateRefund(gomock.Any(), "pi_test", int64(2200)).
		Return("re_notice", nil)

	result, err := uc.CancelApplication(context.Background(), app.ID, sitterID)
	require.NoError(t, err)
	assert.False(t, result.PenaltyReviewed)
	assert.Empty(t, env.uow.tx.reviews.created)
	assert.Equal(t, reservation.StatusRefundedSitterPenalty, env.stored(res.ID()).Status())
}

func TestCancelApplication_OnlyTheSitterMayWithdraw(t *testing.T) {
	env := newReservationEnv(t)
	uc := newApplicationUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))

	_, err := uc.CancelApplication(context.Background(), app.ID, parentID)
	assert.ErrorIs(t, err, commands.ErrNotApplicationSitter)
	assert.Equal(t, shared.ApplicationStatusAccepted, app.Status)
}

func TestCancelApplication_RejectsNonAccepted(t *testing.T) {
	env := newReservationEnv(t)
	uc := newApplicationUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(72*time.Hour))
	app.Status = shared.ApplicationStatusCancelled

	_, err := uc.CancelApplication(context.Background(), app.ID, sitterID)
	assert.ErrorIs(t, err, commands.ErrApplicationNotAccepted)
}
