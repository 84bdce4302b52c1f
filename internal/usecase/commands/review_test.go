//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sitlink/internal/domain/reservation"
	"sitlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewUC(env *reservationEnv) commands.ReviewCommands {
	return commands.NewReviewUseCase(env.uow, env.clk)
}

func reviewReq(reservationID uuid.UUID) commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ReservationID: reservationID,
		Rating:        5,
		Comment:       "great with the kids",
	}
}

func TestCreateReview_ParentReviewsSitter(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	rev, err := uc.CreateReview(context.Background(), reviewReq(res.ID()), parentID)
	require.NoError(t, err)
	assert.Equal(t, parentID, rev.AuthorID())
	assert.Equal(t, sitterID, rev.SubjectID())
	assert.Equal(t, 5, rev.Rating().Value())
	assert.False(t, rev.IsSystem())

	assert.True(t, env.stored(res.ID()).ParentReviewed())
}

func TestCreateReview_BothPartiesMayReviewOnce(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	_, err := uc.CreateReview(context.Background(), reviewReq(res.ID()), parentID)
	require.NoError(t, err)
	_, err = uc.CreateReview(context.Background(), reviewReq(res.ID()), sitterID)
	require.NoError(t, err)

	stored := env.stored(res.ID())
	assert.True(t, stored.ParentReviewed())
	assert.True(t, stored.SitterReviewed())
	assert.Len(t, env.uow.tx.reviews.created, 2)
}

func TestCreateReview_SecondReviewBySamePartyRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	_, err := uc.CreateReview(context.Background(), reviewReq(res.ID()), parentID)
	require.NoError(t, err)
	_, err = uc.CreateReview(context.Background(), reviewReq(res.ID()), parentID)
	assert.ErrorIs(t, err, commands.ErrAlreadyReviewed)
}

func TestCreateReview_NotReviewableBeforeCompletion(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusActive)

	_, err := uc.CreateReview(context.Background(), reviewReq(res.ID()), parentID)
	assert.ErrorIs(t, err, commands.ErrNotReviewable)
}

func TestCreateReview_InvalidRatingRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	req := reviewReq(res.ID())
	req.Rating = 6
	_, err := uc.CreateReview(context.Background(), req, parentID)
	assert.ErrorIs(t, err, commands.ErrInvalidReviewInput)
}

func TestCreateReview_StrangerRejected(t *testing.T) {
	env := newReservationEnv(t)
	uc := newReviewUC(env)
	parentID, sitterID := uuid.New(), uuid.New()
	app := env.seedApplication(parentID, sitterID, testBase.Add(time.Hour))
	res := env.seedReservation(app, reservation.StatusServiceCompleted)

	_, err := uc.CreateReview(context.Background(), reviewReq(res.ID()), uuid.New())
	assert.ErrorIs(t, err, commands.ErrNotParticipant)
}
