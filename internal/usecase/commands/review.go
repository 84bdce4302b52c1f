package commands

import (
	"context"
	"errors"

	"sitlink/internal/domain/reservation"
	domreview "sitlink/internal/domain/review"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReviewInput = errs.New("invalid review input")
	ErrAlreadyReviewed    = errs.New("party has already reviewed this reservation")
	ErrNotReviewable      = errs.New("reservation is not reviewable yet")
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type ReviewCommands interface {
	// CreateReview lets either party rate the other once the service has
	// completed. One review per party per reservation.
	CreateReview(ctx context.Context, req CreateReviewRequest, authorID uuid.UUID) (*domreview.Review, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, authorID uuid.UUID) (*domreview.Review, error) {
	now := uc.clock.Now()

	var created *domreview.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}
		actor, err := res.ActorFor(authorID)
		if err != nil {
			return markDomainErr(err)
		}
		subjectID := res.SitterID()
		if authorID == res.SitterID() {
			subjectID = res.ParentID()
		}

		if err := res.MarkReviewed(actor, now); err != nil {
			return markReviewErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}

		rev, err := domreview.NewReview(req.ReservationID, authorID, subjectID, req.Rating, req.Comment, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidReviewInput)
		}
		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrAlreadyReviewed)
			}
			return err
		}
		created = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func markReviewErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrNotReviewable):
		return errs.Mark(err, ErrNotReviewable)
	case errors.Is(err, reservation.ErrAlreadyReviewed):
		return errs.Mark(err, ErrAlreadyReviewed)
	default:
		return markDomainErr(err)
	}
}
