package review

import (
	"time"

	"github.com/google/uuid"
)

// SystemPenaltyComment is the fixed comment attached to the automatic 1-star
// review generated when a babysitter cancels an accepted application less
// than 48 hours before the service.
const SystemPenaltyComment = "Automatic review: the babysitter cancelled this booking on short notice."

// Review is authored by one party of a reservation about the other.
// System-generated reviews are flagged so the UI can label them.
type Review struct {
	id            uuid.UUID
	reservationID uuid.UUID
	authorID      uuid.UUID
	subjectID     uuid.UUID
	rating        Rating
	comment       Comment
	system        bool
	createdAt     time.Time
}

func NewReview(reservationID, authorID, subjectID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		reservationID: reservationID,
		authorID:      authorID,
		subjectID:     subjectID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}, nil
}

// NewSystemPenaltyReview builds the automatic 1-star review against a
// babysitter, authored by the parent, with the fixed system comment.
func NewSystemPenaltyReview(reservationID, parentID, sitterID uuid.UUID, now time.Time) *Review {
	rating, _ := NewRating(1)
	comment, _ := NewComment(SystemPenaltyComment)
	return &Review{
		id:            uuid.New(),
		reservationID: reservationID,
		authorID:      parentID,
		subjectID:     sitterID,
		rating:        rating,
		comment:       comment,
		system:        true,
		createdAt:     now,
	}
}

func Reconstruct(id, reservationID, authorID, subjectID uuid.UUID, rating Rating, comment Comment, system bool, createdAt time.Time) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		authorID:      authorID,
		subjectID:     subjectID,
		rating:        rating,
		comment:       comment,
		system:        system,
		createdAt:     createdAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) AuthorID() uuid.UUID      { return r.authorID }
func (r *Review) SubjectID() uuid.UUID     { return r.subjectID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) IsSystem() bool           { return r.system }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
