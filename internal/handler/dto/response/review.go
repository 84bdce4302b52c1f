package response

import (
	"time"

	"sitlink/internal/domain/review"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	AuthorID      uuid.UUID `json:"authorId"`
	SubjectID     uuid.UUID `json:"subjectId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	IsSystem      bool      `json:"isSystem"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReview(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:            r.ID(),
		ReservationID: r.ReservationID(),
		AuthorID:      r.AuthorID(),
		SubjectID:     r.SubjectID(),
		Rating:        r.Rating().Value(),
		Comment:       r.Comment().String(),
		IsSystem:      r.IsSystem(),
		CreatedAt:     r.CreatedAt(),
	}
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		AuthorID:      rm.AuthorID,
		SubjectID:     rm.SubjectID,
		Rating:        int(rm.Rating),
		Comment:       rm.Comment,
		IsSystem:      rm.IsSystem,
		CreatedAt:     rm.CreatedAt,
	}
}
