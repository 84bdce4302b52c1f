package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ApplicationID uuid.UUID `json:"application_id" binding:"required"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}
