package response

import (
	"sitlink/internal/usecase/commands"

	"github.com/google/uuid"
)

type CancelApplicationResponse struct {
	ApplicationID   uuid.UUID  `json:"applicationId"`
	ReservationID   *uuid.UUID `json:"reservationId,omitempty"`
	Status          *string    `json:"reservationStatus,omitempty"`
	RefundCents     int64      `json:"refundCents"`
	PenaltyReviewed bool       `json:"penaltyReviewed"`
}

func FromCancelApplicationResult(result *commands.CancelApplicationResult) *CancelApplicationResponse {
	resp := &CancelApplicationResponse{
		ApplicationID:   result.ApplicationID,
		ReservationID:   result.ReservationID,
		RefundCents:     result.Refund.Cents(),
		PenaltyReviewed: result.PenaltyReviewed,
	}
	if result.Status != nil {
		s := result.Status.String()
		resp.Status = &s
	}
	return resp
}
