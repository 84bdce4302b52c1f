package request

import (
	"github.com/google/uuid"
)

type OpenDisputeRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Reason        string    `json:"reason" binding:"required,max=255"`
	Description   string    `json:"description" binding:"max=2000"`
}

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution" binding:"required,oneof=release_funds refund_parent"`
}
