package response

import (
	"time"

	"sitlink/internal/domain/dispute"

	"github.com/google/uuid"
)

type DisputeResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservationId"`
	ReporterID    uuid.UUID  `json:"reporterId"`
	ReportedID    uuid.UUID  `json:"reportedId"`
	Reason        string     `json:"reason"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Resolution    *string    `json:"resolution,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
}

func FromDispute(d *dispute.Dispute) *DisputeResponse {
	resp := &DisputeResponse{
		ID:            d.ID(),
		ReservationID: d.ReservationID(),
		ReporterID:    d.ReporterID(),
		ReportedID:    d.ReportedID(),
		Reason:        string(d.Reason()),
		Description:   d.Description(),
		Status:        string(d.Status()),
		CreatedAt:     d.CreatedAt(),
		ResolvedAt:    d.ResolvedAt(),
	}
	if r := d.Resolution(); r != nil {
		s := string(*r)
		resp.Resolution = &s
	}
	return resp
}
