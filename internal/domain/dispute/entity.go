package dispute

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidReason     = errors.New("invalid dispute reason")
	ErrAlreadyResolved   = errors.New("dispute is already resolved")
	ErrInvalidResolution = errors.New("invalid dispute resolution")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

func (s Status) String() string {
	return string(s)
}

// Reason is a closed enum; free-text detail lives in the description.
type Reason string

const (
	ReasonServiceNotProvided Reason = "service_not_provided"
	ReasonServiceIncomplete  Reason = "service_incomplete"
	ReasonSafetyConcern      Reason = "safety_concern"
	ReasonPaymentIssue       Reason = "payment_issue"
	ReasonOther              Reason = "other"
)

func (r Reason) IsValid() bool {
	switch r {
	case ReasonServiceNotProvided, ReasonServiceIncomplete,
		ReasonSafetyConcern, ReasonPaymentIssue, ReasonOther:
		return true
	default:
		return false
	}
}

// Resolution of a resolved dispute: either the funds go to the babysitter
// through the normal release path, or the parent is refunded.
type Resolution string

const (
	ResolutionReleaseFunds Resolution = "release_funds"
	ResolutionRefundParent Resolution = "refund_parent"
)

func (r Resolution) IsValid() bool {
	return r == ResolutionReleaseFunds || r == ResolutionRefundParent
}

// Dispute freezes fund release on its reservation while open.
type Dispute struct {
	id            uuid.UUID
	reservationID uuid.UUID
	reporterID    uuid.UUID
	reportedID    uuid.UUID
	reason        Reason
	description   string
	status        Status
	resolution    *Resolution
	createdAt     time.Time
	resolvedAt    *time.Time
}

func NewDispute(reservationID, reporterID, reportedID uuid.UUID, reason Reason, description string, now time.Time) (*Dispute, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidReason
	}
	return &Dispute{
		id:            uuid.New(),
		reservationID: reservationID,
		reporterID:    reporterID,
		reportedID:    reportedID,
		reason:        reason,
		description:   description,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(
	id, reservationID, reporterID, reportedID uuid.UUID,
	reason Reason, description string, status Status,
	resolution *Resolution,
	createdAt time.Time, resolvedAt *time.Time,
) *Dispute {
	return &Dispute{
		id:            id,
		reservationID: reservationID,
		reporterID:    reporterID,
		reportedID:    reportedID,
		reason:        reason,
		description:   description,
		status:        status,
		resolution:    resolution,
		createdAt:     createdAt,
		resolvedAt:    resolvedAt,
	}
}

func (d *Dispute) Resolve(resolution Resolution, now time.Time) error {
	if d.status == StatusResolved {
		return ErrAlreadyResolved
	}
	if !resolution.IsValid() {
		return ErrInvalidResolution
	}
	d.status = StatusResolved
	d.resolution = &resolution
	d.resolvedAt = &now
	return nil
}

func (d *Dispute) ID() uuid.UUID            { return d.id }
func (d *Dispute) ReservationID() uuid.UUID { return d.reservationID }
func (d *Dispute) ReporterID() uuid.UUID    { return d.reporterID }
func (d *Dispute) ReportedID() uuid.UUID    { return d.reportedID }
func (d *Dispute) Reason() Reason           { return d.reason }
func (d *Dispute) Description() string      { return d.description }
func (d *Dispute) Status() Status           { return d.status }
func (d *Dispute) Resolution() *Resolution  { return d.resolution }
func (d *Dispute) CreatedAt() time.Time     { return d.createdAt }
func (d *Dispute) ResolvedAt() *time.Time   { return d.resolvedAt }
