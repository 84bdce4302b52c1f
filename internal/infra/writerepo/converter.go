package writerepo

import (
	"sitlink/internal/domain/dispute"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
)

func reservationToRow(res *reservation.Reservation) sqlgen.Reservation {
	fees := res.Fees()
	return sqlgen.Reservation{
		ID:             res.ID(),
		AdID:           res.AdID(),
		ApplicationID:  res.ApplicationID(),
		ParentID:       res.ParentID(),
		SitterID:       res.SitterID(),
		ConversationID: pgconv.UUIDPtrToPgtype(res.ConversationID()),

		HourlyRateCents:   fees.HourlyRate.Cents(),
		DepositCents:      fees.Deposit.Cents(),
		ServiceFeeCents:   fees.ServiceFee.Cents(),
		PlatformFeeCents:  fees.PlatformFee.Cents(),
		SitterPayoutCents: fees.SitterPayout.Cents(),
		TotalDepositCents: fees.TotalDeposit.Cents(),

		Status:      res.Status().String(),
		FundsStatus: res.Funds().String(),

		ReservedAt:      pgconv.TimeToPgtype(res.ReservedAt()),
		ServiceStartAt:  pgconv.TimeToPgtype(res.ServiceStartAt()),
		ServiceEndAt:    pgconv.TimePtrToPgtype(res.ServiceEndAt()),
		PaidAt:          pgconv.TimePtrToPgtype(res.PaidAt()),
		CancelledAt:     pgconv.TimePtrToPgtype(res.CancelledAt()),
		FundsHoldUntil:  pgconv.TimePtrToPgtype(res.FundsHoldUntil()),
		FundsReleasedAt: pgconv.TimePtrToPgtype(res.FundsReleasedAt()),

		ParentReviewed: res.ParentReviewed(),
		SitterReviewed: res.SitterReviewed(),

		StripeIntentID:   res.StripeIntentID(),
		StripeTransferID: pgconv.StringPtrToPgtype(res.StripeTransferID()),
		StripeRefundID:   pgconv.StringPtrToPgtype(res.StripeRefundID()),
		GatewayError:     pgconv.StringPtrToPgtype(res.GatewayError()),

		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func rowToReservation(row sqlgen.Reservation) *reservation.Reservation {
	fees := reservation.FeeBreakdown{
		HourlyRate:   reservation.NewMoney(row.HourlyRateCents),
		Deposit:      reservation.NewMoney(row.DepositCents),
		ServiceFee:   reservation.NewMoney(row.ServiceFeeCents),
		PlatformFee:  reservation.NewMoney(row.PlatformFeeCents),
		SitterPayout: reservation.NewMoney(row.SitterPayoutCents),
		TotalDeposit: reservation.NewMoney(row.TotalDepositCents),
	}

	return reservation.Reconstruct(
		row.ID, row.AdID, row.ApplicationID, row.ParentID, row.SitterID,
		pgconv.UUIDPtrFromPgtype(row.ConversationID),
		fees,
		reservation.Status(row.Status),
		reservation.FundsStatus(row.FundsStatus),
		pgconv.TimeFromPgtype(row.ReservedAt),
		pgconv.TimeFromPgtype(row.ServiceStartAt),
		pgconv.TimePtrFromPgtype(row.ServiceEndAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimePtrFromPgtype(row.FundsHoldUntil),
		pgconv.TimePtrFromPgtype(row.FundsReleasedAt),
		row.ParentReviewed, row.SitterReviewed,
		row.StripeIntentID,
		pgconv.StringPtrFromPgtype(row.StripeTransferID),
		pgconv.StringPtrFromPgtype(row.StripeRefundID),
		pgconv.StringPtrFromPgtype(row.GatewayError),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func rowToDispute(row sqlgen.Dispute) *dispute.Dispute {
	var resolution *dispute.Resolution
	if s := pgconv.StringPtrFromPgtype(row.Resolution); s != nil {
		r := dispute.Resolution(*s)
		resolution = &r
	}
	return dispute.Reconstruct(
		row.ID, row.ReservationID, row.ReporterID, row.ReportedID,
		dispute.Reason(row.Reason), row.Description, dispute.Status(row.Status),
		resolution,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	)
}

func disputeToRow(d *dispute.Dispute) sqlgen.Dispute {
	var resolution *string
	if r := d.Resolution(); r != nil {
		s := string(*r)
		resolution = &s
	}
	return sqlgen.Dispute{
		ID:            d.ID(),
		ReservationID: d.ReservationID(),
		ReporterID:    d.ReporterID(),
		ReportedID:    d.ReportedID(),
		Reason:        string(d.Reason()),
		Description:   d.Description(),
		Status:        d.Status().String(),
		Resolution:    pgconv.StringPtrToPgtype(resolution),
		CreatedAt:     pgconv.TimeToPgtype(d.CreatedAt()),
		ResolvedAt:    pgconv.TimePtrToPgtype(d.ResolvedAt()),
	}
}
