package response

import (
	"time"

	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	AdID           uuid.UUID  `json:"adId"`
	ApplicationID  uuid.UUID  `json:"applicationId"`
	ParentID       uuid.UUID  `json:"parentId"`
	SitterID       uuid.UUID  `json:"babysitterId"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty"`

	ParentName string `json:"parentName"`
	SitterName string `json:"babysitterName"`

	HourlyRateCents   int64 `json:"hourlyRateCents"`
	DepositCents      int64 `json:"depositCents"`
	ServiceFeeCents   int64 `json:"serviceFeeCents"`
	PlatformFeeCents  int64 `json:"platformFeeCents"`
	SitterPayoutCents int64 `json:"babysitterPayoutCents"`
	TotalDepositCents int64 `json:"totalDepositCents"`

	Status      string `json:"status"`
	FundsStatus string `json:"fundsStatus"`

	ReservedAt      time.Time  `json:"reservedAt"`
	ServiceStartAt  time.Time  `json:"serviceStartAt"`
	ServiceEndAt    *time.Time `json:"serviceEndAt,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	FundsHoldUntil  *time.Time `json:"fundsHoldUntil,omitempty"`
	FundsReleasedAt *time.Time `json:"fundsReleasedAt,omitempty"`

	ParentReviewed bool `json:"parentReviewed"`
	SitterReviewed bool `json:"babysitterReviewed"`
}

type CreateReservationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	FundsStatus   string    `json:"fundsStatus"`
	TotalCents    int64     `json:"totalCents"`
	ClientSecret  string    `json:"clientSecret"`
	Replayed      bool      `json:"replayed"`
}

type CancelReservationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	FundsStatus   string    `json:"fundsStatus"`
	RefundCents   int64     `json:"refundCents"`
	Reason        string    `json:"reason"`
}

type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	Type          string    `json:"type"`
	AmountCents   int64     `json:"amountCents"`
	GatewayRef    string    `json:"gatewayRef"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                rm.ID,
		AdID:              rm.AdID,
		ApplicationID:     rm.ApplicationID,
		ParentID:          rm.ParentID,
		SitterID:          rm.SitterID,
		ConversationID:    rm.ConversationID,
		ParentName:        rm.ParentName,
		SitterName:        rm.SitterName,
		HourlyRateCents:   rm.HourlyRateCents,
		DepositCents:      rm.DepositCents,
		ServiceFeeCents:   rm.ServiceFeeCents,
		PlatformFeeCents:  rm.PlatformFeeCents,
		SitterPayoutCents: rm.SitterPayoutCents,
		TotalDepositCents: rm.TotalDepositCents,
		Status:            rm.Status,
		FundsStatus:       rm.FundsStatus,
		ReservedAt:        rm.ReservedAt,
		ServiceStartAt:    rm.ServiceStartAt,
		ServiceEndAt:      rm.ServiceEndAt,
		PaidAt:            rm.PaidAt,
		CancelledAt:       rm.CancelledAt,
		FundsHoldUntil:    rm.FundsHoldUntil,
		FundsReleasedAt:   rm.FundsReleasedAt,
		ParentReviewed:    rm.ParentReviewed,
		SitterReviewed:    rm.SitterReviewed,
	}
}

func FromCreateReservationResult(result *commands.CreateReservationResult) *CreateReservationResponse {
	res := result.Reservation
	return &CreateReservationResponse{
		ReservationID: res.ID(),
		Status:        res.Status().String(),
		FundsStatus:   res.Funds().String(),
		TotalCents:    res.Fees().TotalDeposit.Cents(),
		ClientSecret:  result.ClientSecret,
		Replayed:      result.IsReplayed,
	}
}

func FromCancelResult(reservationID uuid.UUID, result *commands.CancelResult) *CancelReservationResponse {
	return &CancelReservationResponse{
		ReservationID: reservationID,
		Status:        result.Status.String(),
		FundsStatus:   result.FundsStatus.String(),
		RefundCents:   result.Refund.Cents(),
		Reason:        result.Reason,
	}
}

func FromTransactionView(rm *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		Type:          rm.Type,
		AmountCents:   rm.AmountCents,
		GatewayRef:    rm.GatewayRef,
		Reason:        rm.Reason,
		CreatedAt:     rm.CreatedAt,
	}
}
