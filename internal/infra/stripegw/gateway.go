// Package stripegw adapts Stripe Connect to the payment gateway port. All
// amounts cross this boundary in minor units, matching Stripe's own contract.
package stripegw

import (
	"context"

	"sitlink/internal/pkg/config"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"github.com/stripe/stripe-go/v76/transfer"
	"github.com/stripe/stripe-go/v76/transferreversal"
)

type Gateway struct {
	currency string
}

func NewGateway(cfg config.StripeConfig) commands.PaymentGateway {
	stripe.Key = cfg.SecretKey
	return &Gateway{currency: cfg.Currency}
}

func (g *Gateway) CreateIntent(ctx context.Context, amountCents int64, customerID string, metadata map[string]string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create payment intent")
	}
	return toPaymentIntent(intent), nil
}

func (g *Gateway) RetrieveIntent(ctx context.Context, intentID string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(intentID, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: retrieve payment intent")
	}
	return toPaymentIntent(intent), nil
}

func (g *Gateway) CreateRefund(ctx context.Context, intentID string, amountCents int64) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
		Amount:        stripe.Int64(amountCents),
	}
	params.Context = ctx

	ref, err := refund.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: create refund")
	}
	return ref.ID, nil
}

func (g *Gateway) CreateTransfer(ctx context.Context, accountID string, amountCents int64, reservationID uuid.UUID) (string, error) {
	params := &stripe.TransferParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(g.currency),
		Destination:   stripe.String(accountID),
		TransferGroup: stripe.String(reservationID.String()),
	}
	params.Context = ctx

	tr, err := transfer.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: create transfer")
	}
	return tr.ID, nil
}

func (g *Gateway) ReverseTransfer(ctx context.Context, transferID string, amountCents int64) (string, error) {
	params := &stripe.TransferReversalParams{
		ID:     stripe.String(transferID),
		Amount: stripe.Int64(amountCents),
	}
	params.Context = ctx

	rev, err := transferreversal.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: reverse transfer")
	}
	return rev.ID, nil
}

func toPaymentIntent(intent *stripe.PaymentIntent) *commands.PaymentIntent {
	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}
}
