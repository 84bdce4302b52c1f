package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"sitlink/internal/pkg/config"
	"sitlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const webhookMaxBodyBytes = 64 * 1024

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	signingSecret   string
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, cfg config.StripeConfig) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		signingSecret:   cfg.WebhookSecret,
	}
}

// HandleStripeEvent verifies the event signature and confirms payments.
// Events we do not act on are acknowledged so Stripe stops retrying them.
//
// @Summary Stripe webhook
// @Description Receive payment events from Stripe
// @Tags webhooks
// @Accept json
// @Success 200 "OK"
// @Failure 400 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookMaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unable to read request body",
		})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.signingSecret)
	if err != nil {
		slog.Warn("Stripe webhook signature verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			slog.Error("Failed to decode payment intent event", "event_id", event.ID, "error", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed event payload",
			})
			return
		}

		if err := h.webhookCommands.HandlePaymentSucceeded(c.Request.Context(), intent.ID); err != nil {
			slog.Error("Failed to process payment confirmation", "intent_id", intent.ID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
	default:
		slog.Debug("Ignoring unhandled Stripe event", "type", string(event.Type))
	}

	c.Status(http.StatusOK)
}
