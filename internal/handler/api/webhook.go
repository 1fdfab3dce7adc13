package api

import (
	"errors"
	"io"
	"net/http"

	"mine-dine/internal/handler/httperr"
	"mine-dine/internal/pkg/errs"
	"mine-dine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Stripe caps event payloads well below this; anything larger is garbage.
const maxWebhookBodyBytes = 1 << 16

type WebhookHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewWebhookHandler(paymentCommands commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{paymentCommands: paymentCommands}
}

// @Summary Stripe webhook
// @Description Receive payment events; signature-verified, replay-safe
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read request body", nil)
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing Stripe-Signature header"), "Missing Stripe-Signature header", nil)
		return
	}

	if err := h.paymentCommands.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookSignatureInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook signature", nil)
		default:
			// Non-2xx tells the processor to redeliver; every handler path
			// is idempotent so retries are safe.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
