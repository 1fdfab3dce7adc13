package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mine-dine/internal/pkg/config"
	"mine-dine/internal/pkg/errs"
	"mine-dine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	errIntentCreate      = errs.New("failed to create payment intent")
	errCircuitOpen       = errs.New("payment processor circuit open")
	errEventPayload      = errs.New("failed to decode webhook payload")
	errMetadataBookingID = errs.New("intent metadata carries no valid booking id")
)

// StripeGateway creates payment intents behind a circuit breaker so a
// degraded processor fails fast instead of tying up request handlers.
type StripeGateway struct {
	api      *client.API
	breaker  *gobreaker.CircuitBreaker
	currency string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := client.New(cfg.APIKey, nil)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "stripe",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("payment circuit state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &StripeGateway{
		api:      api,
		breaker:  breaker,
		currency: cfg.Currency,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*commands.PaymentIntent, error) {
	result, err := g.breaker.Execute(func() (any, error) {
		params := &stripe.PaymentIntentParams{
			Params: stripe.Params{
				Context:  ctx,
				Metadata: metadata,
			},
			Amount:   stripe.Int64(amountCents),
			Currency: stripe.String(g.currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		return g.api.PaymentIntents.New(params)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, errs.Mark(err, errCircuitOpen)
		}
		return nil, errs.Mark(err, errIntentCreate)
	}

	intent := result.(*stripe.PaymentIntent)
	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// StripeWebhookVerifier authenticates deliveries against the endpoint secret
// and normalizes them for the payment commands.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(cfg config.StripeConfig) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: cfg.WebhookSecret}
}

func (v *StripeWebhookVerifier) VerifyEvent(payload []byte, signature string) (*commands.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature rejected")
	}

	eventType := commands.PaymentEventType(event.Type)
	switch eventType {
	case commands.EventPaymentSucceeded, commands.EventPaymentFailed:
	default:
		return &commands.PaymentEvent{Type: commands.EventIgnored, RawType: string(event.Type)}, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errs.Mark(err, errEventPayload)
	}

	out := &commands.PaymentEvent{
		Type:        eventType,
		IntentID:    intent.ID,
		Purpose:     intent.Metadata[commands.MetaPurpose],
		AmountCents: intent.Amount,
		RawType:     string(event.Type),
	}

	// Tip intents are keyed by intent id; only booking payments need the
	// metadata linkage.
	if out.Purpose != commands.PurposeTip {
		bookingID, err := uuid.Parse(intent.Metadata[commands.MetaBookingID])
		if err != nil {
			return nil, errs.Mark(err, errMetadataBookingID)
		}
		out.BookingID = bookingID
	}

	return out, nil
}
