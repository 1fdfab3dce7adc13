package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentIntent is the slice of the processor's intent object this service
// cares about.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates payment intents with the external processor.
// Metadata is echoed back on webhook events and carries the booking linkage.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*PaymentIntent, error)
}

// Metadata keys and values attached to every intent this service creates.
const (
	MetaBookingID = "booking_id"
	MetaUserID    = "user_id"
	MetaDinnerID  = "dinner_id"
	MetaPurpose   = "purpose"

	PurposeBooking = "booking"
	PurposeTip     = "tip"
)

type PaymentEventType string

const (
	EventPaymentSucceeded PaymentEventType = "payment_intent.succeeded"
	EventPaymentFailed    PaymentEventType = "payment_intent.payment_failed"
	EventIgnored          PaymentEventType = ""
)

// PaymentEvent is a verified, normalized webhook event. Events of types this
// service does not handle come back as EventIgnored so the handler can ack
// them without branching on raw processor types.
type PaymentEvent struct {
	Type        PaymentEventType
	IntentID    string
	BookingID   uuid.UUID
	Purpose     string
	AmountCents int64
	RawType     string
}

// WebhookVerifier authenticates a webhook delivery against the shared secret
// before any payload field is trusted.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (*PaymentEvent, error)
}
