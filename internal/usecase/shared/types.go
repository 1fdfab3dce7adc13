package shared

import (
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/dinner"

	"github.com/google/uuid"
)

// Write-side snapshots keep command code off the read-side view types.

type DinnerSnapshot struct {
	ID               uuid.UUID
	HostID           uuid.UUID
	Title            string
	MaxGuests        int
	BasePriceCents   int64
	Status           string
	ModerationStatus string
	Visibility       string
	DateTime         time.Time
	AddOns           []dinner.AddOn
}

type BookingSnapshot struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	DinnerID            uuid.UUID
	HostID              uuid.UUID
	NumberOfGuests      int
	TotalPriceCents     int64
	ReferralModeratorID *uuid.UUID
	Status              booking.Status
	PaymentIntentID     *string
}

type ModeratorSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ReferralCode string
	Active       bool
}

type TipIntentSnapshot struct {
	IntentID    string
	BookingID   uuid.UUID
	AmountCents int64
	Status      string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

const (
	TipIntentPending   = "pending"
	TipIntentSucceeded = "succeeded"
)
