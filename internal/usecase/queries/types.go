package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SelectedAddOnView struct {
	AddOnID  uuid.UUID `json:"add_on_id"`
	Quantity int       `json:"quantity"`
}

type BookingView struct {
	ID               uuid.UUID           `json:"id"`
	DinnerID         uuid.UUID           `json:"dinner_id"`
	DinnerTitle      string              `json:"dinner_title"`
	HostID           uuid.UUID           `json:"host_id"`
	UserID           uuid.UUID           `json:"user_id"`
	NumberOfGuests   int                 `json:"number_of_guests"`
	BasePriceCents   int64               `json:"base_price_cents"`
	AddOnsTotalCents int64               `json:"add_ons_total_cents"`
	TotalPriceCents  int64               `json:"total_price_cents"`
	SelectedAddOns   []SelectedAddOnView `json:"selected_add_ons"`
	ReferralCodeUsed *string             `json:"referral_code_used,omitempty"`
	Status           string              `json:"status"`
	PaymentIntentID  *string             `json:"payment_intent_id,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	DinnerID        uuid.UUID `json:"dinner_id"`
	DinnerTitle     string    `json:"dinner_title"`
	NumberOfGuests  int       `json:"number_of_guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type DinnerAddOnView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
}

type DinnerView struct {
	ID             uuid.UUID         `json:"id"`
	HostID         uuid.UUID         `json:"host_id"`
	Title          string            `json:"title"`
	MaxGuests      int               `json:"max_guests"`
	RemainingSeats int               `json:"remaining_seats"`
	BasePriceCents int64             `json:"base_price_cents"`
	Status         string            `json:"status"`
	DateTime       time.Time         `json:"date_time"`
	AddOns         []DinnerAddOnView `json:"add_ons"`
}

type ReviewView struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"booking_id"`
	UserID           uuid.UUID `json:"user_id"`
	HostID           uuid.UUID `json:"host_id"`
	HospitalityStars int       `json:"hospitality_stars"`
	CleanlinessStars int       `json:"cleanliness_stars"`
	TasteStars       int       `json:"taste_stars"`
	TipStars         int       `json:"tip_stars"`
	TipAmountCents   int64     `json:"tip_amount_cents"`
	Comment          *string   `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type GuestReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	HostID    uuid.UUID `json:"host_id"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestReputationView aggregates host sentiments about one guest.
type GuestReputationView struct {
	GuestID        uuid.UUID              `json:"guest_id"`
	Likes          int                    `json:"likes"`
	Dislikes       int                    `json:"dislikes"`
	LikePercentage float64                `json:"like_percentage"`
	Recent         []*GuestReviewListItem `json:"recent"`
}
