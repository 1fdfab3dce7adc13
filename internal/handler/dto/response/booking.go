package response

import (
	"time"

	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type SelectedAddOnResponse struct {
	AddOnID  uuid.UUID `json:"addOnId"`
	Quantity int       `json:"quantity"`
}

type BookingResponse struct {
	ID               uuid.UUID               `json:"id"`
	DinnerID         uuid.UUID               `json:"dinnerId"`
	DinnerTitle      string                  `json:"dinnerTitle"`
	NumberOfGuests   int                     `json:"numberOfGuests"`
	BasePriceCents   int64                   `json:"basePriceCents"`
	AddOnsTotalCents int64                   `json:"addOnsTotalCents"`
	TotalPriceCents  int64                   `json:"totalPriceCents"`
	SelectedAddOns   []SelectedAddOnResponse `json:"selectedAddOns"`
	ReferralCode     *string                 `json:"referralCode,omitempty"`
	Status           string                  `json:"status"`
	PaymentIntentID  *string                 `json:"paymentIntentId,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	DinnerID        uuid.UUID `json:"dinnerId"`
	DinnerTitle     string    `json:"dinnerTitle"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	addOns := make([]SelectedAddOnResponse, len(rm.SelectedAddOns))
	for i, a := range rm.SelectedAddOns {
		addOns[i] = SelectedAddOnResponse{
			AddOnID:  a.AddOnID,
			Quantity: a.Quantity,
		}
	}

	return &BookingResponse{
		ID:               rm.ID,
		DinnerID:         rm.DinnerID,
		DinnerTitle:      rm.DinnerTitle,
		NumberOfGuests:   rm.NumberOfGuests,
		BasePriceCents:   rm.BasePriceCents,
		AddOnsTotalCents: rm.AddOnsTotalCents,
		TotalPriceCents:  rm.TotalPriceCents,
		SelectedAddOns:   addOns,
		ReferralCode:     rm.ReferralCodeUsed,
		Status:           rm.Status,
		PaymentIntentID:  rm.PaymentIntentID,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              rm.ID,
		DinnerID:        rm.DinnerID,
		DinnerTitle:     rm.DinnerTitle,
		NumberOfGuests:  rm.NumberOfGuests,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
	}
}
