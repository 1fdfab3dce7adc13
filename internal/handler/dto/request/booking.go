package request

import (
	"strings"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/usecase/commands"

	"github.com/google/uuid"
)

type SelectedAddOn struct {
	AddOnID  uuid.UUID `json:"add_on_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	DinnerID       uuid.UUID       `json:"dinner_id" binding:"required"`
	NumberOfGuests int             `json:"number_of_guests" binding:"required,min=1"`
	SelectedAddOns []SelectedAddOn `json:"selected_add_ons,omitempty"`
	ReferralCode   *string         `json:"referral_code,omitempty"`
}

func (r CreateBookingRequest) GetReferralCode() *string {
	if r.ReferralCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ReferralCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToCommandInput() commands.CreateBookingInput {
	selections := make([]booking.AddOnSelection, len(r.SelectedAddOns))
	for i, s := range r.SelectedAddOns {
		selections[i] = booking.AddOnSelection{
			AddOnID:  s.AddOnID,
			Quantity: s.Quantity,
		}
	}

	return commands.CreateBookingInput{
		DinnerID:       r.DinnerID,
		NumberOfGuests: r.NumberOfGuests,
		SelectedAddOns: selections,
		ReferralCode:   r.GetReferralCode(),
	}
}
