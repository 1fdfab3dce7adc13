package response

import (
	"time"

	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type DinnerAddOnResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
}

type DinnerResponse struct {
	ID             uuid.UUID             `json:"id"`
	HostID         uuid.UUID             `json:"hostId"`
	Title          string                `json:"title"`
	MaxGuests      int                   `json:"maxGuests"`
	RemainingSeats int                   `json:"remainingSeats"`
	BasePriceCents int64                 `json:"basePriceCents"`
	Status         string                `json:"status"`
	DateTime       time.Time             `json:"dateTime"`
	AddOns         []DinnerAddOnResponse `json:"addOns"`
}

func FromDinnerView(rm *queries.DinnerView) *DinnerResponse {
	addOns := make([]DinnerAddOnResponse, len(rm.AddOns))
	for i, a := range rm.AddOns {
		addOns[i] = DinnerAddOnResponse{
			ID:         a.ID,
			Name:       a.Name,
			PriceCents: a.PriceCents,
		}
	}

	return &DinnerResponse{
		ID:             rm.ID,
		HostID:         rm.HostID,
		Title:          rm.Title,
		MaxGuests:      rm.MaxGuests,
		RemainingSeats: rm.RemainingSeats,
		BasePriceCents: rm.BasePriceCents,
		Status:         rm.Status,
		DateTime:       rm.DateTime,
		AddOns:         addOns,
	}
}
