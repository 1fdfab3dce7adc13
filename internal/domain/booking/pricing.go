package booking

import (
	"errors"

	"mine-dine/internal/domain/dinner"

	"github.com/google/uuid"
)

var (
	ErrUnknownAddOn      = errors.New("unknown add-on for this dinner")
	ErrInvalidQuantity   = errors.New("add-on quantity must be positive")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
)

// AddOnSelection is the guest's pick of one catalogue add-on.
type AddOnSelection struct {
	AddOnID  uuid.UUID `json:"add_on_id"`
	Quantity int       `json:"quantity"`
}

// Quote is the price breakdown computed exactly once at booking creation.
// It is never recomputed after confirmation.
type Quote struct {
	BasePriceCents   int64
	AddOnsTotalCents int64
	TotalPriceCents  int64
}

// ComputeQuote derives the booking total from the dinner's per-person price,
// the guest count and the selected add-ons. Selections referencing add-ons
// outside the dinner's catalogue reject the whole request rather than being
// silently dropped.
func ComputeQuote(d *dinner.Dinner, numberOfGuests int, selections []AddOnSelection) (Quote, error) {
	if numberOfGuests <= 0 {
		return Quote{}, ErrInvalidGuestCount
	}

	base := d.BasePriceCents() * int64(numberOfGuests)

	var addOnsTotal int64
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return Quote{}, ErrInvalidQuantity
		}
		addOn, ok := d.FindAddOn(sel.AddOnID)
		if !ok {
			return Quote{}, ErrUnknownAddOn
		}
		addOnsTotal += addOn.PriceCents * int64(sel.Quantity)
	}

	return Quote{
		BasePriceCents:   base,
		AddOnsTotalCents: addOnsTotal,
		TotalPriceCents:  base + addOnsTotal,
	}, nil
}
