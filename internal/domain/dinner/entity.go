package dinner

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDinnerNotBookable = errors.New("dinner is not bookable")
	ErrCapacityExceeded  = errors.New("dinner capacity exceeded")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrInvalidMaxGuests  = errors.New("max guests must be positive")
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
)

// AddOn is a priced extra belonging to a dinner's catalogue. It is immutable
// once referenced by a confirmed booking's selected_add_ons snapshot.
type AddOn struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
}

type Dinner struct {
	id               uuid.UUID
	hostID           uuid.UUID
	title            string
	maxGuests        int
	basePriceCents   int64
	status           Status
	moderationStatus ModerationStatus
	visibility       Visibility
	dateTime         time.Time
	addOns           []AddOn
}

func NewDinner(
	id, hostID uuid.UUID,
	title string,
	maxGuests int,
	basePriceCents int64,
	status Status,
	moderationStatus ModerationStatus,
	visibility Visibility,
	dateTime time.Time,
	addOns []AddOn,
) (*Dinner, error) {
	if maxGuests <= 0 {
		return nil, ErrInvalidMaxGuests
	}
	if basePriceCents < 0 {
		return nil, ErrNegativeBasePrice
	}
	return &Dinner{
		id:               id,
		hostID:           hostID,
		title:            title,
		maxGuests:        maxGuests,
		basePriceCents:   basePriceCents,
		status:           status,
		moderationStatus: moderationStatus,
		visibility:       visibility,
		dateTime:         dateTime,
		addOns:           addOns,
	}, nil
}

func (d *Dinner) ID() uuid.UUID                      { return d.id }
func (d *Dinner) HostID() uuid.UUID                  { return d.hostID }
func (d *Dinner) Title() string                      { return d.title }
func (d *Dinner) MaxGuests() int                     { return d.maxGuests }
func (d *Dinner) BasePriceCents() int64              { return d.basePriceCents }
func (d *Dinner) Status() Status                     { return d.status }
func (d *Dinner) ModerationStatus() ModerationStatus { return d.moderationStatus }
func (d *Dinner) Visibility() Visibility             { return d.visibility }
func (d *Dinner) DateTime() time.Time                { return d.dateTime }
func (d *Dinner) AddOns() []AddOn                    { return d.addOns }

// IsBookable requires the host to have published the dinner and staff to have
// approved it.
func (d *Dinner) IsBookable() bool {
	return d.status == StatusPublished && d.moderationStatus == ModerationApproved
}

func (d *Dinner) ValidateBookable() error {
	if !d.IsBookable() {
		return ErrDinnerNotBookable
	}
	return nil
}

// CheckCapacity enforces the invariant that guests across PENDING and CONFIRMED
// bookings never exceed maxGuests. bookedGuests is the current sum; the caller
// must hold the dinner row lock so the check and the insert are atomic.
func (d *Dinner) CheckCapacity(bookedGuests, requestedGuests int) error {
	if requestedGuests <= 0 {
		return ErrInvalidGuestCount
	}
	if bookedGuests+requestedGuests > d.maxGuests {
		return ErrCapacityExceeded
	}
	return nil
}

func (d *Dinner) FindAddOn(id uuid.UUID) (AddOn, bool) {
	for _, a := range d.addOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
