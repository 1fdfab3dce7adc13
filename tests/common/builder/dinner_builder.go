//go:build unit || e2e

package builder

import (
	"time"

	"mine-dine/internal/domain/dinner"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

type DinnerBuilder struct {
	id               uuid.UUID
	hostID           uuid.UUID
	title            string
	maxGuests        int
	basePriceCents   int64
	status           dinner.Status
	moderationStatus dinner.ModerationStatus
	visibility       dinner.Visibility
	dateTime         time.Time
	addOns           []dinner.AddOn
}

func NewDinnerBuilder() *DinnerBuilder {
	return &DinnerBuilder{
		id:               uuid.New(),
		hostID:           uuid.New(),
		title:            "Pasta night",
		maxGuests:        8,
		basePriceCents:   5000,
		status:           dinner.StatusPublished,
		moderationStatus: dinner.ModerationApproved,
		visibility:       dinner.VisibilityPublic,
		dateTime:         time.Now().Add(48 * time.Hour),
	}
}

func (b *DinnerBuilder) WithID(id uuid.UUID) *DinnerBuilder       { b.id = id; return b }
func (b *DinnerBuilder) WithHostID(id uuid.UUID) *DinnerBuilder   { b.hostID = id; return b }
func (b *DinnerBuilder) WithMaxGuests(n int) *DinnerBuilder       { b.maxGuests = n; return b }
func (b *DinnerBuilder) WithBasePrice(cents int64) *DinnerBuilder { b.basePriceCents = cents; return b }

func (b *DinnerBuilder) WithStatus(s dinner.Status) *DinnerBuilder { b.status = s; return b }

func (b *DinnerBuilder) WithModeration(m dinner.ModerationStatus) *DinnerBuilder {
	b.moderationStatus = m
	return b
}

func (b *DinnerBuilder) WithAddOn(id uuid.UUID, name string, priceCents int64) *DinnerBuilder {
	b.addOns = append(b.addOns, dinner.AddOn{ID: id, Name: name, PriceCents: priceCents})
	return b
}

func (b *DinnerBuilder) BuildDomain() (*dinner.Dinner, error) {
	return dinner.NewDinner(
		b.id, b.hostID, b.title, b.maxGuests, b.basePriceCents,
		b.status, b.moderationStatus, b.visibility, b.dateTime, b.addOns,
	)
}

func (b *DinnerBuilder) BuildSnapshot() *shared.DinnerSnapshot {
	return &shared.DinnerSnapshot{
		ID:               b.id,
		HostID:           b.hostID,
		Title:            b.title,
		MaxGuests:        b.maxGuests,
		BasePriceCents:   b.basePriceCents,
		Status:           string(b.status),
		ModerationStatus: string(b.moderationStatus),
		Visibility:       string(b.visibility),
		DateTime:         b.dateTime,
		AddOns:           b.addOns,
	}
}
