package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSentiment = errors.New("sentiment must be like or dislike")

type Sentiment string

const (
	SentimentLike    Sentiment = "like"
	SentimentDislike Sentiment = "dislike"
)

func NewSentiment(s string) (Sentiment, error) {
	v := Sentiment(s)
	if v != SentimentLike && v != SentimentDislike {
		return "", ErrInvalidSentiment
	}
	return v, nil
}

func (s Sentiment) String() string {
	return string(s)
}

// GuestReview is the host's sentiment about a guest, one per completed
// booking, feeding the guest's reputation aggregate.
type GuestReview struct {
	id        uuid.UUID
	bookingID uuid.UUID
	hostID    uuid.UUID
	guestID   uuid.UUID
	sentiment Sentiment
	createdAt time.Time
}

func NewGuestReview(bookingID, hostID, guestID uuid.UUID, sentiment Sentiment, now time.Time) *GuestReview {
	return &GuestReview{
		id:        uuid.New(),
		bookingID: bookingID,
		hostID:    hostID,
		guestID:   guestID,
		sentiment: sentiment,
		createdAt: now,
	}
}

func (g *GuestReview) ID() uuid.UUID        { return g.id }
func (g *GuestReview) BookingID() uuid.UUID { return g.bookingID }
func (g *GuestReview) HostID() uuid.UUID    { return g.hostID }
func (g *GuestReview) GuestID() uuid.UUID   { return g.guestID }
func (g *GuestReview) Sentiment() Sentiment { return g.sentiment }
func (g *GuestReview) CreatedAt() time.Time { return g.createdAt }
