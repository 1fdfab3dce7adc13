package response

import (
	"time"

	"mine-dine/internal/usecase/commands"
	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"bookingId"`
	HostID           uuid.UUID `json:"hostId"`
	HospitalityStars int       `json:"hospitalityStars"`
	CleanlinessStars int       `json:"cleanlinessStars"`
	TasteStars       int       `json:"tasteStars"`
	TipStars         int       `json:"tipStars"`
	TipAmountCents   int64     `json:"tipAmountCents"`
	Comment          *string   `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:               rm.ID,
		BookingID:        rm.BookingID,
		HostID:           rm.HostID,
		HospitalityStars: rm.HospitalityStars,
		CleanlinessStars: rm.CleanlinessStars,
		TasteStars:       rm.TasteStars,
		TipStars:         rm.TipStars,
		TipAmountCents:   rm.TipAmountCents,
		Comment:          rm.Comment,
		CreatedAt:        rm.CreatedAt,
	}
}

type TipIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	AmountCents     int64  `json:"amountCents"`
}

func FromTipIntentResult(result *commands.TipIntentResult) *TipIntentResponse {
	return &TipIntentResponse{
		PaymentIntentID: result.PaymentIntentID,
		ClientSecret:    result.ClientSecret,
		AmountCents:     result.AmountCents,
	}
}

type GuestReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

type GuestReputationResponse struct {
	GuestID        uuid.UUID             `json:"guestId"`
	Likes          int                   `json:"likes"`
	Dislikes       int                   `json:"dislikes"`
	LikePercentage float64               `json:"likePercentage"`
	Recent         []GuestReviewResponse `json:"recent"`
}

func FromGuestReputationView(rm *queries.GuestReputationView) *GuestReputationResponse {
	recent := make([]GuestReviewResponse, len(rm.Recent))
	for i, item := range rm.Recent {
		recent[i] = GuestReviewResponse{
			ID:        item.ID,
			BookingID: item.BookingID,
			Sentiment: item.Sentiment,
			CreatedAt: item.CreatedAt,
		}
	}

	return &GuestReputationResponse{
		GuestID:        rm.GuestID,
		Likes:          rm.Likes,
		Dislikes:       rm.Dislikes,
		LikePercentage: rm.LikePercentage,
		Recent:         recent,
	}
}
