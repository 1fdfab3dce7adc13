package request

import (
	"strings"

	"mine-dine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID          uuid.UUID `json:"booking_id" binding:"required"`
	HospitalityStars   int       `json:"hospitality_stars" binding:"min=0,max=5"`
	CleanlinessStars   int       `json:"cleanliness_stars" binding:"min=0,max=5"`
	TasteStars         int       `json:"taste_stars" binding:"min=0,max=5"`
	TipStars           int       `json:"tip_stars" binding:"min=0,max=10"`
	TipPaymentIntentID *string   `json:"tip_payment_intent_id,omitempty"`
	Comment            string    `json:"comment,omitempty"`
}

func (r CreateReviewRequest) ToCommandInput() commands.CreateReviewInput {
	var intentID *string
	if r.TipPaymentIntentID != nil {
		trimmed := strings.TrimSpace(*r.TipPaymentIntentID)
		if trimmed != "" {
			intentID = &trimmed
		}
	}

	return commands.CreateReviewInput{
		BookingID:          r.BookingID,
		HospitalityStars:   r.HospitalityStars,
		CleanlinessStars:   r.CleanlinessStars,
		TasteStars:         r.TasteStars,
		TipStars:           r.TipStars,
		TipPaymentIntentID: intentID,
		Comment:            r.Comment,
	}
}

type CreateTipIntentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	TipStars  int       `json:"tip_stars" binding:"required,min=1,max=10"`
}

type CreateGuestReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Sentiment string    `json:"sentiment" binding:"required,oneof=like dislike"`
}
