package api

import (
	"errors"
	"net/http"

	reqdto "mine-dine/internal/handler/dto/request"
	resdto "mine-dine/internal/handler/dto/response"
	"mine-dine/internal/handler/httperr"
	"mine-dine/internal/handler/middleware"
	"mine-dine/internal/usecase/commands"
	"mine-dine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestReviewHandler struct {
	guestReviewCommands commands.GuestReviewCommands
	reviewQueries       queries.ReviewQueries
}

func NewGuestReviewHandler(guestReviewCommands commands.GuestReviewCommands, reviewQueries queries.ReviewQueries) *GuestReviewHandler {
	return &GuestReviewHandler{
		guestReviewCommands: guestReviewCommands,
		reviewQueries:       reviewQueries,
	}
}

// @Summary Create guest review
// @Description Record the host's like/dislike of the guest for a completed booking
// @Tags guest-reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuestReviewRequest true "Guest review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guest-reviews [post]
func (h *GuestReviewHandler) CreateGuestReview(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateGuestReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.guestReviewCommands.CreateGuestReview(c.Request.Context(), commands.CreateGuestReviewInput{
		BookingID: req.BookingID,
		Sentiment: req.Sentiment,
	}, hostID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrNotDinnerHost):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the dinner's host can review this guest", nil)
		case errors.Is(err, commands.ErrBookingNotCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is not completed", nil)
		case errors.Is(err, commands.ErrDuplicateGuestReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "Guest review already exists for this booking", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Sentiment must be like or dislike", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.GuestReviewID.String()})
}

// @Summary Guest reputation
// @Description Aggregate like/dislike counts plus recent entries for one guest
// @Tags guest-reviews
// @Produce json
// @Security BearerAuth
// @Param guest_id query string true "Guest ID"
// @Success 200 {object} resdto.GuestReputationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /guest-reviews [get]
func (h *GuestReviewHandler) GetGuestReputation(c *gin.Context) {
	guestID, err := uuid.Parse(c.Query("guest_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing guest_id", nil)
		return
	}

	view, err := h.reviewQueries.GuestReputation(c.Request.Context(), guestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestReputationView(view))
}
