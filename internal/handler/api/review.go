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

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Create review
// @Description Review a completed booking; stars must split 5 base stars plus purchased tip stars
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), req.ToCommandInput(), userID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.ReviewID.String()})
}

// @Summary Create tip intent
// @Description Open a payment intent for tip stars; must succeed before the review is submitted
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTipIntentRequest true "Tip intent request"
// @Success 201 {object} resdto.TipIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/tip [post]
func (h *ReviewHandler) CreateTipIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateTipIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.reviewCommands.CreateTipIntent(c.Request.Context(), commands.CreateTipIntentInput{
		BookingID: req.BookingID,
		TipStars:  req.TipStars,
	}, userID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTipIntentResult(result))
}

// @Summary Get review
// @Description Fetch a single review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format", nil)
		return
	}

	view, err := h.reviewQueries.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, queries.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary List host reviews
// @Description List reviews received by a host, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /hosts/{id}/reviews [get]
func (h *ReviewHandler) ListHostReviews(c *gin.Context) {
	hostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid host ID format", nil)
		return
	}

	views, err := h.reviewQueries.ListByHost(c.Request.Context(), hostID, 50)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReviewView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking does not belong to you", nil)
	case errors.Is(err, commands.ErrBookingNotCompleted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is not completed", nil)
	case errors.Is(err, commands.ErrStarValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Star distribution must total 5 plus purchased tip stars", nil)
	case errors.Is(err, commands.ErrInvalidTipIntent):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Tip payment is missing, unpaid, or does not match", nil)
	case errors.Is(err, commands.ErrDuplicateReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists for this booking", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, commands.ErrPaymentProcessing):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment processor unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
