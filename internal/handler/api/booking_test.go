//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"mine-dine/internal/domain/user"
	"mine-dine/internal/handler/api"
	reqdto "mine-dine/internal/handler/dto/request"
	"mine-dine/internal/usecase/commands"
	"mine-dine/internal/usecase/queries"
	"mine-dine/tests/common/httptest"
	"mine-dine/tests/common/testutil"
	commandsmock "mine-dine/tests/mock/commands"
	queriesmock "mine-dine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func validCreateBookingRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		DinnerID:       uuid.New(),
		NumberOfGuests: 2,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := validCreateBookingRequest()

	s.Run("success: returns 201 Created for a fresh booking", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "pending", TotalPriceCents: 10000}
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view}, nil)

		rec := httptest.PerformRequestWithIdempotencyKey(s.T(), s.router, url, reqBody, "bearer-token", uuid.NewString())

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(view.ID.String(), body["id"])
	})

	s.Run("success: returns 200 OK on idempotent replay", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "pending"}
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithIdempotencyKey(s.T(), s.router, url, reqBody, "bearer-token", uuid.NewString())

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 without bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing dinner_id", mutate: testutil.Field("dinner_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing number_of_guests", mutate: testutil.Field("number_of_guests", nil), expectCode: http.StatusBadRequest},
			{name: "zero guests", mutate: testutil.Field("number_of_guests", 0), expectCode: http.StatusBadRequest},
			{name: "negative guests", mutate: testutil.Field("number_of_guests", -1), expectCode: http.StatusBadRequest},
			{name: "add-on without quantity", mutate: testutil.Field("selected_add_ons", []map[string]any{{"add_on_id": uuid.NewString()}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithIdempotencyKey(s.T(), s.router, url, body, "bearer-token", uuid.NewString())
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"dinner not found", commands.ErrDinnerNotFound, http.StatusNotFound},
			{"dinner not bookable", commands.ErrDinnerNotBookable, http.StatusBadRequest},
			{"capacity exceeded", commands.ErrCapacityExceeded, http.StatusBadRequest},
			{"unknown add-on", commands.ErrUnknownAddOn, http.StatusBadRequest},
			{"invalid referral code", commands.ErrInvalidReferralCode, http.StatusBadRequest},
			{"duplicate booking", commands.ErrDuplicateBooking, http.StatusConflict},
			{"request in progress", commands.ErrIdempotencyInProgress, http.StatusConflict},
			{"domain validation", commands.ErrDomainValidation, http.StatusUnprocessableEntity},
			{"payment processor down", commands.ErrPaymentProcessing, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequestWithIdempotencyKey(s.T(), s.router, url, reqBody, "bearer-token", uuid.NewString())
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "confirmed"}
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, user.RoleGuest, view.ID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: hidden bookings 404 like missing ones", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, user.RoleGuest, id).
			Return(nil, queries.ErrBookingHidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns the caller's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), Status: "pending"},
			{ID: uuid.New(), Status: "confirmed"},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 50).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body []map[string]any
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	s.Run("success: 204 on completion", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when the booking is not confirmed", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(commands.ErrBookingNotConfirmed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete", nil, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete", nil, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
