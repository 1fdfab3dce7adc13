//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type GuestReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	hostID       uuid.UUID
}

func (s *GuestReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	handler := api.NewGuestReviewHandler(s.mockCommands, s.mockQueries)
	s.hostID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.hostID)
		c.Next()
	}

	s.router.POST("/guest-reviews", authMiddleware, handler.CreateGuestReview)
	s.router.GET("/guest-reviews", authMiddleware, handler.GetGuestReputation)
}

func (s *GuestReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestReviewHandlerTestSuite))
}

func (s *GuestReviewHandlerTestSuite) TestCreateGuestReview() {
	url := "/guest-reviews"
	reqBody := reqdto.CreateGuestReviewRequest{BookingID: uuid.New(), Sentiment: "like"}

	s.Run("success: returns 201 Created", func() {
		createdID := uuid.New()
		s.mockCommands.EXPECT().
			CreateGuestReview(gomock.Any(), gomock.Any(), s.hostID).
			Return(&commands.CreateGuestReviewResult{GuestReviewID: createdID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]string
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(createdID.String(), body["id"])
	})

	s.Run("error: 400 on sentiment outside like/dislike", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("sentiment", "meh"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"booking not found", commands.ErrBookingNotFound, http.StatusNotFound},
			{"not the dinner's host", commands.ErrNotDinnerHost, http.StatusForbidden},
			{"booking not completed", commands.ErrBookingNotCompleted, http.StatusBadRequest},
			{"already reviewed", commands.ErrDuplicateGuestReview, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateGuestReview(gomock.Any(), gomock.Any(), s.hostID).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *GuestReviewHandlerTestSuite) TestGetGuestReputation() {
	s.Run("success: aggregates sentiments", func() {
		guestID := uuid.New()
		s.mockQueries.EXPECT().
			GuestReputation(gomock.Any(), guestID).
			Return(&queries.GuestReputationView{
				GuestID:        guestID,
				Likes:          3,
				Dislikes:       1,
				LikePercentage: 75,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest-reviews?guest_id="+guestID.String(), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(float64(3), body["likes"])
		s.Equal(float64(75), body["likePercentage"])
	})

	s.Run("error: 400 without guest_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest-reviews", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
