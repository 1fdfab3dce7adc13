//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"mine-dine/internal/handler/api"
	"mine-dine/internal/usecase/commands"
	"mine-dine/tests/common/httptest"
	commandsmock "mine-dine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	handler := api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/stripe", handler.HandleStripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandleStripe() {
	url := "/webhooks/stripe"
	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	s.Run("success: acks a verified delivery", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, "t=1,v1=sig").
			Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, map[string]string{
			"Stripe-Signature": "t=1,v1=sig",
		})

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without a signature header", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on signature verification failure", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, "bad").
			Return(commands.ErrWebhookSignatureInvalid)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, map[string]string{
			"Stripe-Signature": "bad",
		})

		s.Equal(http.StatusBadRequest, rec.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Invalid webhook signature", body.Error.Message)
	})

	s.Run("error: 500 triggers redelivery on persistence failure", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, "t=1,v1=sig").
			Return(commands.ErrDatabaseOperationFailed)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, map[string]string{
			"Stripe-Signature": "t=1,v1=sig",
		})

		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
