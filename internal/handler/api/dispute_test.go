//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/handler/api"
	reqdto "sitlink/internal/handler/dto/request"
	resdto "sitlink/internal/handler/dto/response"
	"sitlink/internal/usecase/commands"
	"sitlink/tests/common/httptest"
	"sitlink/tests/common/testutil"
	commandsmock "sitlink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DisputeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDisputeCommands
	handler      *api.DisputeHandler
	viewerID     uuid.UUID
}

func (s *DisputeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDisputeCommands(s.mockCtrl)
	s.handler = api.NewDisputeHandler(s.mockCommands)
	s.viewerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.viewerID)
		c.Next()
	}

	s.router.POST("/disputes", authMiddleware, s.handler.OpenDispute)
	s.router.POST("/disputes/:id/resolve", authMiddleware, s.handler.ResolveDispute)
}

func (s *DisputeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDisputeHandlerSuite(t *testing.T) {
	suite.Run(t, new(DisputeHandlerTestSuite))
}

type testCaseDispute struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *DisputeHandlerTestSuite) TestOpenDispute() {
	url := "/disputes"

	reservationID := uuid.New()
	reqBody := reqdto.OpenDisputeRequest{
		ReservationID: reservationID,
		Reason:        string(dispute.ReasonServiceIncomplete),
		Description:   "The babysitter left two hours early",
	}

	newDispute := func() *dispute.Dispute {
		d, err := dispute.NewDispute(
			reservationID, s.viewerID, uuid.New(),
			dispute.ReasonServiceIncomplete, reqBody.Description,
			time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
		)
		s.Require().NoError(err)
		return d
	}

	s.Run("success: returns 201 Created with the open dispute", func() {
		d := newDispute()
		s.mockCommands.EXPECT().
			OpenDispute(gomock.Any(), commands.OpenDisputeRequest{
				ReservationID: reservationID,
				Reason:        reqBody.Reason,
				Description:   reqBody.Description,
			}, s.viewerID).
			Return(d, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.DisputeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(d.ID(), body.ID)
		s.Equal(reservationID, body.ReservationID)
		s.Equal(s.viewerID, body.ReporterID)
		s.Equal(string(dispute.ReasonServiceIncomplete), body.Reason)
		s.Equal(string(dispute.StatusPending), body.Status)
		s.Nil(body.Resolution)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseDispute{
			{name: "missing field: reservation_id (required)", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: reason (required)", mutate: testutil.Field("reason", nil), expectCode: http.StatusBadRequest},
			{name: "empty reason", mutate: testutil.Field("reason", ""), expectCode: http.StatusBadRequest},
			{name: "reason length invalid (256 chars)", mutate: testutil.Field("reason", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "description length invalid (2001 chars)", mutate: testutil.Field("description", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "caller is not a party",
				commandsError:  commands.ErrNotParticipant,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not a party",
			},
			{
				name:           "unknown dispute reason",
				commandsError:  commands.ErrInvalidDisputeInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid dispute input",
			},
			{
				name:           "open dispute already exists",
				commandsError:  commands.ErrDisputeExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
			},
			{
				name:           "funds already released",
				commandsError:  commands.ErrFundsAlreadyReleased,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already been released",
			},
			{
				name:           "not in a disputable state",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not in a disputable state",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					OpenDispute(gomock.Any(), gomock.Any(), s.viewerID).
					Return(nil, tc.commandsError).
					Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DisputeHandlerTestSuite) TestResolveDispute() {
	disputeID := uuid.New()
	url := "/disputes/" + disputeID.String() + "/resolve"

	reqBody := reqdto.ResolveDisputeRequest{Resolution: string(dispute.ResolutionReleaseFunds)}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			ResolveDispute(gomock.Any(), disputeID, dispute.ResolutionReleaseFunds).
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("success: refund resolution is forwarded as-is", func() {
		refundReq := reqdto.ResolveDisputeRequest{Resolution: string(dispute.ResolutionRefundParent)}
		s.mockCommands.EXPECT().
			ResolveDispute(gomock.Any(), disputeID, dispute.ResolutionRefundParent).
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, refundReq, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 on a malformed dispute id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/disputes/not-a-uuid/resolve", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid dispute ID")
	})

	s.Run("error: 400 on an unknown resolution value", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("resolution", "split_the_difference"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "dispute not found",
				commandsError:  commands.ErrDisputeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Dispute not found",
			},
			{
				name:           "dispute already resolved",
				commandsError:  commands.ErrDisputeClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already resolved",
			},
			{
				name:           "refund gateway failure",
				commandsError:  commands.ErrPaymentGatewayFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "will be retried",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					ResolveDispute(gomock.Any(), disputeID, dispute.ResolutionReleaseFunds).
					Return(tc.commandsError).
					Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
