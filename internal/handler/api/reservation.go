package api

import (
	"errors"
	"net/http"

	reqdto "sitlink/internal/handler/dto/request"
	resdto "sitlink/internal/handler/dto/response"
	"sitlink/internal/handler/middleware"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reviewCommands      commands.ReviewCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reviewCommands commands.ReviewCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reviewCommands:      reviewCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve an accepted application and open the payment intent
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.CreateFromApplication(c.Request.Context(), req.ApplicationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Application not found",
			})
		case errors.Is(err, commands.ErrNotApplicationParent):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the parent of the application can reserve it",
			})
		case errors.Is(err, commands.ErrApplicationNotAccepted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Application is not in an accepted state",
			})
		case errors.Is(err, commands.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCreateReservationResult(result))
}

// @Summary List my reservations
// @Description List reservations where the caller is parent or babysitter
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListMyReservations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.ReservationResponse, 0, len(views))
	for i := range views {
		responses = append(responses, resdto.FromReservationView(&views[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get reservation
// @Description Get a reservation visible to the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, role, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetReservation(c.Request.Context(), reservationID, userID, role)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Start service
// @Description Babysitter marks the service as started
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/start [post]
func (h *ReservationHandler) StartService(c *gin.Context) {
	userID, _, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.StartService(c.Request.Context(), reservationID, userID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Complete service
// @Description Mark the service as completed and start the fund hold window
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/complete [post]
func (h *ReservationHandler) CompleteService(c *gin.Context) {
	userID, _, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.CompleteService(c.Request.Context(), reservationID, userID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel reservation
// @Description Cancel a reservation under the fee schedule for the caller's side
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, _, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	result, err := h.reservationCommands.Cancel(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation cannot be cancelled in its current state",
			})
		case errors.Is(err, commands.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Refund could not be processed, it will be retried",
			})
		default:
			h.respondCommandError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(reservationID, result))
}

// @Summary List reservation transactions
// @Description List the money movements recorded for a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/transactions [get]
func (h *ReservationHandler) ListTransactions(c *gin.Context) {
	userID, role, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	views, err := h.reservationQueries.ListTransactions(c.Request.Context(), reservationID, userID, role)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	responses := make([]*resdto.TransactionResponse, 0, len(views))
	for i := range views {
		responses = append(responses, resdto.FromTransactionView(&views[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Review the other party
// @Description Rate the other party once the service has completed
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/reviews [post]
func (h *ReservationHandler) CreateReview(c *gin.Context) {
	userID, _, reservationID, ok := h.viewerAndID(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		ReservationID: reservationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReviewInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review input",
			})
		case errors.Is(err, commands.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already reviewed this reservation",
			})
		case errors.Is(err, commands.ErrNotReviewable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation is not reviewable yet",
			})
		default:
			h.respondCommandError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReview(created))
}

func (h *ReservationHandler) viewerAndID(c *gin.Context) (userID uuid.UUID, role string, reservationID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", uuid.Nil, false
	}

	userRole, found := middleware.GetUserRole(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", uuid.Nil, false
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return uuid.Nil, "", uuid.Nil, false
	}

	return userID, userRole.String(), reservationID, true
}

func (h *ReservationHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You are not a party to this reservation",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is not in a valid state for this operation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *ReservationHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, queries.ErrReservationAccess):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have access to this reservation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
