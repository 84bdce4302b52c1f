package api

import (
	"errors"
	"net/http"

	"sitlink/internal/domain/dispute"
	reqdto "sitlink/internal/handler/dto/request"
	resdto "sitlink/internal/handler/dto/response"
	"sitlink/internal/handler/middleware"
	"sitlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DisputeHandler struct {
	disputeCommands commands.DisputeCommands
}

func NewDisputeHandler(disputeCommands commands.DisputeCommands) *DisputeHandler {
	return &DisputeHandler{
		disputeCommands: disputeCommands,
	}
}

// @Summary Open dispute
// @Description Open a dispute on a reservation and freeze its funds
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenDisputeRequest true "Dispute request"
// @Success 201 {object} resdto.DisputeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /disputes [post]
func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.OpenDisputeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.disputeCommands.OpenDispute(c.Request.Context(), commands.OpenDisputeRequest{
		ReservationID: req.ReservationID,
		Reason:        req.Reason,
		Description:   req.Description,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You are not a party to this reservation",
			})
		case errors.Is(err, commands.ErrInvalidDisputeInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dispute input",
			})
		case errors.Is(err, commands.ErrDisputeExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An open dispute already exists for this reservation",
			})
		case errors.Is(err, commands.ErrFundsAlreadyReleased):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Funds have already been released for this reservation",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not in a disputable state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDispute(created))
}

// @Summary Resolve dispute
// @Description Admin resolves a dispute by releasing funds or refunding the parent
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body reqdto.ResolveDisputeRequest true "Resolution request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /disputes/{id}/resolve [post]
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dispute ID",
		})
		return
	}

	var req reqdto.ResolveDisputeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.disputeCommands.ResolveDispute(c.Request.Context(), disputeID, dispute.Resolution(req.Resolution)); err != nil {
		switch {
		case errors.Is(err, commands.ErrDisputeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dispute not found",
			})
		case errors.Is(err, commands.ErrDisputeClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Dispute is already resolved",
			})
		case errors.Is(err, commands.ErrInvalidDisputeInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dispute resolution",
			})
		case errors.Is(err, commands.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Refund could not be processed, it will be retried",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
