package api

import (
	"errors"
	"net/http"

	resdto "sitlink/internal/handler/dto/response"
	"sitlink/internal/handler/middleware"
	"sitlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applicationCommands commands.ApplicationCommands
}

func NewApplicationHandler(applicationCommands commands.ApplicationCommands) *ApplicationHandler {
	return &ApplicationHandler{
		applicationCommands: applicationCommands,
	}
}

// @Summary Cancel application
// @Description Babysitter withdraws an accepted application; any live reservation is cancelled on their account
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} resdto.CancelApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /applications/{id}/cancel [post]
func (h *ApplicationHandler) CancelApplication(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid application ID",
		})
		return
	}

	result, err := h.applicationCommands.CancelApplication(c.Request.Context(), applicationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Application not found",
			})
		case errors.Is(err, commands.ErrNotApplicationSitter):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the accepted babysitter can cancel this application",
			})
		case errors.Is(err, commands.ErrApplicationNotAccepted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Application is not in an accepted state",
			})
		case errors.Is(err, commands.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation cannot be cancelled in its current state",
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

	c.JSON(http.StatusOK, resdto.FromCancelApplicationResult(result))
}
