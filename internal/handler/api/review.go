package api

import (
	"net/http"

	resdto "sitlink/internal/handler/dto/response"
	"sitlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewQueries queries.ReviewQueries
}

func NewReviewHandler(reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewQueries: reviewQueries,
	}
}

// @Summary List reviews for a user
// @Description List the most recent reviews written about a user
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	views, err := h.reviewQueries.ListReviewsForUser(c.Request.Context(), subjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.ReviewResponse, 0, len(views))
	for i := range views {
		responses = append(responses, resdto.FromReviewView(&views[i]))
	}
	c.JSON(http.StatusOK, responses)
}
