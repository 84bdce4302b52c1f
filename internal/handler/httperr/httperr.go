package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint emits: a flat message under
// "error", with optional structured detail.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// AbortWithError records the original error on the context for logging and
// writes the public body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
