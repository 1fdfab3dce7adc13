// Package httperr carries structured error payloads from handlers to the
// error-rendering middleware via the gin error stack.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body. Status is transport metadata and never
// serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for logging and writes resp as
// the response body. The wrapped error is kept so the access log middleware
// can emit the root cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
