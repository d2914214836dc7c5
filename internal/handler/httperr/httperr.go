package httperr

import (
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Message string `json:"message"`
}

// Response is the error envelope every handler emits. Detail carries
// field-level validation info when a request body fails binding.
type Response struct {
	Status int       `json:"-"`
	Error  errorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and records the underlying error
// on the gin context so the logging middleware can pick it up.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  errorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
