package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: code 1 on success,
// code 0 on failure. Exactly one of data/message is meaningful.
const (
	CodeSuccess = 1
	CodeFailure = 0
)

type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Code: CodeSuccess, Data: data})
}
func OKMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Code: CodeSuccess, Message: msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Code: CodeFailure, Message: msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Envelope{Code: CodeFailure, Message: msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, Envelope{Code: CodeFailure, Message: msg})
}

// ServerError hides the underlying failure from the client; callers
// are expected to log the real error before returning here.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Envelope{Code: CodeFailure, Message: "internal server error"})
}
