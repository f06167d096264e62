package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error payload every endpoint renders. Internal error text never
// reaches the client; it is logged and replaced with a generic message.
type Err struct {
	StatusCode int    `json:"status_code"`
	ErrorMsg   string `json:"error_msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.StatusCode, e.ErrorMsg)
}

func NewErr(statusCode int, msg string) *Err {
	return &Err{
		StatusCode: statusCode,
		ErrorMsg:   msg,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error())
}

func ErrNotFound(resource, key string, value any) *Err {
	return NewErr(http.StatusNotFound, fmt.Sprintf("%v not found by %v (%v)", resource, key, value))
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err.Error())
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "internal server error")
}

// ErrUpstreamUnavailable covers failed store or chain reads that the caller
// may safely retry.
func ErrUpstreamUnavailable(err error) *Err {
	zap.L().Error("upstream unavailable", zap.Error(err))

	return NewErr(http.StatusBadGateway, "upstream unavailable")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
