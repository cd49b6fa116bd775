package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with res.
func OK(c *gin.Context, res Result) {
	c.JSON(http.StatusOK, res)
}

// Accepted sends 202 JSON with res.
func Accepted(c *gin.Context, res Result) {
	c.JSON(http.StatusAccepted, res)
}

// Error sends status with the error kind and an optional detail message.
func Error(c *gin.Context, status int, kind string, err error) {
	body := ErrorBody{Error: kind}
	if err != nil {
		body.Message = err.Error()
	}
	c.JSON(status, body)
}

// BadRequest sends 400 with the error as message.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, "bad request", err)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "unauthorized", nil)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "forbidden", nil)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
}

// ServiceUnavailable sends 503 with the error as message.
func ServiceUnavailable(c *gin.Context, err error) {
	Error(c, http.StatusServiceUnavailable, "service unavailable", err)
}

// InternalError sends 500 internal server error. The cause is not exposed.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "internal server error", nil)
}
