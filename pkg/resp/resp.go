package resp

import (
	"log/slog"
	"net/http"

	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

// ServerError hides the cause from the client; it is logged with the request id.
func ServerError(c *gin.Context, err error) {
	slog.Default().Error("request failed",
		"requestId", utils.RequestID(c),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}
