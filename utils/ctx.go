package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername  = "username"
	CtxRequestID = "requestId"
)

// CurrentUsername is empty when the request carried no valid token.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(CtxUsername); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
