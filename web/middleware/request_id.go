package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdKey = "request_id"

// RequestId assigns each request an id, echoed back in the X-Request-Id
// header and available to handlers for log correlation.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIdKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
