package middleware

import (
	"net/http"

	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose session user does not carry one of the
// given roles. Must run behind RequireLogin.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[user.Role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
