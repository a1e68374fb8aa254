// Package middleware provides the gin middleware of the panel: session
// checks, role checks and request tagging.
package middleware

import (
	"net/http"

	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin redirects unauthenticated requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.Redirect(http.StatusTemporaryRedirect, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
