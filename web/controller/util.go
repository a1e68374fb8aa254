// Package controller provides the HTTP request handlers of the panel, one
// controller per record type plus the login controller.
package controller

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"poseidon/config"
	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the shared context: title, version, current
// user and any pending flash messages.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	data["user"] = session.GetLoginUser(c)
	if _, ok := data["flashes"]; !ok {
		data["flashes"] = session.PopFlashes(c)
	}
	c.HTML(http.StatusOK, name, data)
}

// redirectWithFlash queues a one-time message and redirects. Used after
// every mutation, successful or not.
func redirectWithFlash(c *gin.Context, location, flashType, message string) {
	// Best effort: the redirect still happens if the notice cannot be saved.
	_ = session.AddFlash(c, flashType, message)
	c.Redirect(http.StatusFound, location)
}

// pathId parses the :id path parameter.
func pathId(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// showError renders the catch-all error page with the given status code.
func showError(c *gin.Context, status int) {
	c.HTML(status, "error.html", gin.H{
		"title":   "Error",
		"cur_ver": config.GetVersion(),
		"status":  status,
		"text":    http.StatusText(status),
	})
}
