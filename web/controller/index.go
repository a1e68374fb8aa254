package controller

import (
	"net/http"

	"poseidon/logger"
	"poseidon/web/service"
	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// Sessions expire after an hour of inactivity.
const sessionMaxAge = 3600

// LoginForm represents the login request.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// IndexController handles the login page, session establishment and logout.
type IndexController struct {
	userService service.UserService
}

// NewIndexController creates the controller and registers its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.POST("/login", a.login)
	g.GET("/app-logout", a.logout)
}

// index shows the login page, or sends logged-in users to the home page.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/bidList/list")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login authenticates the posted credentials and creates the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		html(c, "login.html", "Login", gin.H{"error": "Username and password are required"})
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		html(c, "login.html", "Login", gin.H{"error": "Wrong username or password"})
		return
	}

	if err := session.SetMaxAge(c, sessionMaxAge); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		showError(c, http.StatusInternalServerError)
		return
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/bidList/list")
}

// logout clears the session and returns to the login page.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
