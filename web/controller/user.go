package controller

import (
	"errors"
	"fmt"
	"net/http"

	"poseidon/web/entity"
	"poseidon/web/service"
	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// UserController handles the account management vertical. Its routes are
// registered on the admin-only group.
type UserController struct {
	userService service.UserService
}

// NewUserController creates the controller and registers its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/user/list", a.list)
	g.GET("/user/add", a.addForm)
	g.POST("/user/validate", a.create)
	g.GET("/user/update/:id", a.editForm)
	g.POST("/user/update/:id", a.update)
	g.GET("/user/delete/:id", a.delete)
}

func (a *UserController) list(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "user/list.html", "Users", gin.H{"users": users})
}

func (a *UserController) addForm(c *gin.Context) {
	html(c, "user/add.html", "Add User", gin.H{"dto": &entity.UserDto{}})
}

func (a *UserController) create(c *gin.Context) {
	var dto entity.UserDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		dto.Password = ""
		html(c, "user/add.html", "Add User", gin.H{"dto": &dto, "errors": errs})
		return
	}

	user := a.userService.ToEntity(&dto)
	if err := a.userService.CreateUser(user); err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/user/list", session.FlashPrimary,
		fmt.Sprintf("User '%s' was successfully created", user.Username))
}

func (a *UserController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, "Invalid user id")
		return
	}

	user, err := a.userService.GetUser(id)
	if err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, err.Error())
		return
	}
	// ToDto blanks the password, it never travels back to a form.
	html(c, "user/update.html", "Update User", gin.H{"dto": a.userService.ToDto(user)})
}

func (a *UserController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, "Invalid user id")
		return
	}

	var dto entity.UserDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		dto.Password = ""
		html(c, "user/update.html", "Update User", gin.H{"dto": &dto, "errors": errs})
		return
	}

	user := a.userService.ToEntity(&dto)
	if err := a.userService.UpdateUser(id, user); err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/user/list", session.FlashPrimary,
		fmt.Sprintf("User '%s' was successfully updated", user.Username))
}

func (a *UserController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/user/list", session.FlashWarning, "Invalid user id")
		return
	}

	if err := a.userService.DeleteUser(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/user/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/user/list", session.FlashPrimary,
		fmt.Sprintf("User with id '%d' was successfully deleted", id))
}
