// Package session wraps gin-contrib/sessions with helpers for the login user
// and one-time flash messages.
package session

import (
	"encoding/gob"

	"poseidon/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// Bootstrap alert classes used as flash message types.
const (
	FlashPrimary = "alert-primary"
	FlashWarning = "alert-warning"
)

// Flash is a one-time notification shown on the next rendered page after a
// redirect.
type Flash struct {
	Type    string
	Message string
}

func init() {
	gob.Register(model.User{})
	gob.Register(Flash{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie("poseidon", "", -1, "/", "", false, true)
	return nil
}

// AddFlash queues a flash message for the next rendered page.
func AddFlash(c *gin.Context, flashType, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Type: flashType, Message: message})
	return s.Save()
}

// PopFlashes returns queued flash messages and clears them.
func PopFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() consumes the queue, persist the removal.
	_ = s.Save()

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
