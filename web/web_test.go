package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/web/service"
)

func init() {
	logger.InitLogger(logging.ERROR)
}

// browser drives an engine like a cookie-keeping client would.
type browser struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]string
}

func newTestServer(t *testing.T) *browser {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "poseidon-test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)
	return &browser{t: t, engine: engine, cookies: make(map[string]string)}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	w := httptest.NewRecorder()
	b.engine.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c.Value
	}
	return w
}

func (b *browser) login(username, password string) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func TestLoginFlow(t *testing.T) {
	b := newTestServer(t)

	w := b.do(http.MethodGet, "/bidList/list", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	username, password := database.DefaultCredentials()

	w = b.login(username, "wrong")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong username or password")

	w = b.login(username, password)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/bidList/list", w.Header().Get("Location"))

	w = b.do(http.MethodGet, "/bidList/list", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bid List")

	w = b.do(http.MethodGet, "/app-logout", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	w = b.do(http.MethodGet, "/bidList/list", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestBidCreateThroughForm(t *testing.T) {
	b := newTestServer(t)
	b.login(database.DefaultCredentials())

	w := b.do(http.MethodPost, "/bidList/validate", url.Values{
		"account":     {"Test Account"},
		"type":        {"Test Type"},
		"bidQuantity": {"10.5"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/bidList/list", w.Header().Get("Location"))

	w = b.do(http.MethodGet, "/bidList/list", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Account")
	assert.Contains(t, w.Body.String(), "successfully created")
}

func TestBidValidationRerendersForm(t *testing.T) {
	b := newTestServer(t)
	b.login(database.DefaultCredentials())

	w := b.do(http.MethodPost, "/bidList/validate", url.Values{
		"account":     {""},
		"type":        {"Test Type"},
		"bidQuantity": {"abc"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Account is mandatory")
	assert.Contains(t, w.Body.String(), "Bid quantity must be a number")
}

func TestMissingRatingEditRedirectsWithFlash(t *testing.T) {
	b := newTestServer(t)
	b.login(database.DefaultCredentials())

	w := b.do(http.MethodGet, "/rating/update/999", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/rating/list", w.Header().Get("Location"))

	w = b.do(http.MethodGet, "/rating/list", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "could not find rating with id 999")
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	b := newTestServer(t)

	userService := service.UserService{}
	require.NoError(t, userService.CreateUser(&model.User{
		Username: "jdoe",
		Password: "Passw0rd!",
		Fullname: "John Doe",
		Role:     model.RoleUser,
	}))

	b.login("jdoe", "Passw0rd!")
	w := b.do(http.MethodGet, "/user/list", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := newTestServer(t)
	admin.login(database.DefaultCredentials())
	w = admin.do(http.MethodGet, "/user/list", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	b := newTestServer(t)

	w := b.do(http.MethodGet, "/definitely/not/here", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
