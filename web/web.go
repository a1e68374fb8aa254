// Package web provides the panel's web server: routing, embedded templates,
// session handling and scheduled maintenance jobs.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strconv"

	"poseidon/config"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/util/common"
	"poseidon/util/random"
	"poseidon/web/controller"
	"poseidon/web/job"
	"poseidon/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed html/*
var htmlFS embed.FS

// Server is the panel web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index      *controller.IndexController
	bid        *controller.BidController
	curvePoint *controller.CurvePointController
	rating     *controller.RatingController
	ruleName   *controller.RuleNameController
	trade      *controller.TradeController
	user       *controller.UserController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// getHtmlFiles walks the local `web/html` directory and returns the template
// file paths. Used only in debug mode.
func (s *Server) getHtmlFiles() ([]string, error) {
	files := make([]string, 0)
	dir, _ := os.Getwd()
	err := fs.WalkDir(os.DirFS(dir), "web/html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// getHtmlTemplate parses the embedded HTML templates.
func (s *Server) getHtmlTemplate(funcMap template.FuncMap) (*template.Template, error) {
	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(htmlFS, "html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			newT, err := t.ParseFS(htmlFS, path+"/*.html")
			if err != nil {
				// ignore folders without matches
				return nil
			}
			t = newT
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// initRouter initializes gin, registers middleware, templates and
// controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetSessionSecret()
	if secret == "" {
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions("poseidon", store))
	engine.Use(middleware.RequestId())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	if config.IsDebug() {
		files, err := s.getHtmlFiles()
		if err != nil {
			return nil, err
		}
		engine.LoadHTMLFiles(files...)
	} else {
		tpl, err := s.getHtmlTemplate(template.FuncMap{})
		if err != nil {
			return nil, err
		}
		engine.SetHTMLTemplate(tpl)
	}

	// Login page and session routes, reachable without a session.
	g := engine.Group("/")
	s.index = controller.NewIndexController(g)

	// Entity verticals require a session.
	auth := engine.Group("/", middleware.RequireLogin())
	s.bid = controller.NewBidController(auth)
	s.curvePoint = controller.NewCurvePointController(auth)
	s.rating = controller.NewRatingController(auth)
	s.ruleName = controller.NewRuleNameController(auth)
	s.trade = controller.NewTradeController(auth)

	// Account management is restricted to administrators.
	admin := engine.Group("/", middleware.RequireLogin(), middleware.RequireRole(model.RoleAdmin))
	s.user = controller.NewUserController(admin)

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title":   "Error",
			"cur_ver": config.GetVersion(),
			"status":  http.StatusNotFound,
			"text":    http.StatusText(http.StatusNotFound),
		})
	})

	return engine, nil
}

// startTask schedules the maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewDbCheckpointJob())
	s.cron.AddJob("@daily", job.NewClearLogsJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
