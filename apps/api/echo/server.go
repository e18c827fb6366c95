package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/dashboard"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Mode       *core.Mode
		Validate   *validator.Validate
		Translator ut.Translator

		UserSvc          *user.Service
		EventSvc         *calendar.Service
		ProblemSvc       *problem.Service
		ForumSvc         *forum.Service
		LeaderboardSvc   *leaderboard.Service
		VisualizationSvc *visualization.Service
		ExamSvc          *exam.Service
		DashboardSvc     *dashboard.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		auth     *tokenAuth
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		auth:     newTokenAuth(deps.Conf),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	if conf.Debug {
		s.app.Logger.SetLevel(log.DEBUG)
	} else {
		s.app.Logger.SetLevel(log.INFO)
	}

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator)

	s.app.GET("/", s.home)

	g := s.app.Group("/api")
	registerAdminAPI(g, s.deps.Mode, s.deps.Logger)
	registerUserAPI(g, s.auth, s.deps.UserSvc, s.deps.Validate)
	registerEventAPI(g, s.deps.EventSvc, s.deps.Validate)
	registerProblemAPI(g, s.deps.ProblemSvc, s.deps.Validate)
	registerForumAPI(g, s.deps.ForumSvc, s.deps.Validate)
	registerLeaderboardAPI(g, s.deps.LeaderboardSvc)
	registerVisualizationAPI(g, s.deps.VisualizationSvc)
	registerExamAPI(g, s.deps.ExamSvc, s.deps.Validate)
	registerDashboardAPI(g, s.deps.DashboardSvc)
}

// Start listens until Shutdown is called. Listen failures are sent to Errors.
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// GenerateToken signs a JWT carrying usr.
func (s *Server) GenerateToken(usr user.User) (string, error) {
	return s.auth.generateToken(usr)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API!")
}
