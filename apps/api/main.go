package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/dashboard"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger, err := logsvc.New(conf)
	if err != nil {
		panic(fmt.Sprintf("setting up logger: %v", err))
	}
	defer func() { _ = logger.Close() }()

	// set up data sources
	mode := core.NewMode(conf.Mock.Enabled)
	repos, err := database.Open(conf, mode, logger, core.NowFunc())
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up data sources: %v", err), err)
	}

	// set up services
	eventSvc := calendar.NewService(repos.Events)
	problemSvc := problem.NewService(repos.Problems)
	boardSvc := leaderboard.NewService(repos.Leaderboard)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q, mode %s", conf.Build, mode))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.Publish("mode", expvar.Func(func() interface{} { return mode.String() }))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:             conf,
			Logger:           logger,
			Mode:             mode,
			Validate:         validate,
			Translator:       translator,
			UserSvc:          user.NewService(repos.Users),
			EventSvc:         eventSvc,
			ProblemSvc:       problemSvc,
			ForumSvc:         forum.NewService(repos.Forum),
			LeaderboardSvc:   boardSvc,
			VisualizationSvc: visualization.NewService(repos.Visualizations),
			ExamSvc:          exam.NewService(repos.Exams),
			DashboardSvc:     dashboard.NewService(eventSvc, problemSvc, boardSvc, core.NowFunc),
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
