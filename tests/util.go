package testutil

import (
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

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

// Now is the frozen clock used to build fixtures in tests.
var Now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// Config returns an app config for tests: no latency, upstream API at apiURL.
func Config(apiURL string) *core.Config {
	return &core.Config{
		AppName:   "Darasa",
		Build:     "test",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			Address:            ":0",
			ShutdownTimeout:    time.Second,
			JWTExpirationDelta: time.Hour,
		},
		API:  core.APIConfig{BaseURL: apiURL, Token: "test-token", Timeout: time.Second},
		Mock: core.MockConfig{Enabled: true},
	}
}

func NopLogger() core.Logger {
	return logsvc.NewZap(zap.NewNop())
}

// NewValidator returns a validator wired to the english translator it reports with.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	return validate, translator
}

// OpenRepos opens the mode-switching repositories with fixtures built at Now.
func OpenRepos(conf *core.Config, mode *core.Mode) *database.Repositories {
	repos, err := database.Open(conf, mode, NopLogger(), Now)
	if err != nil {
		panic(fmt.Sprintf("database.Open() failed: %v", err))
	}
	return repos
}

// NewServer wires the API server over fixtures opened at Now.
func NewServer(conf *core.Config, mode *core.Mode) *echoapi.Server {
	repos := OpenRepos(conf, mode)
	eventSvc := calendar.NewService(repos.Events)
	problemSvc := problem.NewService(repos.Problems)
	boardSvc := leaderboard.NewService(repos.Leaderboard)
	validate, translator := NewValidator()

	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:             conf,
		Logger:           NopLogger(),
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
		DashboardSvc:     dashboard.NewService(eventSvc, problemSvc, boardSvc, func() time.Time { return Now }),
	})
}
