// Package database selects, per call, whether data comes from fixtures or from the upstream API.
package database

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
	"github.com/trezcool/darasa/storage/fixtures"
	"github.com/trezcool/darasa/storage/remote"
)

// Repositories bundles one mode-switching repository per domain.
type Repositories struct {
	Users          user.Repository
	Events         calendar.Repository
	Problems       problem.Repository
	Forum          forum.Repository
	Leaderboard    leaderboard.Repository
	Visualizations visualization.Repository
	Exams          exam.Repository
}

// Open builds the fixture tables (timestamps relative to now) and the live API client.
// Every repository call checks mode, so toggling it affects the next call.
func Open(conf *core.Config, mode *core.Mode, logger core.Logger, now time.Time) (*Repositories, error) {
	db, err := fixtures.Open(now, conf.Mock.Latency)
	if err != nil {
		return nil, errors.Wrap(err, "opening fixtures")
	}
	client := remote.NewClient(conf.API, logger)

	return &Repositories{
		Users:          &userRepository{switcher[user.Repository]{mode, fixtures.NewUserRepository(db), remote.NewUserRepository(client)}},
		Events:         &eventRepository{switcher[calendar.Repository]{mode, fixtures.NewEventRepository(db), remote.NewEventRepository(client)}},
		Problems:       &problemRepository{switcher[problem.Repository]{mode, fixtures.NewProblemRepository(db), remote.NewProblemRepository(client)}},
		Forum:          &forumRepository{switcher[forum.Repository]{mode, fixtures.NewForumRepository(db), remote.NewForumRepository(client)}},
		Leaderboard:    &leaderboardRepository{switcher[leaderboard.Repository]{mode, fixtures.NewLeaderboardRepository(db), remote.NewLeaderboardRepository(client)}},
		Visualizations: &visualizationRepository{switcher[visualization.Repository]{mode, fixtures.NewVisualizationRepository(db), remote.NewVisualizationRepository(client)}},
		Exams:          &examRepository{switcher[exam.Repository]{mode, fixtures.NewExamRepository(db), remote.NewExamRepository(client)}},
	}, nil
}

type switcher[R any] struct {
	mode *core.Mode
	mock R
	live R
}

func (s switcher[R]) repo() R {
	if s.mode.IsMock() {
		return s.mock
	}
	return s.live
}
