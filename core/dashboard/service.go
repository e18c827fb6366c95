// Package dashboard assembles the home page summary from the other domains.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
)

const (
	upcomingWindow = 7 * 24 * time.Hour
	problemsLimit  = 5
	topUsersLimit  = 5
)

type Summary struct {
	UpcomingEvents []calendar.Event    `json:"upcomingEvents"`
	Problems       []problem.Problem   `json:"problems"`
	TopUsers       []leaderboard.Entry `json:"topUsers"`
}

type Service struct {
	events   *calendar.Service
	problems *problem.Service
	board    *leaderboard.Service
	now      func() time.Time
}

func NewService(events *calendar.Service, problems *problem.Service, board *leaderboard.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{events: events, problems: problems, board: board, now: now}
}

// Summary runs the three fetches concurrently. The first failure cancels the others.
func (svc *Service) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	start := svc.now().UTC()
	end := start.Add(upcomingWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events, err := svc.events.GetEvents(gctx, calendar.Range{Start: start, End: end})
		if err != nil {
			return err
		}
		sum.UpcomingEvents = upcoming(events, start, end)
		return nil
	})
	g.Go(func() error {
		problems, err := svc.problems.GetProblems(gctx, problem.Filter{Limit: problemsLimit})
		if err != nil {
			return err
		}
		sum.Problems = problems
		return nil
	})
	g.Go(func() error {
		board, err := svc.board.GetLeaderboard(gctx, leaderboard.Filter{Limit: topUsersLimit})
		if err != nil {
			return err
		}
		sum.TopUsers = board.Users
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// upcoming keeps events starting in [start, end). The data source may ignore the requested range.
func upcoming(events []calendar.Event, start, end time.Time) []calendar.Event {
	out := make([]calendar.Event, 0, len(events))
	for _, evt := range events {
		if !evt.StartTime.Before(start) && evt.StartTime.Before(end) {
			out = append(out, evt)
		}
	}
	return out
}
