// Package fixtures serves the dashboard's demo data set from memory.
package fixtures

import (
	"context"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
)

// DB holds the fixture tables. Tables are never written after Open, so reads need no locking.
type DB struct {
	latency time.Duration

	users          []user.User
	events         []calendar.Event
	problems       []problem.Problem
	attempts       []problem.Attempt
	posts          []forum.Post
	comments       []forum.Comment
	leaderboard    []leaderboard.Entry
	visualizations []visualization.Visualization
	examFiles      []exam.File
}

// Open builds the fixture tables. Relative timestamps are computed from now.
func Open(now time.Time, latency time.Duration) (*DB, error) {
	now = now.UTC()
	db := &DB{
		latency:        latency,
		users:          seedUsers(),
		events:         seedEvents(now),
		problems:       seedProblems(),
		attempts:       seedAttempts(now),
		posts:          seedPosts(now),
		comments:       seedComments(now),
		leaderboard:    seedLeaderboard(),
		visualizations: seedVisualizations(),
		examFiles:      seedExamFiles(),
	}
	return db, nil
}

// wait simulates network latency before answering.
func (db *DB) wait(ctx context.Context) error {
	return core.SimulateDelay(ctx, db.latency)
}

// first returns at most n leading items of s, copied.
func first[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s[:n])
	return out
}
