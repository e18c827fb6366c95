package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	entries []Entry
	limit   int
}

func (r *stubRepo) QueryLeaderboard(_ context.Context, limit int) (Board, error) {
	r.limit = limit
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return Board{Users: append([]Entry(nil), r.entries[:limit]...)}, nil
}

func (r *stubRepo) GetEntryByUserID(_ context.Context, userID int) (Entry, error) {
	for _, e := range r.entries {
		if e.ID == userID {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func TestService_GetLeaderboard(t *testing.T) {
	repo := &stubRepo{entries: []Entry{
		{Rank: 1, ID: 2, Username: "teacher1"},
		{Rank: 2, ID: 1, Username: "student1"},
		{Rank: 3, ID: 3, Username: "Student2"},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		board, err := svc.GetLeaderboard(ctx, DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, DefaultLimit, repo.limit)
		assert.Len(t, board.Users, 3)
	})

	t.Run("zero limit", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			board, err := svc.GetLeaderboard(ctx, Filter{Limit: limit})
			require.NoError(t, err)
			assert.Equal(t, 0, repo.limit)
			assert.Empty(t, board.Users)
		}
	})

	t.Run("limit", func(t *testing.T) {
		board, err := svc.GetLeaderboard(ctx, Filter{Limit: 2})
		require.NoError(t, err)
		if assert.Len(t, board.Users, 2) {
			assert.Equal(t, 1, board.Users[0].Rank)
			assert.Equal(t, 2, board.Users[1].Rank)
		}
	})

	t.Run("search ignores case", func(t *testing.T) {
		board, err := svc.GetLeaderboard(ctx, Filter{Limit: DefaultLimit, Search: "STUDENT"})
		require.NoError(t, err)
		if assert.Len(t, board.Users, 2) {
			assert.Equal(t, "student1", board.Users[0].Username)
			assert.Equal(t, "Student2", board.Users[1].Username)
		}
	})

	t.Run("search without match", func(t *testing.T) {
		board, err := svc.GetLeaderboard(ctx, Filter{Limit: DefaultLimit, Search: "nobody"})
		require.NoError(t, err)
		assert.Empty(t, board.Users)
	})
}
