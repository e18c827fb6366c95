package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trezcool/darasa/core/leaderboard"
)

type leaderboardRepository struct {
	c *Client
}

var _ leaderboard.Repository = (*leaderboardRepository)(nil) // interface compliance check

func NewLeaderboardRepository(c *Client) leaderboard.Repository {
	return &leaderboardRepository{c: c}
}

func (repo *leaderboardRepository) QueryLeaderboard(ctx context.Context, limit int) (leaderboard.Board, error) {
	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))
	board := leaderboard.Board{Users: make([]leaderboard.Entry, 0)}
	err := repo.c.get(ctx, withQuery("/leaderboard", q), &board, nil)
	return board, err
}

func (repo *leaderboardRepository) GetEntryByUserID(ctx context.Context, userID int) (leaderboard.Entry, error) {
	var entry leaderboard.Entry
	err := repo.c.get(ctx, "/leaderboard/users/"+strconv.Itoa(userID), &entry, leaderboard.ErrNotFound)
	return entry, err
}
