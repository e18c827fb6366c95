package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core/leaderboard"
)

type leaderboardRepository struct {
	db *DB
}

var _ leaderboard.Repository = (*leaderboardRepository)(nil) // interface compliance check

func NewLeaderboardRepository(db *DB) leaderboard.Repository {
	return &leaderboardRepository{db: db}
}

func (repo *leaderboardRepository) QueryLeaderboard(ctx context.Context, limit int) (leaderboard.Board, error) {
	if err := repo.db.wait(ctx); err != nil {
		return leaderboard.Board{}, err
	}
	return leaderboard.Board{Users: first(repo.db.leaderboard, limit)}, nil
}

func (repo *leaderboardRepository) GetEntryByUserID(ctx context.Context, userID int) (leaderboard.Entry, error) {
	if err := repo.db.wait(ctx); err != nil {
		return leaderboard.Entry{}, err
	}
	for _, e := range repo.db.leaderboard {
		if e.ID == userID {
			return e, nil
		}
	}
	return leaderboard.Entry{}, leaderboard.ErrNotFound
}
