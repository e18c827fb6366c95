package leaderboard

import (
	"context"
	"strings"

	"github.com/trezcool/darasa/core"
)

// DefaultLimit applies when no limit is requested.
const DefaultLimit = 10

var (
	// errors
	ErrNotFound = core.NewNotFoundError("user is not ranked")
)

type (
	Repository interface {
		// QueryLeaderboard returns the first `limit` entries in rank order.
		QueryLeaderboard(ctx context.Context, limit int) (Board, error)
		GetEntryByUserID(ctx context.Context, userID int) (Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetLeaderboard(ctx context.Context, filter Filter) (Board, error) {
	limit := filter.Limit
	if limit < 0 {
		limit = 0
	}
	board, err := svc.repo.QueryLeaderboard(ctx, limit)
	if err != nil {
		return Board{}, err
	}
	if search := core.CleanString(filter.Search); search != "" {
		board.Users = Search(board.Users, search)
	}
	return board, nil
}

func (svc *Service) GetRank(ctx context.Context, userID int) (Entry, error) {
	return svc.repo.GetEntryByUserID(ctx, userID)
}

// Search keeps the entries whose username contains term, ignoring case.
func Search(entries []Entry, term string) []Entry {
	term = strings.ToLower(term)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Username), term) {
			out = append(out, e)
		}
	}
	return out
}
