package leaderboard

type Entry struct {
	Rank     int    `json:"rank"`
	ID       int    `json:"id"`
	Username string `json:"username"`
	Coins    int    `json:"coins"`
}

type Board struct {
	Users []Entry `json:"users"`
}

// Filter selects the board. Limit is the board size, so zero yields an empty board.
type Filter struct {
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// DefaultFilter is the filter of a request that sets no limit.
func DefaultFilter() Filter {
	return Filter{Limit: DefaultLimit}
}
