package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/leaderboard"
)

type leaderboardApi struct {
	svc *leaderboard.Service
}

func registerLeaderboardAPI(g *echo.Group, svc *leaderboard.Service) {
	api := leaderboardApi{svc: svc}

	lg := g.Group("/leaderboard")
	lg.GET("", api.query)
	lg.GET("/users/:id", api.rank)
}

// Handlers

func (api *leaderboardApi) query(ctx echo.Context) error {
	filter := leaderboard.DefaultFilter() // Bind only sets the params present
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to leaderboard.Filter")
	}
	board, err := api.svc.GetLeaderboard(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying leaderboard")
	}
	return ctx.JSON(http.StatusOK, board)
}

func (api *leaderboardApi) rank(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	entry, err := api.svc.GetRank(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding rank by user ID")
	}
	return ctx.JSON(http.StatusOK, entry)
}
