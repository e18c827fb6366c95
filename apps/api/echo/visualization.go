package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/visualization"
)

type visualizationApi struct {
	svc *visualization.Service
}

func registerVisualizationAPI(g *echo.Group, svc *visualization.Service) {
	api := visualizationApi{svc: svc}

	vg := g.Group("/visualizations")
	vg.GET("", api.query)
	vg.GET("/:id", api.retrieve)
}

// Handlers

func (api *visualizationApi) query(ctx echo.Context) error {
	var filter visualization.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to visualization.Filter")
	}
	vizs, err := api.svc.GetVisualizations(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying visualizations")
	}
	return ctx.JSON(http.StatusOK, vizs)
}

func (api *visualizationApi) retrieve(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	viz, err := api.svc.GetVisualization(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding visualization by ID")
	}
	return ctx.JSON(http.StatusOK, viz)
}
