package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/calendar"
)

type eventApi struct {
	svc      *calendar.Service
	validate *validator.Validate
}

func registerEventAPI(g *echo.Group, svc *calendar.Service, validate *validator.Validate) {
	api := eventApi{svc: svc, validate: validate}

	eg := g.Group("/events")
	eg.GET("", api.query)
	eg.GET("/by-date", api.queryByDate)
	eg.POST("", api.create)
}

func bindRange(ctx echo.Context) (calendar.Range, error) {
	var (
		rng calendar.Range
		err error
	)
	if rng.Start, err = timeParam(ctx, "start"); err != nil {
		return rng, err
	}
	rng.End, err = timeParam(ctx, "end")
	return rng, err
}

// Handlers

func (api *eventApi) query(ctx echo.Context) error {
	rng, err := bindRange(ctx)
	if err != nil {
		return err
	}
	events, err := api.svc.GetEvents(ctx.Request().Context(), rng)
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *eventApi) queryByDate(ctx echo.Context) error {
	rng, err := bindRange(ctx)
	if err != nil {
		return err
	}
	days, err := api.svc.GetEventsByDate(ctx.Request().Context(), rng)
	if err != nil {
		return errors.Wrap(err, "querying events by date")
	}
	return ctx.JSON(http.StatusOK, days)
}

func (api *eventApi) create(ctx echo.Context) error {
	var data calendar.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	data.Clean()
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, res)
}
