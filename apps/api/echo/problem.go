package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/problem"
)

type problemApi struct {
	svc      *problem.Service
	validate *validator.Validate
}

func registerProblemAPI(g *echo.Group, svc *problem.Service, validate *validator.Validate) {
	api := problemApi{svc: svc, validate: validate}

	pg := g.Group("/problems")
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.GET("/history", api.history)
	pg.GET("/:id", api.retrieve)
	pg.POST("/:id/submit", api.submit)
}

// Handlers

func (api *problemApi) query(ctx echo.Context) error {
	var filter problem.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to problem.Filter")
	}
	probs, err := api.svc.GetProblems(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying problems")
	}
	return ctx.JSON(http.StatusOK, probs)
}

func (api *problemApi) retrieve(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	p, err := api.svc.GetProblem(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding problem by ID")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *problemApi) submit(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	var data problem.Answer
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Answer")
	}
	// an empty answer is graded, not rejected

	res, err := api.svc.SubmitAnswer(ctx.Request().Context(), id, data.Answer)
	if err != nil {
		return errors.Wrap(err, "submitting answer")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *problemApi) history(ctx echo.Context) error {
	hist, err := api.svc.GetHistory(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying history")
	}
	return ctx.JSON(http.StatusOK, hist)
}

func (api *problemApi) create(ctx echo.Context) error {
	var data problem.NewProblem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProblem")
	}
	data.Clean()
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating problem")
	}
	return ctx.JSON(http.StatusCreated, res)
}
