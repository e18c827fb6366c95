package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/exam"
)

type examApi struct {
	svc      *exam.Service
	validate *validator.Validate
}

func registerExamAPI(g *echo.Group, svc *exam.Service, validate *validator.Validate) {
	api := examApi{svc: svc, validate: validate}

	eg := g.Group("/exams")
	eg.GET("", api.query)
	eg.POST("", api.upload)
	eg.GET("/:id", api.retrieve)
}

// Handlers

func (api *examApi) query(ctx echo.Context) error {
	var filter exam.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to exam.Filter")
	}
	files, err := api.svc.GetFiles(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying exam files")
	}
	return ctx.JSON(http.StatusOK, files)
}

func (api *examApi) retrieve(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	f, err := api.svc.GetFileByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding exam file by ID")
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *examApi) upload(ctx echo.Context) error {
	var data exam.NewFile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFile")
	}
	data.Clean()
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.Upload(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "uploading exam file")
	}
	return ctx.JSON(http.StatusCreated, res)
}
