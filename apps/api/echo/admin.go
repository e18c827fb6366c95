package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

const demoBanner = "Demo Mode Active"

type (
	adminApi struct {
		mode   *core.Mode
		logger core.Logger
	}

	ModeRequest struct {
		Mock *bool `json:"mock"`
	}

	ModeResponse struct {
		Mock bool   `json:"mock"`
		Mode string `json:"mode"`
	}

	StatusResponse struct {
		Status string `json:"status"`
		ModeResponse
		Banner string `json:"banner,omitempty"`
	}
)

func registerAdminAPI(g *echo.Group, mode *core.Mode, logger core.Logger) {
	api := adminApi{mode: mode, logger: logger}

	g.GET("/status", api.status)
	ag := g.Group("/admin")
	ag.GET("/mode", api.getMode)
	ag.POST("/mode", api.setMode)
}

func (api *adminApi) current() ModeResponse {
	return ModeResponse{Mock: api.mode.IsMock(), Mode: api.mode.String()}
}

// Handlers

func (api *adminApi) status(ctx echo.Context) error {
	resp := StatusResponse{Status: "ok", ModeResponse: api.current()}
	if resp.Mock {
		resp.Banner = demoBanner
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *adminApi) getMode(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.current())
}

func (api *adminApi) setMode(ctx echo.Context) error {
	var data ModeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ModeRequest")
	}
	if data.Mock == nil {
		return core.NewValidationError(nil, core.FieldError{Field: "mock", Error: "this field is required"})
	}

	state := "disabled"
	if api.mode.Toggle(*data.Mock) {
		state = "enabled"
	}
	api.logger.Info(fmt.Sprintf("Mock data mode %s", state))
	return ctx.JSON(http.StatusOK, api.current())
}
