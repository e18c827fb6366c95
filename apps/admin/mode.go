package main

import (
	"fmt"
	"net/http"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
)

func (cli *commandLine) status() error {
	var resp echoapi.StatusResponse
	if err := cli.call(http.MethodGet, "/api/status", nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "status: %s\nmode: %s\n", resp.Status, resp.Mode)
	if resp.Banner != "" {
		fmt.Fprintln(cli.out, resp.Banner)
	}
	return nil
}

func (cli *commandLine) setMode(mock bool) error {
	var resp echoapi.ModeResponse
	if err := cli.call(http.MethodPost, "/api/admin/mode", echoapi.ModeRequest{Mock: &mock}, &resp); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "mode: %s\n", resp.Mode)
	return nil
}
