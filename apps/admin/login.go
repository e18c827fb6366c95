package main

import (
	"fmt"
	"net/http"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core/user"
)

func (cli *commandLine) login(email, pwd string) error {
	var resp echoapi.LoginResponse
	if err := cli.call(http.MethodPost, "/api/auth/login", user.Credentials{Email: email, Password: pwd}, &resp); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "logged in as %s (%s)\n%s\n", resp.User.Username, resp.User.Role, resp.Token)
	return nil
}
