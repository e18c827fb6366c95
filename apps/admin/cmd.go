package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"syscall"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

// commandLine drives a running API server.
type commandLine struct {
	baseURL string
	client  *http.Client
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  status                - show the server status and data mode")
	fmt.Fprintln(cli.out, "  mode -mock true|false - switch between mock data and the live API")
	fmt.Fprintln(cli.out, "  login -email EMAIL    - log in and print a token. The password will be prompted next")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	modeCmd := flag.NewFlagSet("mode", flag.ContinueOnError)
	modeCmd.SetOutput(cli.out)
	modeMock := modeCmd.String("mock", "", "true to serve mock data, false to use the live API.")

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginCmd.SetOutput(cli.out)
	loginEmail := loginCmd.String("email", "", "The user's email. The password will be prompted next.")

	switch args[1] {
	case "status":
		return cli.status()
	case "mode":
		if err := modeCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		mock, err := strconv.ParseBool(*modeMock)
		if err != nil {
			modeCmd.Usage()
			return errHelp
		}
		return cli.setMode(mock)
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}

// call sends in as JSON and decodes the answer into out. Non-2xx answers become errors carrying the server's message.
func (cli *commandLine) call(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, cli.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cli.client.Do(req)
	if err != nil {
		return pkgerrors.Wrapf(err, "calling %s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			return errors.New(payload.Error)
		}
		return fmt.Errorf("server answered %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
