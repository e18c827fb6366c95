package main

import (
	"log"
	"net/http"
	"os"

	"github.com/trezcool/darasa/core"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	// start CLI
	cli := commandLine{
		baseURL: "http://" + conf.Server.Host + conf.Server.Address,
		client:  &http.Client{Timeout: conf.API.Timeout},
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
