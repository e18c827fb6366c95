// Package logsvc provides the core.Logger implementations.
package logsvc

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
)

// Logger is a core.Logger that must be closed to flush pending entries.
type Logger interface {
	core.Logger
	Close() error
}

// New returns a Rollbar logger when a token is configured, and a zap console logger otherwise.
func New(conf *core.Config) (Logger, error) {
	if conf.RollbarToken != "" {
		std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
		return NewRollbarLogger(std, conf), nil
	}
	return NewZapLogger(conf)
}
