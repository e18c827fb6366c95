package logsvc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/trezcool/darasa/core"
)

// ZapLogger writes structured console logs.
type ZapLogger struct {
	zl *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger picks a production encoder for PROD and a development one elsewhere.
// Test mode logs nowhere.
func NewZapLogger(conf *core.Config) (*ZapLogger, error) {
	var (
		zl  *zap.Logger
		err error
	)
	switch {
	case conf.TestMode:
		zl = zap.NewNop()
	case conf.Env == "PROD":
		zl, err = zap.NewProduction()
	default:
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{zl: zl.With(zap.String("app", conf.AppName), zap.String("build", conf.Build))}, nil
}

// NewZap wraps an existing zap logger.
func NewZap(zl *zap.Logger) *ZapLogger {
	return &ZapLogger{zl: zl}
}

// Close flushes buffered entries.
func (l ZapLogger) Close() error {
	return l.zl.Sync()
}

func (l ZapLogger) Debug(msg string, args ...interface{}) { l.zl.Debug(msg, fields(args)...) }
func (l ZapLogger) Info(msg string, args ...interface{})  { l.zl.Info(msg, fields(args)...) }
func (l ZapLogger) Warn(msg string, args ...interface{})  { l.zl.Warn(msg, fields(args)...) }
func (l ZapLogger) Error(msg string, args ...interface{}) { l.zl.Error(msg, fields(args)...) }
func (l ZapLogger) Fatal(msg string, args ...interface{}) { l.zl.Fatal(msg, fields(args)...) }

// fields maps Logger args onto zap fields.
func fields(args []interface{}) []zap.Field {
	usr, rest, ok := splitUser(args)
	flds := make([]zap.Field, 0, len(rest)+3)
	if ok {
		flds = append(flds, zap.Int("userID", usr.ID), zap.String("username", usr.Username))
	}
	for i, arg := range rest {
		switch v := arg.(type) {
		case error:
			flds = append(flds, zap.Error(v))
		case map[string]interface{}:
			for k, val := range v {
				flds = append(flds, zap.Any(k, val))
			}
		case string:
			flds = append(flds, zap.String(fmt.Sprintf("arg%d", i), v))
		default:
			flds = append(flds, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return flds
}
