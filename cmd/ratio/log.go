package main

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/govalues/ratio/internal/config"
)

// newLogger returns a logfmt logger that drops records below lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case config.LevelDebug:
		opt = level.AllowDebug()
	case config.LevelWarn:
		opt = level.AllowWarn()
	case config.LevelError:
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
