package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-2048/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the session logger. Logs go to a size-rotated file so
// they never draw over the game screen; with no file configured they go
// to stderr.
func newLogger(lc config.LogConfig) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if lc.Level != "" {
		lvl, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if lc.File != "" {
		lj := &lumberjack.Logger{
			Filename:   config.ExpandHome(lc.File),
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAgeDays,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "t2048",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
