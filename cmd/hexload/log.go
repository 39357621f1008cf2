package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

var levelChoices = strings.Join([]string{
	hclog.Off.String(),
	hclog.Trace.String(),
	hclog.Debug.String(),
	hclog.Info.String(),
	hclog.Warn.String(),
	hclog.Error.String(),
}, ", ")

func levelUsage() string {
	return fmt.Sprintf("Log level. Must be one of [%s]", levelChoices)
}

func parseLevel(s string) (hclog.Level, error) {
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return level, fmt.Errorf("Invalid log level choice: %s", s)
	}
	return level, nil
}

func newLogger(name string, level hclog.Level, ui cli.Ui) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Level:           level,
		Output:          uiLogWriter(ui),
		IncludeLocation: false,
	})
}

func uiLogWriter(ui cli.Ui) io.Writer {
	return hclog.NewLeveledWriter(
		uiWriter(ui.Output),
		map[hclog.Level]io.Writer{
			hclog.Info:  uiWriter(ui.Info),
			hclog.Error: uiWriter(ui.Error),
			hclog.Warn:  uiWriter(ui.Warn),
		},
	)
}

type uiWriter func(string)

func (write uiWriter) Write(p []byte) (n int, err error) {
	// trim the newline as the cli.Ui will add it on for us.
	write(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
