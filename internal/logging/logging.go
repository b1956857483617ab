package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a logger writing to stderr. Stdout carries the SQL
// script and must never receive log lines.
func SetupLogging(level string) (*logrus.Logger, error) {
	return newLogger(os.Stderr, level)
}

func newLogger(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}

	return &logger, nil
}
