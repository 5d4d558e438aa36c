package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// BootstrapLogger replaces Log with the service logger. An unknown level falls back to debug.
func BootstrapLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
			TimestampFormat:  "",
		},
		ReportCaller: true,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}

	if err != nil && level != "" {
		Log.Warnf("unknown log level '%s', using debug", level)
	}
}
