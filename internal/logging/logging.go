package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      os.Stdout,
		Hooks:    make(logrus.LevelHooks),
		Level:    logrus.InfoLevel,
		ExitFunc: os.Exit,
	}

	return &logger
}

// SetupLoggingWithLevel is SetupLogging with a level name such as "debug".
func SetupLoggingWithLevel(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := SetupLogging()
	logger.SetLevel(parsed)
	return logger, nil
}
