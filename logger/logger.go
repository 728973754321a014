package logger

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"pongrelay/util"
)

// New builds the process logger. When LOG_FILE is set, output rotates through
// lumberjack; otherwise it goes to stderr.
func New(config *util.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if config.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	}

	level, err := logrus.ParseLevel(config.LogLevel)

	if err != nil {
		level = logrus.InfoLevel
	}

	log.SetLevel(level)

	return log
}
