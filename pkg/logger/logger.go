package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер движка синхронизации. Некорректный уровень не
// ломает запуск: движок поднимается с уровнем info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
