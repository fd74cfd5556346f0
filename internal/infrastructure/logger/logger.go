package logger

import (
	"os"

	"mentecare-backend/config"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger for the environment and
// returns it: human-readable text in development, JSON everywhere else.
func Setup(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	Configure(log, cfg)
	return log
}

func Configure(log *logrus.Logger, cfg config.AppConfig) {
	log.SetOutput(os.Stdout)
	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
}
