package logger

import (
	"testing"

	"mentecare-backend/config"

	"github.com/sirupsen/logrus"
)

func TestConfigureByEnvironment(t *testing.T) {
	log := logrus.New()

	Configure(log, config.AppConfig{Env: "development"})
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok || log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("development: formatter=%T level=%s", log.Formatter, log.GetLevel())
	}

	Configure(log, config.AppConfig{Env: "production"})
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok || log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("production: formatter=%T level=%s", log.Formatter, log.GetLevel())
	}
}
