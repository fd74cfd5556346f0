package main

import (
	"context"
	"errors"
	"os"
	"time"

	"mentecare-backend/config"
	"mentecare-backend/internal/infrastructure/database"
	"mentecare-backend/internal/infrastructure/logger"
	"mentecare-backend/internal/repository"
	"mentecare-backend/internal/service"
	"mentecare-backend/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	professionalID := pflag.Int64("professional-id", 0, "id of the professional to update")
	verified := pflag.Bool("verified", true, "verification status to set")
	pflag.Parse()

	if *professionalID <= 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.Setup(cfg.App)

	db, err := database.NewPostgresConnection(cfg.DB, false)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, repository.NewProfessionalRepository(), auditService)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	professional, err := professionalUsecase.SetVerified(ctx, *professionalID, *verified)
	if errors.Is(err, usecase.ErrProfessionalNotFound) {
		log.Fatalf("Professional %d not found", *professionalID)
	}
	if err != nil {
		log.Fatalf("Failed to update verification: %v", err)
	}

	log.WithFields(logrus.Fields{
		"professional_id": professional.ID,
		"is_verified":     professional.IsVerified,
		"is_available":    professional.IsAvailable,
	}).Info("verification updated")
}
