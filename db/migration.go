package db

import (
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Client")
	}
	if err := DB.AutoMigrate(&dbmodels.Assessment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Assessment")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AssessmentResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentAnalysis{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AssessmentAnalysis")
	}
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Document")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
