package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-attendance-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Organization{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Organization")
	}
	if err := DB.AutoMigrate(&dbmodels.OrgSetting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OrgSetting")
	}
	if err := DB.AutoMigrate(&dbmodels.Holiday{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Holiday")
	}
	if err := DB.AutoMigrate(&dbmodels.OrgUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OrgUser")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LeaveRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.AttendanceRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AttendanceRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.SweepRun{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SweepRun")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
