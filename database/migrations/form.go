package migrations

import (
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateFormsTables form ağacının tüm tablolarını sırayla oluşturur:
// forms -> form_fields -> form_responses -> form_answers.
func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating forms, form_fields, form_responses & form_answers tables...")
	err := db.AutoMigrate(
		&models.Form{},
		&models.FormField{},
		&models.FormResponse{},
		&models.FormAnswer{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate form tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Form tables migrated successfully")
	return nil
}
