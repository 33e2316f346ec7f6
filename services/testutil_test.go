package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB her test için izole bir in-memory sqlite veritabanı açar ve
// global DB handle'ını ona yönlendirir. TranslateError açık: unique ihlalleri
// production'daki gibi gorm.ErrDuplicatedKey olarak döner.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:formflow_test_%d?mode=memory&cache=shared&_foreign_keys=1",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory DB tek bağlantıda yaşamalı
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.FormField{},
		&models.FormResponse{},
		&models.FormAnswer{},
	))

	configs.SetDB(db)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestForm(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Form {
	t.Helper()
	form := models.Form{
		OwnerUserID: ownerID,
		Title:       title,
		Slug:        fmt.Sprintf("%s-%d", title, atomic.AddInt64(&testDBCounter, 1)),
		Status:      models.FormStatusDraft,
	}
	require.NoError(t, db.Create(&form).Error)
	return &form
}

func publishTestForm(t *testing.T, db *gorm.DB, form *models.Form) {
	t.Helper()
	now := time.Now().UTC()
	form.Status = models.FormStatusPublished
	form.PublishedAt = &now
	require.NoError(t, db.Save(form).Error)
}

func createTestField(t *testing.T, db *gorm.DB, formID uint, label string, order int, required bool) *models.FormField {
	t.Helper()
	field := models.FormField{
		FormID:   formID,
		Type:     models.FieldTypeText,
		Label:    label,
		Order:    order,
		Required: required,
	}
	require.NoError(t, db.Create(&field).Error)
	return &field
}
