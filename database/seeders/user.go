package seeders

import (
	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDevUser geliştirme ortamı için bir sahip hesabı oluşturur.
// Hesap zaten varsa dokunmaz. E-posta ve şifre ortamdan okunur.
func SeedDevUser(db *gorm.DB) error {
	email := configs.GetEnv("SEED_USER_EMAIL", "dev@formflow.local")
	password := configs.GetEnv("SEED_USER_PASSWORD", "dev-password-1")

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Seed kullanıcısı zaten mevcut: %s", email)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{Email: email, PasswordHash: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Seed kullanıcısı oluşturuldu: %s (ID %d)", email, user.ID)
	return nil
}
