package configs

import (
	"fmt"

	"github.com/GPSingh476/formflow-backend/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// buildDSN ortam değişkenlerinden Postgres bağlantı cümlesini üretir.
// DATABASE_URL verilmişse doğrudan onu kullanır.
func buildDSN() string {
	if url := GetEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "formflow"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

// ConnectDB veritabanı bağlantısını kurar ve global handle'ı ayarlar.
// TranslateError açık: unique ihlalleri gorm.ErrDuplicatedKey olarak döner,
// repository katmanı buna güvenir.
func ConnectDB() error {
	conn, err := gorm.Open(postgres.Open(buildDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı", zap.Error(err))
		return err
	}
	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
	return nil
}

// GetDB paylaşılan *gorm.DB örneğini döndürür.
func GetDB() *gorm.DB {
	return db
}

// SetDB test ortamında bağlantıyı enjekte etmek için kullanılır.
func SetDB(conn *gorm.DB) {
	db = conn
}
