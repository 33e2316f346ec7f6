package database

import (
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/database/migrations"
	"github.com/GPSingh476/formflow-backend/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa tamamı geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := seeders.SeedDevUser(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder migrasyonları bağımlılık sırasına göre çalıştırır.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Form migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateFormsTables(db); err != nil {
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}
