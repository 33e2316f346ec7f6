package main

import (
	"flag"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/database"
)

// Migrasyon/seed CLI'ı: go run ./database/cmd -migrate -seed
func main() {
	migrate := flag.Bool("migrate", false, "veritabanı migrasyonlarını çalıştır")
	seed := flag.Bool("seed", false, "seeder'ları çalıştır")
	flag.Parse()

	configs.LoadEnv()
	if err := configslog.Init(configs.GetEnv("APP_ENV", "development")); err != nil {
		panic(err)
	}
	defer configslog.Sync()

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatal("Veritabanına bağlanılamadı, çıkılıyor.")
	}

	database.Initialize(configs.GetDB(), *migrate, *seed)
}
