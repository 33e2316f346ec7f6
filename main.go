package main

import (
	"errors"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/database"
	"github.com/GPSingh476/formflow-backend/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()

	if err := configslog.Init(configs.GetEnv("APP_ENV", "development")); err != nil {
		panic(err)
	}
	defer configslog.Sync()

	if configs.GetJWTSecret() == "" {
		configslog.SLog.Fatal("JWT_ACCESS_SECRET tanımlı değil, uygulama başlatılamıyor.")
	}

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatal("Veritabanına bağlanılamadı, çıkılıyor.")
	}

	// AUTO_MIGRATE=true ise açılışta şema senkronize edilir.
	if configs.GetEnv("AUTO_MIGRATE", "false") == "true" {
		database.Initialize(configs.GetDB(), true, false)
	}

	app := fiber.New(fiber.Config{
		AppName:      "formflow-backend",
		ErrorHandler: errorHandler,
	})

	routes.SetupRoutes(app)

	addr := ":" + configs.GetEnv("APP_PORT", "3000")
	configslog.SLog.Infof("HTTP sunucusu dinlemede: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}

// errorHandler yakalanmamış fiber hatalarını JSON zarfına çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled request error", zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
