package routes

import (
	auth_handlers "github.com/GPSingh476/formflow-backend/handlers/auth"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes /v1/auth altındaki rotaları tanımlar.
func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()

	authGroup := app.Group("/v1/auth")
	authGroup.Post("/register", authHandler.Register) // POST /v1/auth/register
	authGroup.Post("/login", authHandler.Login)       // POST /v1/auth/login
}
