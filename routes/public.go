package routes

import (
	public_handlers "github.com/GPSingh476/formflow-backend/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes /public altındaki anonim rotaları tanımlar.
// Sadece yayındaki formlar görünür; taslaklar 404 döner.
func registerPublicRoutes(app *fiber.App) {
	publicHandler := public_handlers.NewPublicFormHandler()

	publicGroup := app.Group("/public")
	publicGroup.Get("/forms/:slug", publicHandler.GetForm)       // GET  /public/forms/{slug}
	publicGroup.Post("/forms/:slug/submit", publicHandler.Submit) // POST /public/forms/{slug}/submit
}
