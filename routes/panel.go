package routes

import (
	panel_handlers "github.com/GPSingh476/formflow-backend/handlers/panel"
	"github.com/GPSingh476/formflow-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /v1/forms altındaki sahip işlemlerini tanımlar.
// Tüm rotalar bearer token ister; sahiplik kontrolü servis katmanındadır.
func registerPanelRoutes(app *fiber.App) {
	formHandler := panel_handlers.NewPanelFormHandler()
	fieldHandler := panel_handlers.NewPanelFieldHandler()
	responseHandler := panel_handlers.NewPanelResponseHandler()

	formsGroup := app.Group("/v1/forms")
	formsGroup.Use(middlewares.AuthMiddleware)

	// --- Formlar ---
	formsGroup.Post("/", formHandler.CreateForm)          // POST   /v1/forms
	formsGroup.Get("/", formHandler.ListForms)            // GET    /v1/forms
	formsGroup.Get("/:id", formHandler.GetForm)           // GET    /v1/forms/{id}
	formsGroup.Delete("/:id", formHandler.DeleteForm)     // DELETE /v1/forms/{id}
	formsGroup.Post("/:id/publish", formHandler.PublishForm) // POST /v1/forms/{id}/publish

	// --- Alanlar ---
	formsGroup.Get("/:formId/fields", fieldHandler.ListFields)              // GET    /v1/forms/{formId}/fields
	formsGroup.Post("/:formId/fields", fieldHandler.CreateField)            // POST   /v1/forms/{formId}/fields
	formsGroup.Post("/:formId/fields/reorder", fieldHandler.ReorderFields)  // POST   /v1/forms/{formId}/fields/reorder
	formsGroup.Patch("/:formId/fields/:fieldId", fieldHandler.UpdateField)  // PATCH  /v1/forms/{formId}/fields/{fieldId}
	formsGroup.Delete("/:formId/fields/:fieldId", fieldHandler.DeleteField) // DELETE /v1/forms/{formId}/fields/{fieldId}

	// --- Gönderimler ---
	formsGroup.Get("/:formId/responses", responseHandler.ListResponses)              // GET /v1/forms/{formId}/responses
	formsGroup.Get("/:formId/responses/:responseId", responseHandler.GetResponseDetail) // GET /v1/forms/{formId}/responses/{responseId}
}
