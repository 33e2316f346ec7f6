package handlers // handlers/panel paketi

import (
	"errors"

	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelFormHandler kullanıcının kendi formları için handler.
type PanelFormHandler struct {
	service services.IFormService
}

// NewPanelFormHandler yeni bir PanelFormHandler örneği oluşturur.
func NewPanelFormHandler() *PanelFormHandler {
	return &PanelFormHandler{service: services.NewFormService()}
}

// currentUserID locals'taki doğrulanmış kullanıcı kimliğini döndürür.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID != 0
}

// paramID pozitif bir sayısal path parametresini okur.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// formErrStatus form servis hatalarını HTTP koduna eşler.
func formErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrFormForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrFormInvalidInput), errors.Is(err, services.ErrFormTitleRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateForm yeni bir taslak form oluşturur.
func (h *PanelFormHandler) CreateForm(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var input services.CreateFormInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	form, err := h.service.CreateForm(c.UserContext(), userID, input)
	if err != nil {
		status := formErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - CreateForm Error", zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// ListForms kullanıcının kendi formlarını listeler.
func (h *PanelFormHandler) ListForms(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	forms, err := h.service.ListForms(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ListForms Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "forms could not be listed"})
	}
	return c.JSON(forms)
}

// GetForm tek bir formun detayını getirir.
func (h *PanelFormHandler) GetForm(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	form, err := h.service.GetForm(c.UserContext(), formID, userID)
	if err != nil {
		return c.Status(formErrStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(form)
}

// DeleteForm formu ve tüm alt kayıtlarını siler.
func (h *PanelFormHandler) DeleteForm(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	if err := h.service.DeleteForm(c.UserContext(), formID, userID); err != nil {
		status := formErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - DeleteForm Error", zap.Uint("id", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// PublishForm formu yayına alır. Tekrar çağrılması hata değildir.
func (h *PanelFormHandler) PublishForm(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	form, err := h.service.PublishForm(c.UserContext(), formID, userID)
	if err != nil {
		status := formErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - PublishForm Error", zap.Uint("id", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"id":           form.ID,
		"status":       form.Status,
		"published_at": form.PublishedAt,
		"slug":         form.Slug,
	})
}
