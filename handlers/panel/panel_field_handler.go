package handlers // handlers/panel paketi

import (
	"errors"

	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelFieldHandler form alanı uçları için handler.
type PanelFieldHandler struct {
	service services.IFieldService
}

// NewPanelFieldHandler yeni bir PanelFieldHandler örneği oluşturur.
func NewPanelFieldHandler() *PanelFieldHandler {
	return &PanelFieldHandler{service: services.NewFieldService()}
}

// fieldErrStatus alan servis hatalarını HTTP koduna eşler.
func fieldErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFormNotFound),
		errors.Is(err, services.ErrFieldNotFound),
		errors.Is(err, services.ErrFieldNotInForm):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrFormForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrFieldOrderConflict), errors.Is(err, services.ErrReorderIncomplete):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrFieldInvalidInput), errors.Is(err, services.ErrFieldTypeInvalid):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ListFields formun alanlarını sıralı listeler.
func (h *PanelFieldHandler) ListFields(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	fields, err := h.service.ListFields(c.UserContext(), formID, userID)
	if err != nil {
		return c.Status(fieldErrStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fields)
}

// CreateField forma yeni alan ekler.
func (h *PanelFieldHandler) CreateField(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	var input services.CreateFieldInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	field, err := h.service.CreateField(c.UserContext(), formID, userID, input)
	if err != nil {
		status := fieldErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - CreateField Error", zap.Uint("formID", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

// UpdateField alanın gönderilen özniteliklerini günceller (sparse patch).
func (h *PanelFieldHandler) UpdateField(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}
	fieldID, ok := paramID(c, "fieldId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field id"})
	}

	var input services.UpdateFieldInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	field, err := h.service.UpdateField(c.UserContext(), formID, fieldID, userID, input)
	if err != nil {
		status := fieldErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - UpdateField Error", zap.Uint("fieldID", fieldID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(field)
}

// DeleteField alanı siler. Kalan alanlar yeniden numaralandırılmaz,
// verilmiş cevaplar korunur.
func (h *PanelFieldHandler) DeleteField(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}
	fieldID, ok := paramID(c, "fieldId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid field id"})
	}

	if err := h.service.RemoveField(c.UserContext(), formID, fieldID, userID); err != nil {
		status := fieldErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - DeleteField Error", zap.Uint("fieldID", fieldID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

type reorderRequest struct {
	OrderedIDs []uint `json:"orderedIds"`
}

// ReorderFields formun tüm alanlarına yeni tam sıra atar; sonuç nihai sıradır.
func (h *PanelFieldHandler) ReorderFields(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	fields, err := h.service.ReorderFields(c.UserContext(), formID, userID, req.OrderedIDs)
	if err != nil {
		status := fieldErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - ReorderFields Error", zap.Uint("formID", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fields)
}
