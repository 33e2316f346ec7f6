package handlers // handlers/panel paketi

import (
	"errors"

	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/pkg/queryparams"
	"github.com/GPSingh476/formflow-backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelResponseHandler form gönderimlerinin sorgu uçları için handler.
type PanelResponseHandler struct {
	service services.IResponseService
}

// NewPanelResponseHandler yeni bir PanelResponseHandler örneği oluşturur.
func NewPanelResponseHandler() *PanelResponseHandler {
	return &PanelResponseHandler{service: services.NewResponseService()}
}

// responseErrStatus gönderim servis hatalarını HTTP koduna eşler.
func responseErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFormNotFound), errors.Is(err, services.ErrResponseNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrFormForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ListResponses formun gönderimlerini sayfalayarak listeler.
func (h *PanelResponseHandler) ListResponses(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.service.ListResponses(c.UserContext(), formID, userID, params)
	if err != nil {
		status := responseErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - ListResponses Error", zap.Uint("formID", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// GetResponseDetail tek gönderimi cevaplarıyla getirir.
func (h *PanelResponseHandler) GetResponseDetail(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	formID, ok := paramID(c, "formId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form id"})
	}
	responseID, ok := paramID(c, "responseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid response id"})
	}

	detail, err := h.service.GetResponseDetail(c.UserContext(), formID, responseID, userID)
	if err != nil {
		status := responseErrStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Panel - GetResponseDetail Error",
				zap.Uint("formID", formID), zap.Uint("responseID", responseID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}
