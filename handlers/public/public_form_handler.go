package handlers // handlers/public paketi

import (
	"errors"
	"time"

	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicFormHandler anonim public yüzeyin handler'ı.
type PublicFormHandler struct {
	service services.IPublicService
}

// NewPublicFormHandler yeni bir PublicFormHandler örneği oluşturur.
func NewPublicFormHandler() *PublicFormHandler {
	return &PublicFormHandler{service: services.NewPublicService()}
}

// publicFormView public cevapta görünen form şeması.
// Taslak/iç alanlar (owner, responses) hiçbir zaman dışarı sızmaz.
type publicFormView struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Slug        string             `json:"slug"`
	Status      models.FormStatus  `json:"status"`
	PublishedAt *time.Time         `json:"published_at"`
	Fields      []models.FormField `json:"fields"`
}

// GetForm yayındaki formun alan şemasını slug ile getirir.
// Taslak ve olmayan formlar aynı şekilde 404 döner.
func (h *PublicFormHandler) GetForm(c *fiber.Ctx) error {
	form, err := h.service.GetPublicFormBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPublicFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Public - GetForm Error", zap.String("slug", c.Params("slug")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "form could not be loaded"})
	}

	return c.JSON(publicFormView{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Slug:        form.Slug,
		Status:      form.Status,
		PublishedAt: form.PublishedAt,
		Fields:      form.Fields,
	})
}

type submitRequest struct {
	Answers map[string]any `json:"answers"`
}

// Submit yayındaki forma anonim gönderim alır.
func (h *PublicFormHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrInvalidPayload.Error()})
	}

	responseID, err := h.service.SubmitBySlug(c.UserContext(), c.Params("slug"), req.Answers)
	if err != nil {
		var missing *services.MissingRequiredFieldError
		switch {
		case errors.Is(err, services.ErrPublicFormNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidPayload), errors.As(err, &missing):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Public - Submit Error", zap.String("slug", c.Params("slug")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "submission failed"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "responseId": responseID})
}
