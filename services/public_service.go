package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublicServiceError özel servis hataları
type PublicServiceError string

func (e PublicServiceError) Error() string { return string(e) }

const (
	// ErrPublicFormNotFound taslak ve olmayan formlar için aynı cevap:
	// public yüzey ikisini ayırt ettirmez.
	ErrPublicFormNotFound PublicServiceError = "form not found"
	ErrInvalidPayload     PublicServiceError = "invalid payload: expected { answers: { fieldId: value } }"
	ErrSubmissionFailed   PublicServiceError = "gönderim kaydedilemedi"
)

// MissingRequiredFieldError zorunlu bir alanın boş bırakıldığını,
// hangi alan olduğunu da söyleyerek bildirir.
type MissingRequiredFieldError struct {
	FieldID uint
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %d", e.FieldID)
}

// IPublicService anonim public yüzeyin arayüzü.
type IPublicService interface {
	GetPublicFormBySlug(ctx context.Context, slug string) (*models.Form, error)
	SubmitBySlug(ctx context.Context, slug string, answers map[string]any) (uint, error)
}

// PublicService IPublicService arayüzünü uygular.
type PublicService struct {
	formRepo     repositories.IFormRepository
	responseRepo repositories.IResponseRepository
	db           *gorm.DB
}

// NewPublicService yeni bir PublicService örneği oluşturur.
func NewPublicService() IPublicService {
	return &PublicService{
		formRepo:     repositories.NewFormRepository(),
		responseRepo: repositories.NewResponseRepository(),
		db:           configs.GetDB(),
	}
}

// GetPublicFormBySlug yayındaki formu alan şemasıyla birlikte getirir.
func (s *PublicService) GetPublicFormBySlug(ctx context.Context, slug string) (*models.Form, error) {
	form, err := s.formRepo.FindPublishedBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPublicFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// isEmptyAnswer zorunluluk kontrolündeki "boş" tanımı: anahtar yok, null,
// trim sonrası boş string veya boş dizi.
func isEmptyAnswer(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	}
	return false
}

// coerceValue saklanacak değeri string'e indirger. null -> NULL olarak saklanır.
// Diziler JS String() davranışıyla uyumlu olarak virgülle birleştirilir.
func coerceValue(value any) *string {
	if value == nil {
		return nil
	}
	var str string
	switch v := value.(type) {
	case string:
		str = v
	case bool:
		str = strconv.FormatBool(v)
	case float64:
		str = strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if coerced := coerceValue(item); coerced != nil {
				parts = append(parts, *coerced)
			} else {
				parts = append(parts, "")
			}
		}
		str = strings.Join(parts, ",")
	default:
		str = fmt.Sprintf("%v", v)
	}
	return &str
}

// SubmitBySlug yayındaki bir forma anonim gönderim alır.
//
// Validasyon transaction açılmadan tamamen biter: zorunlu bir alan boşsa
// hiçbir şey kaydedilmeden BadRequest üretilir. Bilinmeyen alan ID'leri hata
// değildir, sessizce elenir. Response ve cevapları tek transaction'da yazılır;
// transaction başarısız olursa ne response ne cevap kalır.
func (s *PublicService) SubmitBySlug(ctx context.Context, slug string, answers map[string]any) (uint, error) {
	if answers == nil {
		return 0, ErrInvalidPayload
	}

	form, err := s.formRepo.FindPublishedBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrPublicFormNotFound
		}
		return 0, err
	}

	// Zorunlu alan kontrolü; ilk eksik alan tüm gönderimi düşürür.
	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		key := strconv.FormatUint(uint64(field.ID), 10)
		value, present := answers[key]
		if isEmptyAnswer(value, present) {
			return 0, &MissingRequiredFieldError{FieldID: field.ID}
		}
	}

	knownFieldIDs := make(map[uint]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		knownFieldIDs[field.ID] = struct{}{}
	}

	var responseID uint
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		responseRepoTx := repositories.NewResponseRepositoryTx(tx)

		response := models.FormResponse{FormID: form.ID}
		if err := responseRepoTx.Create(ctx, &response); err != nil {
			return err
		}

		rows := make([]models.FormAnswer, 0, len(answers))
		for key, value := range answers {
			parsed, err := strconv.ParseUint(key, 10, 64)
			if err != nil {
				continue // alan ID'si bile değil, ele
			}
			fieldID := uint(parsed)
			if _, known := knownFieldIDs[fieldID]; !known {
				continue // bu forma ait olmayan ID, ele
			}
			id := fieldID
			rows = append(rows, models.FormAnswer{
				ResponseID: response.ID,
				FieldID:    &id,
				Value:      coerceValue(value),
			})
		}
		if err := responseRepoTx.CreateAnswers(ctx, rows); err != nil {
			return err
		}

		responseID = response.ID
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("SubmitBySlug transaction failed", zap.String("slug", slug), zap.Error(txErr))
		return 0, ErrSubmissionFailed
	}

	configslog.SLog.Infof("Yeni gönderim alındı: Form %d, Response %d", form.ID, responseID)
	return responseID, nil
}

var _ IPublicService = (*PublicService)(nil)
