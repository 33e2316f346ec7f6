package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/pkg/slugify"
	"github.com/GPSingh476/formflow-backend/repositories"

	"go.uber.org/zap"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound       FormServiceError = "form not found"
	ErrFormForbidden      FormServiceError = "not your form"
	ErrFormInvalidInput   FormServiceError = "geçersiz girdi verisi"
	ErrFormTitleRequired  FormServiceError = "form başlığı zorunludur"
	ErrFormCreationFailed FormServiceError = "form oluşturulamadı"
	ErrFormDeletionFailed FormServiceError = "form silinemedi"
)

const (
	maxTitleLength       = 120
	maxDescriptionLength = 500
)

// CreateFormInput yeni form isteğinin verisi.
type CreateFormInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// IFormService form işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, ownerUserID uint, input CreateFormInput) (*models.Form, error)
	ListForms(ctx context.Context, ownerUserID uint) ([]models.Form, error)
	GetForm(ctx context.Context, formID, requestingUserID uint) (*models.Form, error)
	DeleteForm(ctx context.Context, formID, requestingUserID uint) error
	PublishForm(ctx context.Context, formID, requestingUserID uint) (*models.Form, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo repositories.IFormRepository
}

// NewFormService yeni bir FormService örneği oluşturur.
func NewFormService() IFormService {
	return &FormService{repo: repositories.NewFormRepository()}
}

// validateFormInput temel validasyonları yapar.
func validateFormInput(input CreateFormInput) error {
	if input.Title == "" {
		return ErrFormTitleRequired
	}
	if len(input.Title) > maxTitleLength {
		return fmt.Errorf("%w: başlık en fazla %d karakter olabilir", ErrFormInvalidInput, maxTitleLength)
	}
	if len(input.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: açıklama en fazla %d karakter olabilir", ErrFormInvalidInput, maxDescriptionLength)
	}
	return nil
}

// CreateForm yeni bir taslak form oluşturur. Slug başlıktan ve rastgele
// ekten üretilir; küresel benzersizliği slug üzerindeki unique index korur.
func (s *FormService) CreateForm(ctx context.Context, ownerUserID uint, input CreateFormInput) (*models.Form, error) {
	if ownerUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}
	if err := validateFormInput(input); err != nil {
		return nil, err
	}

	form := models.Form{
		OwnerUserID: ownerUserID,
		Title:       input.Title,
		Description: input.Description,
		Slug:        slugify.WithSuffix(input.Title),
		Status:      models.FormStatusDraft,
	}
	if err := s.repo.Create(ctx, &form); err != nil {
		configslog.Log.Error("CreateForm failed", zap.Uint("ownerUserID", ownerUserID), zap.Error(err))
		return nil, ErrFormCreationFailed
	}
	configslog.SLog.Infof("Form oluşturuldu: ID %d, Slug: %s", form.ID, form.Slug)
	return &form, nil
}

// ListForms kullanıcının formlarını son güncellenene göre listeler.
func (s *FormService) ListForms(ctx context.Context, ownerUserID uint) ([]models.Form, error) {
	if ownerUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}
	return s.repo.FindAllByOwner(ctx, ownerUserID)
}

// GetForm belirli bir formu sahiplik kontrolüyle getirir.
func (s *FormService) GetForm(ctx context.Context, formID, requestingUserID uint) (*models.Form, error) {
	form, err := s.repo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.OwnerUserID != requestingUserID {
		return nil, ErrFormForbidden
	}
	return form, nil
}

// DeleteForm formu ve tüm alt kayıtlarını (alanlar, cevap setleri, cevaplar)
// kalıcı olarak siler.
func (s *FormService) DeleteForm(ctx context.Context, formID, requestingUserID uint) error {
	form, err := assertFormOwner(ctx, s.repo, formID, requestingUserID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, form); err != nil {
		configslog.Log.Error("DeleteForm failed", zap.Uint("formID", formID), zap.Error(err))
		return ErrFormDeletionFailed
	}
	configslog.SLog.Infof("Form silindi: ID %d (Silen: %d)", formID, requestingUserID)
	return nil
}

// PublishForm formu yayına alır ve yayın zamanını damgalar.
// Zaten yayında olan bir formda tekrar çağrılabilir: hata üretmez,
// sadece publish zamanını günceller.
func (s *FormService) PublishForm(ctx context.Context, formID, requestingUserID uint) (*models.Form, error) {
	if _, err := assertFormOwner(ctx, s.repo, formID, requestingUserID); err != nil {
		return nil, err
	}
	form, err := s.repo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	form.Status = models.FormStatusPublished
	form.PublishedAt = &now
	if err := s.repo.Update(ctx, form); err != nil {
		configslog.Log.Error("PublishForm failed", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Form yayınlandı: ID %d, Slug: %s", form.ID, form.Slug)
	return form, nil
}

var _ IFormService = (*FormService)(nil)
