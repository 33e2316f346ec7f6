package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FieldServiceError özel servis hataları
type FieldServiceError string

func (e FieldServiceError) Error() string { return string(e) }

const (
	ErrFieldNotFound      FieldServiceError = "field not found"
	ErrFieldNotInForm     FieldServiceError = "field id does not belong to this form"
	ErrFieldOrderConflict FieldServiceError = "field order already exists for this form"
	ErrReorderIncomplete  FieldServiceError = "orderedIds must include all fields for this form"
	ErrFieldInvalidInput  FieldServiceError = "geçersiz alan verisi"
	ErrFieldTypeInvalid   FieldServiceError = "bilinmeyen alan türü"
)

// reorderStagingOffset reorder'ın birinci fazında kullanılan geçici "order"
// aralığının başlangıcı. Uygulamanın atadığı gerçek order değerleri her zaman
// alan sayısının altında kalır, bu aralıkla asla çakışmaz.
const reorderStagingOffset = 10000

// CreateFieldInput yeni alan isteğinin verisi.
type CreateFieldInput struct {
	Type        models.FieldType `json:"type"`
	Label       string           `json:"label"`
	Required    *bool            `json:"required"`
	Order       *int             `json:"order"`
	Placeholder *string          `json:"placeholder"`
	Options     json.RawMessage  `json:"options"`
}

// UpdateFieldInput sparse patch verisi: nil alanlar dokunulmadan bırakılır.
type UpdateFieldInput struct {
	Type        *models.FieldType `json:"type"`
	Label       *string           `json:"label"`
	Required    *bool             `json:"required"`
	Order       *int              `json:"order"`
	Placeholder *string           `json:"placeholder"`
	Options     json.RawMessage   `json:"options"`
}

// IFieldService form alanı işlemleri için arayüz.
type IFieldService interface {
	ListFields(ctx context.Context, formID, userID uint) ([]models.FormField, error)
	CreateField(ctx context.Context, formID, userID uint, input CreateFieldInput) (*models.FormField, error)
	UpdateField(ctx context.Context, formID, fieldID, userID uint, input UpdateFieldInput) (*models.FormField, error)
	RemoveField(ctx context.Context, formID, fieldID, userID uint) error
	ReorderFields(ctx context.Context, formID, userID uint, orderedIDs []uint) ([]models.FormField, error)
}

// FieldService IFieldService arayüzünü uygular.
type FieldService struct {
	repo     repositories.IFieldRepository
	formRepo repositories.IFormRepository
	db       *gorm.DB
}

// NewFieldService yeni bir FieldService örneği oluşturur.
func NewFieldService() IFieldService {
	return &FieldService{
		repo:     repositories.NewFieldRepository(),
		formRepo: repositories.NewFormRepository(),
		db:       configs.GetDB(),
	}
}

// ListFields formun alanlarını "order" artan sırada getirir.
func (s *FieldService) ListFields(ctx context.Context, formID, userID uint) ([]models.FormField, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByFormID(ctx, formID)
}

// CreateField yeni bir alan ekler. "order" verilmemişse mevcut en büyük
// değerin bir fazlası atanır (ilk alan için 0): çağıran koordinasyonu olmadan
// append semantiği garanti edilir. Çağıranın verdiği "order" başka bir alanla
// çakışırsa sessizce yeniden numaralandırılmaz, Conflict döner.
func (s *FieldService) CreateField(ctx context.Context, formID, userID uint, input CreateFieldInput) (*models.FormField, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}
	if input.Label == "" {
		return nil, fmt.Errorf("%w: label zorunludur", ErrFieldInvalidInput)
	}
	if !models.ValidFieldType(input.Type) {
		return nil, ErrFieldTypeInvalid
	}

	var order int
	if input.Order != nil {
		if *input.Order < 0 {
			return nil, fmt.Errorf("%w: order negatif olamaz", ErrFieldInvalidInput)
		}
		order = *input.Order
	} else {
		maxOrder, found, err := s.repo.MaxOrder(ctx, formID)
		if err != nil {
			return nil, err
		}
		if found {
			order = maxOrder + 1
		}
	}

	field := models.FormField{
		FormID:      formID,
		Type:        input.Type,
		Label:       input.Label,
		Order:       order,
		Placeholder: input.Placeholder,
		Options:     input.Options,
	}
	if input.Required != nil {
		field.Required = *input.Required
	}

	if err := s.repo.Create(ctx, &field); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrFieldOrderConflict
		}
		return nil, err
	}
	return &field, nil
}

// findFieldInForm alanı yükler ve verilen forma ait olduğunu doğrular.
func (s *FieldService) findFieldInForm(ctx context.Context, formID, fieldID uint) (*models.FormField, error) {
	field, err := s.repo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	if field.FormID != formID {
		return nil, ErrFieldNotFound
	}
	return field, nil
}

// UpdateField alanın sadece gönderilen özniteliklerini günceller.
// "order" değişikliği başka bir alanın order'ı ile çakışırsa Conflict döner.
func (s *FieldService) UpdateField(ctx context.Context, formID, fieldID, userID uint, input UpdateFieldInput) (*models.FormField, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}
	if _, err := s.findFieldInForm(ctx, formID, fieldID); err != nil {
		return nil, err
	}

	attrs := map[string]any{}
	if input.Type != nil {
		if !models.ValidFieldType(*input.Type) {
			return nil, ErrFieldTypeInvalid
		}
		attrs["type"] = *input.Type
	}
	if input.Label != nil {
		if *input.Label == "" {
			return nil, fmt.Errorf("%w: label boş olamaz", ErrFieldInvalidInput)
		}
		attrs["label"] = *input.Label
	}
	if input.Required != nil {
		attrs["required"] = *input.Required
	}
	if input.Order != nil {
		if *input.Order < 0 {
			return nil, fmt.Errorf("%w: order negatif olamaz", ErrFieldInvalidInput)
		}
		attrs["order"] = *input.Order
	}
	if input.Placeholder != nil {
		attrs["placeholder"] = *input.Placeholder
	}
	if input.Options != nil {
		attrs["options"] = input.Options
	}
	if len(attrs) == 0 {
		return s.repo.FindByID(ctx, fieldID)
	}

	if err := s.repo.UpdateAttrs(ctx, fieldID, attrs); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrFieldOrderConflict
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, fieldID)
}

// RemoveField alanı siler. Kalan alanlar yeniden numaralandırılmaz: "order"
// dizisinde boşluk kalabilir, sadece açık Reorder 0..n-1 sürekliliğini kurar.
// Bu alana verilmiş cevaplar silinmez (yetim kalır ama bozulmaz).
func (s *FieldService) RemoveField(ctx context.Context, formID, fieldID, userID uint) error {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return err
	}
	if _, err := s.findFieldInForm(ctx, formID, fieldID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, fieldID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFieldNotFound
		}
		return err
	}
	return nil
}

// ReorderFields formun tüm alanlarına yeni bir tam sıra atar.
//
// (form_id, "order") unique olduğu için nihai pozisyonların doğrudan yazılması
// başka bir alanın mevcut order'ı ile geçici çakışma üretebilir (örn. iki komşu
// alanın yer değiştirmesi). Bu yüzden tek transaction içinde iki fazlı çalışır:
// birinci faz her alana geçerli order aralığıyla kesişmeyen geçici bir değer
// (offset + index) yazar, ikinci faz nihai değeri (index) yazar. Herhangi bir
// update başarısız olursa transaction bütünüyle geri alınır, yarım sıralama
// asla görünür olmaz.
func (s *FieldService) ReorderFields(ctx context.Context, formID, userID uint, orderedIDs []uint) ([]models.FormField, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAllByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	existingIDs := make(map[uint]struct{}, len(existing))
	for _, f := range existing {
		existingIDs[f.ID] = struct{}{}
	}

	seen := make(map[uint]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := existingIDs[id]; !ok {
			return nil, ErrFieldNotInForm
		}
		if _, dup := seen[id]; dup {
			return nil, ErrReorderIncomplete
		}
		seen[id] = struct{}{}
	}
	if len(orderedIDs) != len(existing) {
		return nil, ErrReorderIncomplete
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		fieldRepoTx := repositories.NewFieldRepositoryTx(tx)

		// Faz 1: geçici, kesişmeyen order değerleri
		for i, id := range orderedIDs {
			if err := fieldRepoTx.UpdateOrder(ctx, id, reorderStagingOffset+i); err != nil {
				return err
			}
		}
		// Faz 2: nihai order değerleri (0..n-1)
		for i, id := range orderedIDs {
			if err := fieldRepoTx.UpdateOrder(ctx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("ReorderFields transaction failed",
			zap.Uint("formID", formID), zap.Uint("userID", userID), zap.Error(txErr))
		return nil, txErr
	}

	return s.repo.FindAllByFormID(ctx, formID)
}

var _ IFieldService = (*FieldService)(nil)
