package repositories

import (
	"context"
	"errors"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFieldRepository form alanı veritabanı işlemleri için arayüz.
type IFieldRepository interface {
	Create(ctx context.Context, field *models.FormField) error
	FindByID(ctx context.Context, id uint) (*models.FormField, error)
	FindAllByFormID(ctx context.Context, formID uint) ([]models.FormField, error)
	MaxOrder(ctx context.Context, formID uint) (int, bool, error) // (maxOrder, alan var mı, hata)
	UpdateAttrs(ctx context.Context, fieldID uint, attrs map[string]any) error
	UpdateOrder(ctx context.Context, fieldID uint, order int) error
	Delete(ctx context.Context, fieldID uint) error
}

// FieldRepository IFieldRepository arayüzünü uygular.
type FieldRepository struct {
	db *gorm.DB
}

// NewFieldRepository yeni bir FieldRepository örneği oluşturur.
func NewFieldRepository() IFieldRepository {
	return &FieldRepository{db: configs.GetDB()}
}

// Context ile çalışan DB örneği
func (r *FieldRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir alan ekler. (form_id, "order") unique: çakışmada ErrDuplicate.
func (r *FieldRepository) Create(ctx context.Context, field *models.FormField) error {
	if field == nil || field.FormID == 0 {
		return errors.New("geçersiz veya formu eksik alan oluşturulamaz")
	}
	err := r.getDB(ctx).Create(field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("FieldRepository.Create: DB error", zap.Uint("formID", field.FormID), zap.Error(err))
		return err
	}
	return nil
}

// FindByID belirli bir ID'ye sahip alanı bulur.
func (r *FieldRepository) FindByID(ctx context.Context, id uint) (*models.FormField, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Field ID")
	}
	var field models.FormField
	err := r.getDB(ctx).First(&field, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FieldRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &field, nil
}

// FindAllByFormID formun alanlarını "order" artan sırada getirir.
func (r *FieldRepository) FindAllByFormID(ctx context.Context, formID uint) ([]models.FormField, error) {
	if formID == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	var fields []models.FormField
	err := r.getDB(ctx).
		Where("form_id = ?", formID).
		Order("\"order\" ASC").
		Find(&fields).Error
	if err != nil {
		configslog.Log.Error("FieldRepository.FindAllByFormID: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return fields, nil
}

// MaxOrder formdaki en büyük "order" değerini döndürür.
// İkinci dönüş değeri formda hiç alan olup olmadığını söyler.
func (r *FieldRepository) MaxOrder(ctx context.Context, formID uint) (int, bool, error) {
	if formID == 0 {
		return 0, false, errors.New("geçersiz Form ID")
	}
	var field models.FormField
	err := r.getDB(ctx).
		Where("form_id = ?", formID).
		Order("\"order\" DESC").
		Select("id", "\"order\"").
		First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		configslog.Log.Error("FieldRepository.MaxOrder: DB error", zap.Uint("formID", formID), zap.Error(err))
		return 0, false, err
	}
	return field.Order, true, nil
}

// UpdateAttrs alanın sadece verilen sütunlarını günceller (sparse patch).
// "order" çakışması ErrDuplicate olarak döner.
func (r *FieldRepository) UpdateAttrs(ctx context.Context, fieldID uint, attrs map[string]any) error {
	if fieldID == 0 || len(attrs) == 0 {
		return errors.New("geçersiz alan güncelleme isteği")
	}
	err := r.getDB(ctx).Model(&models.FormField{}).Where("id = ?", fieldID).Updates(attrs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("FieldRepository.UpdateAttrs: DB error", zap.Uint("fieldID", fieldID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateOrder tek bir alanın "order" değerini yazar. Reorder fazları kullanır.
func (r *FieldRepository) UpdateOrder(ctx context.Context, fieldID uint, order int) error {
	if fieldID == 0 {
		return errors.New("geçersiz Field ID")
	}
	err := r.getDB(ctx).Model(&models.FormField{}).Where("id = ?", fieldID).
		Updates(map[string]any{"order": order}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete alanı kalıcı olarak siler. Cevaplar silinmez: alanın referansı
// veritabanı kısıtı ile NULL'a düşer, cevap satırı aynen kalır.
func (r *FieldRepository) Delete(ctx context.Context, fieldID uint) error {
	if fieldID == 0 {
		return errors.New("geçersiz Field ID")
	}
	result := r.getDB(ctx).Delete(&models.FormField{}, fieldID)
	if result.Error != nil {
		configslog.Log.Error("FieldRepository.Delete: DB error", zap.Uint("fieldID", fieldID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IFieldRepository = (*FieldRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewFieldRepositoryTx(tx *gorm.DB) IFieldRepository {
	return &FieldRepository{db: tx}
}
