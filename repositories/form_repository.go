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

// IFormRepository form veritabanı işlemleri için arayüz.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindOwnedByID(ctx context.Context, id uint) (*models.Form, error) // Sadece id + owner yükler
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]models.Form, error)
	FindPublishedBySlug(ctx context.Context, slug string, withFields bool) (*models.Form, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, form *models.Form) error
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository yeni bir FormRepository örneği oluşturur.
func NewFormRepository() IFormRepository {
	return &FormRepository{db: configs.GetDB()}
}

// Context ile çalışan DB örneği
func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir form oluşturur. Slug unique: çakışmada ErrDuplicate döner.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil || form.OwnerUserID == 0 {
		return errors.New("geçersiz veya sahibi eksik form oluşturulamaz")
	}
	err := r.getDB(ctx).Create(form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("FormRepository.Create: DB error", zap.Error(err))
		return err
	}
	return nil
}

// FindByID belirli bir ID'ye sahip formu bulur.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	var form models.Form
	err := r.getDB(ctx).First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindOwnedByID ownership guard için formu sadece kimlik alanlarıyla yükler.
func (r *FormRepository) FindOwnedByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	var form models.Form
	err := r.getDB(ctx).Select("id", "owner_user_id").First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindOwnedByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindAllByOwner kullanıcının tüm formlarını son güncellenene göre listeler.
func (r *FormRepository) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]models.Form, error) {
	if ownerUserID == 0 {
		return nil, errors.New("geçersiz Owner User ID")
	}
	var forms []models.Form
	err := r.getDB(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("updated_at DESC").
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.FindAllByOwner: DB error", zap.Uint("ownerUserID", ownerUserID), zap.Error(err))
		return nil, err
	}
	return forms, nil
}

// FindPublishedBySlug yayındaki formu slug ile bulur. Taslak formlar ve
// olmayan formlar aynı şekilde ErrNotFound döner (public yüzey ayrımı sızdırmaz).
func (r *FormRepository) FindPublishedBySlug(ctx context.Context, slug string, withFields bool) (*models.Form, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	query := r.getDB(ctx).Where("slug = ? AND status = ?", slug, models.FormStatusPublished)
	if withFields {
		query = query.Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		})
	}
	var form models.Form
	err := query.First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindPublishedBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// Update form kaydını günceller.
func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	return r.getDB(ctx).Save(form).Error
}

// Delete formu ve alt kayıtlarını kalıcı olarak siler.
// Answers -> Responses -> Fields -> Form sırası tek transaction içinde yürür;
// DB seviyesindeki cascade kısıtlarından bağımsız olarak tutarlıdır.
func (r *FormRepository) Delete(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("silinecek form geçerli değil")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id IN (?)",
			tx.Model(&models.FormResponse{}).Select("id").Where("form_id = ?", form.ID),
		).Delete(&models.FormAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", form.ID).Delete(&models.FormResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", form.ID).Delete(&models.FormField{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Form{}, form.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

var _ IFormRepository = (*FormRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return &FormRepository{db: tx}
}
