package repositories

import (
	"context"
	"errors"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IResponseRepository gönderilen cevap setleri için veritabanı arayüzü.
// Sadece oluşturma ve okuma vardır: response kayıtları değiştirilmez, silinmez.
type IResponseRepository interface {
	Create(ctx context.Context, response *models.FormResponse) error
	CreateAnswers(ctx context.Context, answers []models.FormAnswer) error
	FindAllByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.FormResponse, int64, error)
	CountAnswers(ctx context.Context, responseIDs []uint) (map[uint]int64, error)
	FindByIDAndFormID(ctx context.Context, responseID, formID uint) (*models.FormResponse, error)
}

// ResponseRepository IResponseRepository arayüzünü uygular.
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository yeni bir ResponseRepository örneği oluşturur.
func NewResponseRepository() IResponseRepository {
	return &ResponseRepository{db: configs.GetDB()}
}

// Context ile çalışan DB örneği
func (r *ResponseRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir response satırı oluşturur.
func (r *ResponseRepository) Create(ctx context.Context, response *models.FormResponse) error {
	if response == nil || response.FormID == 0 {
		return errors.New("geçersiz veya formu eksik response oluşturulamaz")
	}
	return r.getDB(ctx).Create(response).Error
}

// CreateAnswers cevap satırlarını toplu ekler.
func (r *ResponseRepository) CreateAnswers(ctx context.Context, answers []models.FormAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.getDB(ctx).Create(&answers).Error
}

// FindAllByFormIDPaginated formun cevap setlerini oluşturulma zamanına göre
// azalan sırada sayfalayarak getirir ve toplam sayıyı döndürür.
func (r *ResponseRepository) FindAllByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.FormResponse, int64, error) {
	if formID == 0 {
		return nil, 0, errors.New("geçersiz Form ID")
	}
	var responses []models.FormResponse
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.FormResponse{}).Where("form_id = ?", formID)
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("ResponseRepository.Count: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return responses, 0, nil
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&responses).Error
	if err != nil {
		configslog.Log.Error("ResponseRepository.Find: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, totalCount, err
	}
	return responses, totalCount, nil
}

// CountAnswers verilen response'ların cevap sayılarını tek sorguda toplar.
func (r *ResponseRepository) CountAnswers(ctx context.Context, responseIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(responseIDs))
	if len(responseIDs) == 0 {
		return counts, nil
	}
	type row struct {
		ResponseID uint
		Count      int64
	}
	var rows []row
	err := r.getDB(ctx).Model(&models.FormAnswer{}).
		Select("response_id, COUNT(*) as count").
		Where("response_id IN ?", responseIDs).
		Group("response_id").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("ResponseRepository.CountAnswers: DB error", zap.Error(err))
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.ResponseID] = rw.Count
	}
	return counts, nil
}

// FindByIDAndFormID response'u cevapları ve (varsa) alan bilgileriyle yükler.
// Form eşleşmezse ErrNotFound: response başka bir formun altında görünmez.
func (r *ResponseRepository) FindByIDAndFormID(ctx context.Context, responseID, formID uint) (*models.FormResponse, error) {
	if responseID == 0 || formID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var response models.FormResponse
	err := r.getDB(ctx).
		Where("id = ? AND form_id = ?", responseID, formID).
		Preload("Answers").
		Preload("Answers.Field").
		First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ResponseRepository.FindByIDAndFormID: DB error",
			zap.Uint("responseID", responseID), zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return &response, nil
}

var _ IResponseRepository = (*ResponseRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewResponseRepositoryTx(tx *gorm.DB) IResponseRepository {
	return &ResponseRepository{db: tx}
}
