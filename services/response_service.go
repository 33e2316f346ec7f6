package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/pkg/queryparams"
	"github.com/GPSingh476/formflow-backend/repositories"
)

// ResponseServiceError özel servis hataları
type ResponseServiceError string

func (e ResponseServiceError) Error() string { return string(e) }

const (
	ErrResponseNotFound ResponseServiceError = "response not found"
)

// ResponseSummary liste görünümündeki tek satır: cevapların kendisi değil,
// sadece sayısı taşınır.
type ResponseSummary struct {
	ID           uint      `json:"id"`
	FormID       uint      `json:"form_id"`
	CreatedAt    time.Time `json:"created_at"`
	AnswersCount int64     `json:"answers_count"`
}

// AnswerFieldMeta cevabın bağlı olduğu alanın o anki üst verisi.
type AnswerFieldMeta struct {
	ID       uint             `json:"id"`
	Label    string           `json:"label"`
	Type     models.FieldType `json:"type"`
	Required bool             `json:"required"`
	Order    int              `json:"order"`
}

// AnswerDetail detay görünümündeki tek cevap. Field, alan silinmişse nil'dir:
// cevap gizlenmez, alan referansı null olarak taşınır.
type AnswerDetail struct {
	ID      uint             `json:"id"`
	FieldID *uint            `json:"field_id"`
	Value   *string          `json:"value"`
	Field   *AnswerFieldMeta `json:"field"`
}

// ResponseDetail tek bir gönderimin tam görünümü.
type ResponseDetail struct {
	ID        uint           `json:"id"`
	FormID    uint           `json:"form_id"`
	CreatedAt time.Time      `json:"created_at"`
	Answers   []AnswerDetail `json:"answers"`
}

// IResponseService gönderim sorgu katmanının arayüzü.
type IResponseService interface {
	ListResponses(ctx context.Context, formID, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetResponseDetail(ctx context.Context, formID, responseID, userID uint) (*ResponseDetail, error)
}

// ResponseService IResponseService arayüzünü uygular.
type ResponseService struct {
	repo     repositories.IResponseRepository
	formRepo repositories.IFormRepository
}

// NewResponseService yeni bir ResponseService örneği oluşturur.
func NewResponseService() IResponseService {
	return &ResponseService{
		repo:     repositories.NewResponseRepository(),
		formRepo: repositories.NewFormRepository(),
	}
}

// ListResponses formun gönderimlerini oluşturulma zamanına göre azalan sırada
// sayfalayarak getirir. limit [1,100] aralığına, page 1'in altına düşmeyecek
// şekilde sıkıştırılır.
func (s *ResponseService) ListResponses(ctx context.Context, formID, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}
	params.Validate()

	responses, totalCount, err := s.repo.FindAllByFormIDPaginated(ctx, formID, params)
	if err != nil {
		return nil, err
	}

	responseIDs := make([]uint, len(responses))
	for i, r := range responses {
		responseIDs[i] = r.ID
	}
	counts, err := s.repo.CountAnswers(ctx, responseIDs)
	if err != nil {
		return nil, err
	}

	items := make([]ResponseSummary, len(responses))
	for i, r := range responses {
		items[i] = ResponseSummary{
			ID:           r.ID,
			FormID:       r.FormID,
			CreatedAt:    r.CreatedAt,
			AnswersCount: counts[r.ID],
		}
	}

	return &queryparams.PaginatedResult{
		Data: items,
		Meta: queryparams.PaginationMeta{
			Page:       params.Page,
			PerPage:    params.PerPage,
			TotalItems: totalCount,
			TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetResponseDetail tek gönderimi cevaplarıyla getirir. Cevaplar bağlı alanın
// "order" değerine göre artan sıralanır; alanı silinmiş cevaplar en sona düşer
// ve null alan referansı ile döner, listeden çıkarılmaz.
func (s *ResponseService) GetResponseDetail(ctx context.Context, formID, responseID, userID uint) (*ResponseDetail, error) {
	if _, err := assertFormOwner(ctx, s.formRepo, formID, userID); err != nil {
		return nil, err
	}

	response, err := s.repo.FindByIDAndFormID(ctx, responseID, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}

	answers := make([]AnswerDetail, len(response.Answers))
	for i, a := range response.Answers {
		detail := AnswerDetail{
			ID:      a.ID,
			FieldID: a.FieldID,
			Value:   a.Value,
		}
		if a.Field != nil {
			detail.Field = &AnswerFieldMeta{
				ID:       a.Field.ID,
				Label:    a.Field.Label,
				Type:     a.Field.Type,
				Required: a.Field.Required,
				Order:    a.Field.Order,
			}
		}
		answers[i] = detail
	}

	sort.SliceStable(answers, func(i, j int) bool {
		oi, oj := answerSortOrder(answers[i]), answerSortOrder(answers[j])
		if oi != oj {
			return oi < oj
		}
		return answers[i].ID < answers[j].ID
	})

	return &ResponseDetail{
		ID:        response.ID,
		FormID:    response.FormID,
		CreatedAt: response.CreatedAt,
		Answers:   answers,
	}, nil
}

// answerSortOrder silinmiş alanların cevaplarını her gerçek order'ın
// üzerinde sıralamak için kullanılır.
func answerSortOrder(a AnswerDetail) int {
	if a.Field == nil {
		return int(^uint(0) >> 1) // max int
	}
	return a.Field.Order
}

var _ IResponseService = (*ResponseService)(nil)
