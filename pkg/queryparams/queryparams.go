package queryparams

// Sayfalama varsayılanları ve sınırları.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste uçlarının query parametrelerini taşır.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"limit"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
}

// DefaultListParams verilen sıralama sütunu ile varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate parametreleri güvenli aralıklara çeker:
// page >= 1, 1 <= per_page <= 100.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// CalculateOffset sayfa numarasından satır offset'ini hesaplar.
func (p *ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam kayıt sayısından sayfa sayısını hesaplar.
func CalculateTotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalCount) / perPage
	if int(totalCount)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta sayfalama üst verisi.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"limit"`
	TotalItems int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedResult sayfalanmış liste cevabının zarfı.
type PaginatedResult struct {
	Data any            `json:"items"`
	Meta PaginationMeta `json:"meta"`
}
