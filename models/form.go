package models

import (
	"time"
)

// FormStatus formun yayın durumunu tanımlar.
type FormStatus string

const (
	FormStatusDraft     FormStatus = "DRAFT"     // Taslak, public yüzeyden görünmez
	FormStatusPublished FormStatus = "PUBLISHED" // Yayında, slug üzerinden erişilebilir
)

// Form online formun ana kaydıdır.
type Form struct {
	BaseModel
	OwnerUserID uint       `gorm:"index;not null" json:"-"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Slug        string     `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Status      FormStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	PublishedAt *time.Time `json:"published_at"`

	// GORM İlişkileri: form silinince alanları ve cevapları da silinir.
	Fields    []FormField    `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Responses []FormResponse `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
