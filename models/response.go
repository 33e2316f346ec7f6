package models

// FormResponse public gönderimle oluşan tek bir cevap setidir.
// Submission pipeline dışında hiçbir işlem oluşturmaz, sonradan değiştirilmez.
type FormResponse struct {
	BaseModel
	FormID uint `gorm:"not null;index" json:"form_id"`

	Answers []FormAnswer `gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
