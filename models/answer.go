package models

// FormAnswer bir response içindeki tek alan cevabıdır.
// FieldID zayıf bir referanstır: alan sonradan silinirse NULL'a düşer,
// cevap kaydı tarihsel bütünlük için aynen kalır.
type FormAnswer struct {
	BaseModel
	ResponseID uint       `gorm:"not null;index" json:"response_id"`
	FieldID    *uint      `gorm:"index" json:"field_id"`
	Value      *string    `gorm:"type:text" json:"value"`
	Field      *FormField `gorm:"foreignKey:FieldID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
