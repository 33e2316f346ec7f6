package models

import (
	"encoding/json"
)

// FieldType desteklenen girdi türleri.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
)

// ValidFieldType tür etiketinin bilinen kümede olup olmadığını kontrol eder.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypeNumber,
		FieldTypeDate, FieldTypeSelect, FieldTypeCheckbox, FieldTypeRadio:
		return true
	}
	return false
}

// FormField bir formun tek bir girdi alanıdır.
// (form_id, "order") çifti unique: aynı form içinde iki alan aynı sırayı alamaz.
type FormField struct {
	BaseModel
	FormID      uint            `gorm:"not null;index;uniqueIndex:idx_form_field_order" json:"form_id"`
	Type        FieldType       `gorm:"type:varchar(20);not null" json:"type"`
	Label       string          `gorm:"type:varchar(255);not null" json:"label"`
	Required    bool            `gorm:"not null;default:false" json:"required"`
	Order       int             `gorm:"column:order;not null;uniqueIndex:idx_form_field_order" json:"order"`
	Placeholder *string         `gorm:"type:varchar(255)" json:"placeholder"`
	Options     json.RawMessage `gorm:"type:jsonb" json:"options"` // Tür bazlı seçenekler, çekirdek için opak
}
