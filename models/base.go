package models

import (
	"time"
)

// BaseModel tüm tablolarda ortak olan alanları taşır.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
