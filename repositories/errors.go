package repositories

import "errors"

// Repository katmanının ortak hataları. Servisler gorm'a değil bunlara bakar.
var (
	// ErrNotFound aranan kayıt yok.
	ErrNotFound = errors.New("kayıt bulunamadı")
	// ErrDuplicate bir unique kısıtı ihlal edildi (ör. aynı form içinde aynı order).
	ErrDuplicate = errors.New("kayıt benzersizlik kısıtını ihlal ediyor")
)
