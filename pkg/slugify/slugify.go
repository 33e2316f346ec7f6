package slugify

import (
	"strings"

	"github.com/google/uuid"
)

const suffixLength = 6

// Make başlıktan URL-güvenli bir parça üretir: küçük harf, alfasayısal
// olmayan diziler tek '-' olur, baştaki/sondaki '-' atılır.
func Make(input string) string {
	var b strings.Builder
	lastDash := true // baştaki '-' karakterlerini engeller
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// WithSuffix slug'a rastgele bir ek takarak çakışma ihtimalini düşürür.
// Küresel benzersizlik garantisi veritabanındaki unique index'e aittir.
func WithSuffix(title string) string {
	base := Make(title)
	suffix := randomSuffix()
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func randomSuffix() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:suffixLength]
}
