package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler (varsa). Production ortamında dosya
// bulunmaması hata değildir, değişkenler ortamdan okunur.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv bir ortam değişkenini okur, boşsa fallback değerini döndürür.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetJWTSecret access token imzalama anahtarını döndürür.
// Anahtar yoksa uygulama başlatılmamalıdır (main kontrol eder).
func GetJWTSecret() string {
	return os.Getenv("JWT_ACCESS_SECRET")
}
