package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken doğrulanamayan veya süresi geçmiş token'lar için döner.
var ErrInvalidToken = errors.New("geçersiz veya süresi dolmuş token")

const defaultTTL = 24 * time.Hour

// Claims access token içeriği: sub kullanıcı ID'si, email bilgilendirme amaçlı.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Sign kullanıcı için HS256 imzalı bir access token üretir.
func Sign(secret string, userID uint, email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(defaultTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse token'ı doğrular ve (userID, email) çiftini döndürür.
func Parse(secret, tokenString string) (uint, string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", ErrInvalidToken
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, "", ErrInvalidToken
	}
	return uint(userID), claims.Email, nil
}
