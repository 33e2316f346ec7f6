package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/configs/configslog"
	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/pkg/token"
	"github.com/GPSingh476/formflow-backend/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrEmailInUse         AuthServiceError = "email already in use"
	ErrInvalidCredentials AuthServiceError = "invalid credentials"
	ErrAuthInvalidInput   AuthServiceError = "geçersiz kayıt verisi"
)

const minPasswordLength = 8

// AuthResult başarılı register/login cevabı.
type AuthResult struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// IAuthService kimlik işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo      repositories.IUserRepository
	jwtSecret string
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		repo:      repositories.NewUserRepository(),
		jwtSecret: configs.GetJWTSecret(),
	}
}

// Register yeni bir hesap oluşturur ve access token üretir.
// E-posta kullanımdaysa hata döner.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: geçersiz e-posta", ErrAuthInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: şifre en az %d karakter olmalı", ErrAuthInvalidInput, minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Register: bcrypt error", zap.Error(err))
		return nil, err
	}

	user := models.User{Email: email, PasswordHash: string(hashed)}
	if err := s.repo.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	accessToken, err := token.Sign(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		configslog.Log.Error("Register: token sign error", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Yeni hesap oluşturuldu: %s (ID %d)", user.Email, user.ID)
	return &AuthResult{User: &user, AccessToken: accessToken}, nil
}

// Login e-posta ve şifreyi doğrular, access token üretir.
// Bilinmeyen e-posta ile yanlış şifre aynı hatayı döndürür.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := token.Sign(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		configslog.Log.Error("Login: token sign error", zap.Error(err))
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: accessToken}, nil
}

var _ IAuthService = (*AuthService)(nil)
