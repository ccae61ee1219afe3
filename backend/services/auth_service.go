package services

import (
	"errors"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"portal/backend/config"
	"portal/backend/models"
	"portal/backend/storage"
	"portal/backend/utils"
)

// Захардкоженные учетные данные демо-студента. Вход чисто косметический:
// токен кладется в хранилище, но никакие операции прав не проверяют.
const (
	portalEmail    = "josiah.deasis@student.edu.ph"
	portalPassword = "password123"
)

var (
	hashOnce           sync.Once
	portalPasswordHash []byte
)

func credentialHash() []byte {
	hashOnce.Do(func() {
		portalPasswordHash, _ = bcrypt.GenerateFromPassword([]byte(portalPassword), bcrypt.DefaultCost)
	})
	return portalPasswordHash
}

// AuthService реализует макет входа в портал
type AuthService struct {
	Store  storage.Backend
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAuthService(store storage.Backend, cfg *config.Config, logger *log.Logger) *AuthService {
	return &AuthService{Store: store, Cfg: cfg, Logger: logger}
}

// Login сверяет учетные данные с захардкоженными и кладет JWT в хранилище
func (as *AuthService) Login(email, password string) (string, error) {
	if email != portalEmail {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword(credentialHash(), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWTToken(models.DefaultProfile().StudentID, as.Cfg)
	if err != nil {
		return "", errors.New("could not generate token")
	}

	if err := as.Store.Set(storage.KeyAuthToken, token); err != nil {
		return "", errors.New("could not store token")
	}

	return token, nil
}

// CurrentSession возвращает ID студента из сохраненного токена
func (as *AuthService) CurrentSession() (string, error) {
	token, err := as.Store.Get(storage.KeyAuthToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", errors.New("not logged in")
		}
		return "", err
	}

	return utils.ExtractStudentIDFromToken(token, as.Cfg)
}

// Logout удаляет сохраненный токен. Повторный вызов — no-op.
func (as *AuthService) Logout() {
	if err := as.Store.Remove(storage.KeyAuthToken); err != nil && as.Logger != nil {
		as.Logger.Printf("failed to remove auth token: %v", err)
	}
}
