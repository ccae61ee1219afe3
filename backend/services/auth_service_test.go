package services

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/config"
	"portal/backend/models"
	"portal/backend/storage"
)

func newAuthService() (*AuthService, *storage.MemoryBackend) {
	store := storage.NewMemoryBackend()
	cfg := &config.Config{JWTSecret: "testsecret"}
	return NewAuthService(store, cfg, log.New(io.Discard, "", 0)), store
}

func TestLoginWithHardcodedCredential(t *testing.T) {
	as, store := newAuthService()

	token, err := as.Login("josiah.deasis@student.edu.ph", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Токен должен лежать в хранилище
	stored, err := store.Get(storage.KeyAuthToken)
	assert.NoError(t, err)
	assert.Equal(t, token, stored)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	as, _ := newAuthService()

	_, err := as.Login("josiah.deasis@student.edu.ph", "wrong")
	assert.Error(t, err)

	_, err = as.Login("someone.else@student.edu.ph", "password123")
	assert.Error(t, err)
}

func TestCurrentSessionRoundTrip(t *testing.T) {
	as, _ := newAuthService()

	_, err := as.CurrentSession()
	assert.Error(t, err)

	_, err = as.Login("josiah.deasis@student.edu.ph", "password123")
	assert.NoError(t, err)

	studentID, err := as.CurrentSession()
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultProfile().StudentID, studentID)
}

func TestLogout(t *testing.T) {
	as, _ := newAuthService()

	_, err := as.Login("josiah.deasis@student.edu.ph", "password123")
	assert.NoError(t, err)

	as.Logout()
	_, err = as.CurrentSession()
	assert.Error(t, err)

	// Повторный выход — no-op
	assert.NotPanics(t, func() { as.Logout() })
}
