package services

import (
	"context"
	"log"
	"time"

	"portal/backend/config"
	"portal/backend/models"
	"portal/backend/storage"
)

// ProfileService управляет записями профиля, изображений,
// настроек уведомлений и внешнего вида
type ProfileService struct {
	Store  storage.Backend
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProfileService(store storage.Backend, cfg *config.Config, logger *log.Logger) *ProfileService {
	return &ProfileService{Store: store, Cfg: cfg, Logger: logger}
}

// GetProfile возвращает профиль пользователя или полную запись по умолчанию
func (ps *ProfileService) GetProfile() models.UserProfile {
	var profile models.UserProfile
	if !readRecord(ps.Store, ps.Logger, storage.KeyUserProfile, &profile) {
		return models.DefaultProfile()
	}
	return profile
}

// SaveProfile сохраняет профиль целиком. Перед записью выдерживается
// фиксированная задержка — UI показывает на ней индикатор загрузки.
func (ps *ProfileService) SaveProfile(ctx context.Context, profile models.UserProfile) SaveResult {
	select {
	case <-time.After(time.Duration(ps.Cfg.SaveDelayMs) * time.Millisecond):
	case <-ctx.Done():
		return saveFailed("Save cancelled")
	}

	if err := writeRecord(ps.Store, storage.KeyUserProfile, profile); err != nil {
		return saveError(err, "profile")
	}
	return saveOK("Profile updated successfully")
}

// GetImages возвращает запись изображений; отсутствие ключа
// эквивалентно двум null-полям
func (ps *ProfileService) GetImages() models.UserImages {
	var images models.UserImages
	if !readRecord(ps.Store, ps.Logger, storage.KeyUserImages, &images) {
		return models.DefaultImages()
	}
	return images
}

// SaveImages перезаписывает запись изображений целиком
func (ps *ProfileService) SaveImages(images models.UserImages) SaveResult {
	if err := writeRecord(ps.Store, storage.KeyUserImages, images); err != nil {
		return saveError(err, "images")
	}
	return saveOK("Images updated successfully")
}

// SaveCoverImage обновляет только обложку, не трогая аватар
func (ps *ProfileService) SaveCoverImage(image *string) SaveResult {
	images := ps.GetImages()
	images.CoverImage = image

	if err := writeRecord(ps.Store, storage.KeyUserImages, images); err != nil {
		return saveError(err, "cover image")
	}
	return saveOK("Cover image updated successfully")
}

// SaveProfileImage обновляет только аватар, не трогая обложку
func (ps *ProfileService) SaveProfileImage(image *string) SaveResult {
	images := ps.GetImages()
	images.ProfileImage = image

	if err := writeRecord(ps.Store, storage.KeyUserImages, images); err != nil {
		return saveError(err, "profile image")
	}
	return saveOK("Profile image updated successfully")
}

// GetSettings возвращает настройки уведомлений; по умолчанию все включены
func (ps *ProfileService) GetSettings() models.UserSettings {
	var settings models.UserSettings
	if !readRecord(ps.Store, ps.Logger, storage.KeyUserSettings, &settings) {
		return models.DefaultSettings()
	}
	return settings
}

func (ps *ProfileService) SaveSettings(settings models.UserSettings) SaveResult {
	if err := writeRecord(ps.Store, storage.KeyUserSettings, settings); err != nil {
		return saveError(err, "settings")
	}
	return saveOK("Settings updated successfully")
}

// GetAppearance возвращает настройки внешнего вида
func (ps *ProfileService) GetAppearance() models.UserAppearance {
	var appearance models.UserAppearance
	if !readRecord(ps.Store, ps.Logger, storage.KeyUserAppearance, &appearance) {
		return models.DefaultAppearance()
	}
	return appearance
}

func (ps *ProfileService) SaveAppearance(appearance models.UserAppearance) SaveResult {
	// Тема ограничена тремя значениями
	switch appearance.Theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
	default:
		return saveFailed("Invalid theme: " + appearance.Theme)
	}

	if err := writeRecord(ps.Store, storage.KeyUserAppearance, appearance); err != nil {
		return saveError(err, "appearance")
	}
	return saveOK("Appearance updated successfully")
}

// ClearAllUserData удаляет все пользовательские ключи из реестра.
// Повторный вызов на пустом хранилище — no-op.
func (ps *ProfileService) ClearAllUserData() {
	for _, key := range storage.UserDataKeys() {
		if err := ps.Store.Remove(key); err != nil && ps.Logger != nil {
			ps.Logger.Printf("failed to remove %q: %v", key, err)
		}
	}
}
