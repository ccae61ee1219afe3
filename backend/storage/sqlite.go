package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StorageItem — одна запись key-value в таблице хранилища
type StorageItem struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLiteBackend — долговременное локальное хранилище поверх SQLite.
// Одна таблица storage_items играет роль localStorage.
type SQLiteBackend struct {
	DB *gorm.DB
}

// OpenSQLite открывает (или создает) файл базы и мигрирует таблицу
func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StorageItem{}); err != nil {
		return nil, err
	}

	return &SQLiteBackend{DB: db}, nil
}

func (sb *SQLiteBackend) Get(key string) (string, error) {
	var item StorageItem
	if err := sb.DB.First(&item, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return item.Value, nil
}

func (sb *SQLiteBackend) Set(key, value string) error {
	// Upsert по первичному ключу
	return sb.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&StorageItem{Key: key, Value: value}).Error
}

func (sb *SQLiteBackend) Remove(key string) error {
	return sb.DB.Delete(&StorageItem{}, "key = ?", key).Error
}
