package services

import (
	"encoding/json"
	"errors"
	"log"
	"portal/backend/storage"
)

// SaveResult — результат операции сохранения
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func saveOK(message string) SaveResult {
	return SaveResult{Success: true, Message: message}
}

func saveFailed(message string) SaveResult {
	return SaveResult{Success: false, Message: message}
}

// readRecord читает и разбирает JSON-запись по ключу.
// Возвращает false, если ключа нет или запись повреждена —
// вызывающий код в этом случае подставляет значение по умолчанию.
func readRecord(store storage.Backend, logger *log.Logger, key string, out interface{}) bool {
	raw, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && logger != nil {
			logger.Printf("failed to read %q: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Поврежденная запись молча заменяется значением по умолчанию,
		// но след в логе оставляем
		if logger != nil {
			logger.Printf("corrupt record at %q, falling back to defaults: %v", key, err)
		}
		return false
	}
	return true
}

// writeRecord сериализует значение и записывает его под ключом
func writeRecord(store storage.Backend, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(key, string(raw))
}

// saveError переводит ошибку записи в человекочитаемое сообщение
func saveError(err error, what string) SaveResult {
	if errors.Is(err, storage.ErrQuotaExceeded) {
		return saveFailed("Storage quota exceeded, could not save " + what)
	}
	return saveFailed("Could not save " + what)
}
