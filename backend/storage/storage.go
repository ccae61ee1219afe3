package storage

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("storage: key not found")
	// ErrQuotaExceeded возвращается, когда запись превышает квоту хранилища
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Backend — абстракция над key-value хранилищем (аналог localStorage в браузере).
// Значения всегда строки; сериализация — забота вызывающего кода.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Event описывает изменение значения по одному ключу
type Event struct {
	Key      string
	OldValue string
	NewValue string
}

// EventSource реализуют бекенды, умеющие сами сообщать об изменениях.
// Watcher использует такие события вместо опроса.
type EventSource interface {
	Events() <-chan Event
}
