package storage

import "sync"

// DefaultQuotaBytes — квота по умолчанию, близкая к лимиту localStorage (~5MB)
const DefaultQuotaBytes = 5 * 1024 * 1024

// MemoryBackend хранит данные в памяти. Используется в тестах
// и как замена localStorage там, где долговечность не нужна.
type MemoryBackend struct {
	mu     sync.RWMutex
	items  map[string]string
	quota  int // 0 — без ограничения
	used   int
	events chan Event
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		items:  make(map[string]string),
		events: make(chan Event, 64),
	}
}

// NewMemoryBackendWithQuota создает бекенд с ограничением на суммарный размер
// ключей и значений в байтах. Запись сверх квоты возвращает ErrQuotaExceeded.
func NewMemoryBackendWithQuota(quota int) *MemoryBackend {
	backend := NewMemoryBackend()
	backend.quota = quota
	return backend
}

func (mb *MemoryBackend) Get(key string) (string, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	value, exists := mb.items[key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

func (mb *MemoryBackend) Set(key, value string) error {
	mb.mu.Lock()

	old, existed := mb.items[key]

	// Считаем занятый объем с учетом замены старого значения
	delta := len(key) + len(value)
	if existed {
		delta = len(value) - len(old)
	}
	if mb.quota > 0 && mb.used+delta > mb.quota {
		mb.mu.Unlock()
		return ErrQuotaExceeded
	}

	mb.items[key] = value
	mb.used += delta
	mb.mu.Unlock()

	mb.emit(Event{Key: key, OldValue: old, NewValue: value})
	return nil
}

func (mb *MemoryBackend) Remove(key string) error {
	mb.mu.Lock()

	old, existed := mb.items[key]
	if !existed {
		// Удаление отсутствующего ключа — no-op
		mb.mu.Unlock()
		return nil
	}

	delete(mb.items, key)
	mb.used -= len(key) + len(old)
	mb.mu.Unlock()

	mb.emit(Event{Key: key, OldValue: old, NewValue: ""})
	return nil
}

// Events отдает канал нативных событий изменения
func (mb *MemoryBackend) Events() <-chan Event {
	return mb.events
}

func (mb *MemoryBackend) emit(event Event) {
	// Не блокируемся, если события никто не читает
	select {
	case mb.events <- event:
	default:
	}
}
