package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBackendGetMissing(t *testing.T) {
	mb := NewMemoryBackend()

	_, err := mb.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackendSetGetRemove(t *testing.T) {
	mb := NewMemoryBackend()

	assert.NoError(t, mb.Set("key", "value"))

	value, err := mb.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)

	assert.NoError(t, mb.Remove("key"))
	_, err = mb.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Удаление отсутствующего ключа — no-op
	assert.NoError(t, mb.Remove("key"))
}

func TestMemoryBackendQuota(t *testing.T) {
	mb := NewMemoryBackendWithQuota(32)

	assert.NoError(t, mb.Set("a", "short"))
	assert.ErrorIs(t, mb.Set("b", strings.Repeat("x", 100)), ErrQuotaExceeded)

	// Запись в пределах квоты по-прежнему возможна
	assert.NoError(t, mb.Set("a", "other"))
}

func TestMemoryBackendQuotaFreedByRemove(t *testing.T) {
	mb := NewMemoryBackendWithQuota(16)

	assert.NoError(t, mb.Set("key", "0123456789"))
	assert.ErrorIs(t, mb.Set("second", "0123456789"), ErrQuotaExceeded)

	assert.NoError(t, mb.Remove("key"))
	assert.NoError(t, mb.Set("second", "0123456789"))
}

func TestMemoryBackendEvents(t *testing.T) {
	mb := NewMemoryBackend()

	assert.NoError(t, mb.Set("key", "v1"))
	assert.NoError(t, mb.Set("key", "v2"))
	assert.NoError(t, mb.Remove("key"))

	events := mb.Events()
	first := <-events
	assert.Equal(t, Event{Key: "key", OldValue: "", NewValue: "v1"}, first)
	second := <-events
	assert.Equal(t, "v2", second.NewValue)
	third := <-events
	assert.Equal(t, "", third.NewValue)
}
