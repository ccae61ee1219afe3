package storage

import (
	"sync"
	"time"
)

// Watcher следит за изменениями значений в хранилище и рассылает события
// подписчикам. Если бекенд реализует EventSource — события приходят нативно,
// иначе Watcher опрашивает хранилище с заданным интервалом (как это делает
// фронтенд с localStorage).
type Watcher struct {
	backend  Backend
	interval time.Duration

	mu     sync.Mutex
	subs   map[string][]chan Event
	last   map[string]string
	closed bool
	done   chan struct{}
}

func NewWatcher(backend Backend, interval time.Duration) *Watcher {
	w := &Watcher{
		backend:  backend,
		interval: interval,
		subs:     make(map[string][]chan Event),
		last:     make(map[string]string),
		done:     make(chan struct{}),
	}

	if source, ok := backend.(EventSource); ok {
		go w.forward(source.Events())
	} else {
		go w.poll()
	}

	return w
}

// Subscribe регистрирует подписку на изменения одного ключа.
// Канал закрывается при Close.
func (w *Watcher) Subscribe(key string) <-chan Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	// Запоминаем текущее значение, чтобы первое же изменение было заметно
	if _, tracked := w.last[key]; !tracked {
		value, err := w.backend.Get(key)
		if err != nil {
			value = ""
		}
		w.last[key] = value
	}

	ch := make(chan Event, 8)
	w.subs[key] = append(w.subs[key], ch)
	return ch
}

// Close останавливает опрос и закрывает все каналы подписчиков
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.done)

	for key, channels := range w.subs {
		for _, ch := range channels {
			close(ch)
		}
		delete(w.subs, key)
	}
}

func (w *Watcher) poll() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.checkKeys()
		}
	}
}

func (w *Watcher) checkKeys() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	for key := range w.subs {
		current, err := w.backend.Get(key)
		if err != nil {
			current = ""
		}
		if current == w.last[key] {
			continue
		}

		event := Event{Key: key, OldValue: w.last[key], NewValue: current}
		w.last[key] = current
		w.dispatchLocked(event)
	}
}

func (w *Watcher) forward(events <-chan Event) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			w.mu.Lock()
			if !w.closed {
				w.last[event.Key] = event.NewValue
				w.dispatchLocked(event)
			}
			w.mu.Unlock()
		}
	}
}

func (w *Watcher) dispatchLocked(event Event) {
	for _, ch := range w.subs[event.Key] {
		// Медленный подписчик не должен останавливать рассылку
		select {
		case ch <- event:
		default:
		}
	}
}
