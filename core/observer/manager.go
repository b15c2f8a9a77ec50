package observer

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

// Manager keeps an ordered list of distinct observers and broadcasts
// events to them synchronously on the caller's goroutine.
type Manager struct {
	mu        sync.RWMutex
	observers []Observer
	log       *slog.Logger
	metrics   *helper.Metrics
}

// NewManager creates an empty observer manager.
// Both logger and metrics may be nil.
func NewManager(logger *slog.Logger, metrics *helper.Metrics) *Manager {
	return &Manager{
		log:     helper.LoggerOrDiscard(logger).With(slog.String("component", "observer")),
		metrics: metrics,
	}
}

// Register adds o to the end of the delivery order.
// It returns false if o is nil, not comparable or already registered.
func (m *Manager) Register(o Observer) bool {
	if o == nil {
		return false
	}
	if !reflect.TypeOf(o).Comparable() {
		m.log.Warn("Observer is not comparable, use a pointer type", slog.String("observer", o.Name()))
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(o) >= 0 {
		return false
	}
	m.observers = append(m.observers, o)
	m.log.Debug("Observer added", slog.String("observer", o.Name()))

	return true
}

// Unregister removes o. It returns false if o was not registered.
func (m *Manager) Unregister(o Observer) bool {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(o)
	if i < 0 {
		return false
	}
	m.observers = slices.Delete(m.observers, i, i+1)
	m.log.Debug("Observer removed", slog.String("observer", o.Name()))

	return true
}

// Notify delivers the event to every registered observer in registration order.
// A nil array or an unknown kind is ignored. Observer failures are logged and
// counted but never returned. Notify returns the number of observers that
// handled the event without failing.
func (m *Manager) Notify(array *model.WordArray, kind model.EventKind) int {
	if array == nil || !kind.Valid() {
		m.log.Warn("Cannot notify observers: array is nil or event kind is unknown", slog.String("kind", string(kind)))
		return 0
	}

	m.mu.RLock()
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.RUnlock()

	m.log.Debug("Notifying observers",
		slog.Int("observers", len(observers)),
		slog.String("kind", string(kind)),
		slog.String("array_id", array.ID().String()),
	)
	m.metrics.EventBroadcast(string(kind))

	event := model.Event{Array: array, Kind: kind}
	delivered := 0
	for _, o := range observers {
		err := deliver(o, event)
		if err != nil {
			m.log.Error("Error notifying observer",
				slog.String("observer", o.Name()),
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
			m.metrics.ObserverFailed(o.Name())
			continue
		}
		delivered++
	}

	return delivered
}

// Count returns the number of registered observers
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.observers)
}

// Names returns the observer names in delivery order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.observers))
	for _, o := range m.observers {
		names = append(names, o.Name())
	}
	return names
}

// Clear removes all observers
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Info("Clearing all observers", slog.Int("count", len(m.observers)))
	m.observers = nil
}

func (m *Manager) indexOf(o Observer) int {
	for i, existing := range m.observers {
		if existing == o {
			return i
		}
	}
	return -1
}

// deliver calls the observer and turns a panic into an error
func deliver(o Observer, event model.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panicked: %v", r)
		}
	}()
	return o.HandleEvent(event)
}
