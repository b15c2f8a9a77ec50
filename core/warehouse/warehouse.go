package warehouse

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

// Name is the observer name of the warehouse
const Name = "warehouse"

// Warehouse caches statistics per word array ID.
// It is kept in sync by registering it as an observer of a repository.
type Warehouse struct {
	mu      sync.RWMutex
	records map[uuid.UUID]model.Statistics
	log     *slog.Logger
	metrics *helper.Metrics
}

// NewWarehouse creates an empty warehouse.
// Both logger and metrics may be nil.
func NewWarehouse(logger *slog.Logger, metrics *helper.Metrics) *Warehouse {
	w := &Warehouse{
		records: make(map[uuid.UUID]model.Statistics),
		log:     helper.LoggerOrDiscard(logger).With(slog.String("component", Name)),
		metrics: metrics,
	}
	w.log.Info("Warehouse created")
	return w
}

// Name implements observer.Observer
func (w *Warehouse) Name() string {
	return Name
}

// HandleEvent stores fresh statistics on ADD and evicts them on REMOVE.
// A repeated ADD replaces the record, a REMOVE for an unknown ID is a no-op.
func (w *Warehouse) HandleEvent(event model.Event) error {
	if event.Array == nil {
		return nil
	}
	id := event.Array.ID()

	switch event.Kind {
	case model.EventAdd:
		w.log.Debug("Handling ADD event", slog.String("array_id", id.String()))
		w.store(id, model.NewStatistics(event.Array.Words()))
	case model.EventRemove:
		w.log.Debug("Handling REMOVE event", slog.String("array_id", id.String()))
		w.evict(id)
	default:
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}

	return nil
}

// Statistics returns the cached record for id.
// The second return value is false if no record exists.
func (w *Warehouse) Statistics(id uuid.UUID) (model.Statistics, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	stats, ok := w.records[id]
	return stats, ok
}

// Len returns the number of cached records
func (w *Warehouse) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.records)
}

// Clear drops every record without emitting events.
// It does not imply that the repository is empty.
func (w *Warehouse) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.log.Info("Clearing warehouse statistics", slog.Int("records", len(w.records)))
	w.records = make(map[uuid.UUID]model.Statistics)
	w.metrics.SetWarehouseSize(0)
}

func (w *Warehouse) store(id uuid.UUID, stats model.Statistics) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.records[id] = stats
	w.metrics.SetWarehouseSize(len(w.records))
	w.log.Debug("Stored statistics", slog.String("array_id", id.String()), slog.String("statistics", stats.String()))
}

func (w *Warehouse) evict(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.records, id)
	w.metrics.SetWarehouseSize(len(w.records))
}
